// Package skeletonembed implements the per-SPQR-node half of spec §4.6: a
// local planar embedding of one spqr.Node's skeleton, plus the shared
// CheckOHubOrientation primitive used both here and by package halfmerge to
// test whether a wheel gadget's O-hub (package expansion) landed with the
// required winding direction.
//
// An S-node skeleton is a single cycle, embedded directly. A P-node
// skeleton is a bond (2 vertices joined by several parallel/virtual edges);
// since a bond carries no rotation information of its own (any permutation
// of its parallel edges is planar, and a wheel's O-hub is never itself a
// bond), it gets a placeholder rotation. An R-node skeleton is a simple
// 3-connected graph by the SPQR invariant, so it is embedded with package
// planarembed directly.
package skeletonembed
