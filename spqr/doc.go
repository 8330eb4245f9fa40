// Package spqr is the external collaborator of spec §4.4: SPQR-tree
// decomposition of one biconnected component (package bctree.Component)
// into S- (series/cycle), P- (parallel/bond), and R- (3-connected
// residual) nodes, each carrying a core.MultiGraph skeleton.
//
// Out of scope as a specified component (spec §1), implemented here as a
// leaf primitive consumed by packages skeletonembed and halfmerge. This is
// a simplified but genuine construction (SPEC_FULL.md §4.4): repeatedly
// contract maximal degree-2 series chains into S-nodes and maximal parallel
// bundles into P-nodes, leaving whatever 3-connected residual remains as a
// single R-node. This does not implement the textbook linear-time SPQR
// algorithm (which additionally splits large bonds/triconnected pieces via
// a full triconnectivity test); it is sufficient for the gadget-expansion
// skeletons this module actually builds, which are small and rich in
// series/parallel structure (wheel-gadget hubs and rims).
package spqr
