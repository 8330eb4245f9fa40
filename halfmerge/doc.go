// Package halfmerge implements the cross-node aggregation half of spec
// §4.7: given the SPQR tree of one biconnected component of an expansion
// graph (packages spqr, expansion) and that expansion's recorded O-hub
// anchors, it decides whether the component can be embedded with every
// O-hub's orientation honoured — either directly (canBeNonFlipped) or after
// a whole-component reflection (canBeFlipped) — by embedding each SPQR node
// independently (package skeletonembed) and checking every O-hub that falls
// within that node's own local skeleton.
//
// This is a feasibility pre-check, not an embedding producer: package
// ecembed still builds the actual combinatorial embedding of the whole
// (simple, parallel-edge-free) expansion graph with package planarembed,
// which already handles arbitrary simple planar graphs directly. Gating on
// this package's verdict first means a structurally infeasible O-hub
// arrangement is rejected before that more expensive step, and keeps the
// SPQR/BC-tree decomposition genuinely load-bearing rather than inert.
package halfmerge
