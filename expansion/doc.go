// Package expansion implements spec §4.5: given a graph and a per-vertex
// EC constraint tree (package ecnode), it builds an "expansion graph" —
// an auxiliary, unconstrained simple graph — such that any planar
// embedding of the expansion graph, once every O-hub's orientation
// constraint is honoured, projects back (package contractor) to a
// constraint-respecting planar embedding of the original graph.
//
// A constrained vertex V is expanded, recursively on its (consolidated)
// constraint tree:
//
//   - a GROUP node becomes a merge hub: leaf children attach directly to
//     the hub (an edge per leaf, no extra vertex), non-leaf children get
//     one spoke edge each to their own recursively-built entry vertex.
//   - an ORIENTED or MIRROR node becomes a wheel gadget: a hub H joined to
//     a rim cycle of 2k (or 2k+2, one slot reserved for the edge back to
//     this subtree's parent, when the node is not the tree root) vertices
//     alternating child spokes and buffer spokes. An ORIENTED hub's first
//     two rim vertices are recorded as its O-hub orientation anchor
//     (package skeletonembed); a MIRROR hub records none, since either
//     winding direction around it is acceptable.
package expansion
