// Package ecnode implements the embedding-constraint (EC) tree of spec
// §3/§4.2: a small rooted-tree language, one tree per constrained vertex,
// describing which clockwise neighbour orders around that vertex are
// acceptable.
//
// A Tree owns its Nodes in an arena ([]*Node); Node.Parent is an index into
// that same arena (or -1 for the root), in the manner core.Graph owns its
// Vertex arena. Four node kinds form a tagged union over a single struct
// (Kind plus the fields relevant to that kind) rather than four Go types,
// so a whole subtree can be walked, cloned, and pruned without interface
// dispatch — mirrors lvlath's preference for one concrete struct per
// concern over deep interface hierarchies in its builder package.
package ecnode
