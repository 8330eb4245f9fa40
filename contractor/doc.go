// Package contractor implements spec §4.8: given a finished planar
// embedding of an expansion graph (package expansion) built from an
// original graph and its per-vertex constraint trees, it projects that
// embedding back onto the original graph — producing, for each original
// vertex, the clockwise order of its original neighbours implied by the
// expansion embedding.
//
// Each constrained vertex's gadget is walked top-down, guided by the
// expansion.Node tree returned alongside the embedding: a GROUP node's hub
// rotation is read directly (any relative order is acceptable, so no anchor
// is needed); an ORIENTED/MIRROR wheel's hub rotation is compared against
// its recorded first two rim vertices to detect whether the embedding used
// the gadget's forward or reversed winding, and the wheel's children are
// then emitted in that same direction.
package contractor
