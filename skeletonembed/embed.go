package skeletonembed

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/planarembed"
	"github.com/katalvlaran/ecplanar/spqr"
)

// EmbedNode returns a local planar embedding of n's skeleton, over n's own
// local vertex ids (see spqr.Node.LocalToOrig), and whether one exists. Only
// R-nodes can fail (a non-planar skeleton); S- and P-nodes are always
// planar by construction.
func EmbedNode(n *spqr.Node) (*core.PlanarEmbedding, bool) {
	switch n.Kind {
	case spqr.SNode:
		return embedCycle(n), true
	case spqr.PNode:
		return embedBond(n), true
	default:
		return embedSimple(n)
	}
}

// embedCycle builds the trivial rotation of a pure cycle skeleton: every
// vertex has degree 2, so its rotation is just its two neighbours.
func embedCycle(n *spqr.Node) *core.PlanarEmbedding {
	rot := make(map[int][]int)
	for _, v := range n.Skeleton.Vertices() {
		var nbrs []int
		for _, w := range v.Neighbors() {
			nbrs = append(nbrs, w.ID())
		}
		rot[v.ID()] = nbrs
	}
	return &core.PlanarEmbedding{Rotation: rot}
}

// embedBond builds a placeholder rotation for a 2-vertex parallel-edge
// bundle: every parallel edge is interchangeable for planarity purposes, so
// the "other" vertex is simply repeated once per edge. No O-hub ever
// targets a bond's vertices (a wheel hub always has a genuine rim, never a
// bare bond), so this rotation is never asked to resolve an orientation.
func embedBond(n *spqr.Node) *core.PlanarEmbedding {
	rot := make(map[int][]int)
	for _, v := range n.Skeleton.Vertices() {
		var nbrs []int
		for _, w := range v.Neighbors() {
			nbrs = append(nbrs, w.ID())
		}
		rot[v.ID()] = nbrs
	}
	return &core.PlanarEmbedding{Rotation: rot}
}

// embedSimple flattens an R-node's skeleton (simple by the SPQR invariant:
// at most one edge, real or virtual, between any two local vertices) to a
// core.Graph and embeds it with planarembed.Embed.
func embedSimple(n *spqr.Node) (*core.PlanarEmbedding, bool) {
	g := core.NewGraph()
	local := make(map[int]*core.Vertex)
	for _, v := range n.Skeleton.Vertices() {
		local[v.ID()] = g.NewVertex()
	}
	for _, e := range n.Skeleton.Edges() {
		_ = g.AddEdge(local[e.A], local[e.B])
	}
	emb, ok := planarembed.Embed(g)
	if !ok {
		return nil, false
	}
	inverse := make(map[int]int, len(local))
	for localID, v := range local {
		inverse[v.ID()] = localID
	}
	rot := make(map[int][]int)
	for localID, gv := range local {
		var nbrs []int
		for _, w := range emb.Rotation[gv.ID()] {
			nbrs = append(nbrs, inverse[w])
		}
		rot[localID] = nbrs
	}
	return &core.PlanarEmbedding{Rotation: rot}, true
}

// CheckOHubOrientation reports, for an embedding emb that includes hub as a
// vertex, whether hub's recorded O-hub anchor (first, second — see
// expansion.Result.OHubFirst/OHubSecond) is satisfied reading clockwise
// (forwardOK) or counter-clockwise (reversedOK) around hub. If hub is not
// present in emb at all, both are vacantly true (this embedding carries no
// opinion on that hub).
func CheckOHubOrientation(emb *core.PlanarEmbedding, hub, first, second int) (forwardOK, reversedOK bool) {
	if _, ok := emb.Rotation[hub]; !ok {
		return true, true
	}
	return emb.NeighborAfter(hub, first) == second, emb.NeighborBefore(hub, first) == second
}
