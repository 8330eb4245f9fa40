package contractor

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
	"github.com/katalvlaran/ecplanar/expansion"
)

// Contract returns the clockwise order of v's original neighbours implied
// by emb, an embedding of res.Graph (the expansion graph built for v's
// owning original graph). v may be constrained or unconstrained.
func Contract(v int, res *expansion.Result, emb *core.PlanarEmbedding) []int {
	if root, ok := res.Root[v]; ok {
		return contractNode(root, emb)
	}
	pv := res.PlainVertex[v]
	var out []int
	for _, nb := range emb.Rotation[pv] {
		if orig, ok := res.ExpansionEdgeToEdge[core.NewUnorderedPair(pv, nb)]; ok {
			if w, ok := orig.Other(v); ok {
				out = append(out, w)
			}
		}
	}
	return out
}

func contractNode(n *expansion.Node, emb *core.PlanarEmbedding) []int {
	switch n.Kind {
	case ecnode.VertexLeaf:
		return []int{n.Leaf}

	case ecnode.Group:
		var out []int
		for _, nb := range emb.Rotation[n.Hub] {
			if child, ok := n.Children[nb]; ok {
				out = append(out, contractNode(child, emb)...)
				continue
			}
			if w, ok := n.LeafEdge[nb]; ok {
				out = append(out, w)
			}
		}
		return out

	default: // ecnode.Oriented, ecnode.Mirror
		forward := true
		if n.NumRealChildren > 1 {
			real := emb.Rotation[n.H]
			i0 := indexOf(real, n.Rim[0])
			if i0 >= 0 {
				forward = real[(i0+1)%len(real)] == n.Rim[1]
			}
		}
		var out []int
		for i := 0; i < n.NumRealChildren; i++ {
			j := i
			if !forward {
				j = n.NumRealChildren - 1 - i
			}
			if n.RimLeaf[j] >= 0 {
				out = append(out, n.RimLeaf[j])
			} else {
				out = append(out, contractNode(n.RimChild[j], emb)...)
			}
		}
		return out
	}
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
