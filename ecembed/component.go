package ecembed

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
)

// component is the connected component of a Graph containing a start
// vertex, rebuilt as a fresh, densely-numbered core.Graph (core.Graph has no
// vertex-removal primitive, so restricting to a subset of vertices requires
// a genuine rebuild rather than a view).
type component struct {
	Graph     *core.Graph
	OrigToSub map[int]int
	SubToOrig map[int]int
}

// extractComponent walks g from start by BFS and returns the induced
// subgraph on the reachable vertex set.
func extractComponent(g *core.Graph, start int) *component {
	origToSub := map[int]int{}
	subToOrig := map[int]int{}
	sub := core.NewGraph()

	visit := func(orig int) int {
		if id, ok := origToSub[orig]; ok {
			return id
		}
		v := sub.NewVertex()
		origToSub[orig] = v.ID()
		subToOrig[v.ID()] = orig
		return v.ID()
	}

	visit(start)
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.Vertex(u).Neighbors() {
			if _, seen := origToSub[w.ID()]; !seen {
				visit(w.ID())
				queue = append(queue, w.ID())
			}
		}
	}
	for _, e := range g.Edges() {
		ua, aok := origToSub[e.A]
		ub, bok := origToSub[e.B]
		if aok && bok {
			_ = sub.AddEdge(sub.Vertex(ua), sub.Vertex(ub))
		}
	}

	return &component{Graph: sub, OrigToSub: origToSub, SubToOrig: subToOrig}
}

// remapConstraints restricts constraints to vertices present in c and
// rewrites every tree's vertex ids (both the constrained vertex itself and
// every leaf's neighbour reference) from original ids to c's local ids.
func remapConstraints(c *component, constraints map[int]*ecnode.Tree) map[int]*ecnode.Tree {
	out := make(map[int]*ecnode.Tree, len(constraints))
	for origV, t := range constraints {
		subV, ok := c.OrigToSub[origV]
		if !ok {
			continue
		}
		rt := ecnode.ReplaceVertices(t, c.OrigToSub)
		if rt == nil {
			continue
		}
		rt.Vertex = subV
		out[subV] = rt
	}
	return out
}
