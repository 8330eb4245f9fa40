package bctree

import "github.com/katalvlaran/ecplanar/core"

// Component is one biconnected component ("block") of the decomposed graph:
// a subgraph of at least one edge (isolated vertices are not reported as
// components), plus the mapping from the Component's own local vertex ids
// back to the original Graph's vertex ids.
type Component struct {
	Graph        *core.Graph
	LocalToOrig  map[int]int
	OrigToLocal  map[int]int
}

// Decompose splits g into its biconnected components via Tarjan's DFS
// low-link algorithm with an explicit edge stack. Cut vertices appear in
// more than one returned Component, sharing the same OrigToLocal vertex
// identity logically (each Component has its own local numbering).
func Decompose(g *core.Graph) []*Component {
	d := &decomposer{
		g:       g,
		disc:    make(map[int]int),
		low:     make(map[int]int),
		visited: make(map[int]bool),
	}
	for _, v := range g.Vertices() {
		if !d.visited[v.ID()] {
			d.dfs(v.ID(), -1)
			d.flushRemaining()
		}
	}
	return d.components
}

type stackEdge struct{ a, b int }

type decomposer struct {
	g          *core.Graph
	disc, low  map[int]int
	visited    map[int]bool
	timer      int
	edgeStack  []stackEdge
	components []*Component
}

func (d *decomposer) dfs(u, parent int) {
	d.visited[u] = true
	d.timer++
	d.disc[u] = d.timer
	d.low[u] = d.timer

	for _, w := range d.g.Vertex(u).Neighbors() {
		wid := w.ID()
		if wid == parent {
			continue
		}
		if !d.visited[wid] {
			d.edgeStack = append(d.edgeStack, stackEdge{u, wid})
			d.dfs(wid, u)
			if d.low[wid] < d.low[u] {
				d.low[u] = d.low[wid]
			}
			if d.low[wid] >= d.disc[u] {
				d.popComponent(u, wid)
			}
		} else if d.disc[wid] < d.disc[u] {
			d.edgeStack = append(d.edgeStack, stackEdge{u, wid})
			if d.disc[wid] < d.low[u] {
				d.low[u] = d.disc[wid]
			}
		}
	}
}

// popComponent pops edges off the stack up to and including (u,w), forming
// one biconnected component.
func (d *decomposer) popComponent(u, w int) {
	var edges []stackEdge
	for {
		n := len(d.edgeStack)
		e := d.edgeStack[n-1]
		d.edgeStack = d.edgeStack[:n-1]
		edges = append(edges, e)
		if (e.a == u && e.b == w) || (e.a == w && e.b == u) {
			break
		}
	}
	d.components = append(d.components, buildComponent(edges))
}

// flushRemaining handles the (rare) case of leftover stack edges after a
// DFS tree root returns, e.g. a root with a single tree edge child whose
// low-link check already consumed the component; kept defensive only.
func (d *decomposer) flushRemaining() {
	if len(d.edgeStack) == 0 {
		return
	}
	edges := d.edgeStack
	d.edgeStack = nil
	d.components = append(d.components, buildComponent(edges))
}

func buildComponent(edges []stackEdge) *Component {
	sub := core.NewGraph()
	local := make(map[int]*core.Vertex)
	origToLocal := make(map[int]int)
	localToOrig := make(map[int]int)
	ensure := func(orig int) *core.Vertex {
		if v, ok := local[orig]; ok {
			return v
		}
		v := sub.NewVertex()
		local[orig] = v
		origToLocal[orig] = v.ID()
		localToOrig[v.ID()] = orig
		return v
	}
	// Preserve stack-pop order reversed, so the component's edges appear in
	// the order they were first discovered (deterministic, matches DFS).
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		_ = sub.AddEdge(ensure(e.a), ensure(e.b))
	}
	return &Component{Graph: sub, LocalToOrig: localToOrig, OrigToLocal: origToLocal}
}
