package core

// MultiVertex is as Vertex, but its neighbour list is a multiset: a
// neighbour may appear multiple times, encoding parallel edges. Used only
// by SPQR skeletons (package spqr), whose P-nodes and R-nodes carry
// parallel/virtual edges that a simple Vertex cannot represent.
type MultiVertex struct {
	id    int
	graph *MultiGraph

	// neighborOrder holds one entry per incident half of an edge, in
	// insertion order; parallel edges to the same neighbour appear as
	// repeated entries. edgeOrder[i] is the MultiGraph-global edge id that
	// produced neighborOrder[i], so a specific parallel edge can be found
	// again (e.g. to remove exactly one of several parallel edges).
	neighborOrder []int
	edgeOrder     []int
}

func (v *MultiVertex) ID() int { return v.id }

// Degree returns the number of incident edge-ends, counting multiplicity.
func (v *MultiVertex) Degree() int { return len(v.neighborOrder) }

// Neighbors returns v's neighbours with multiplicity, in insertion order.
func (v *MultiVertex) Neighbors() []*MultiVertex {
	out := make([]*MultiVertex, 0, len(v.neighborOrder))
	for _, id := range v.neighborOrder {
		out = append(out, v.graph.vertices[id])
	}
	return out
}

// MultiEdge is one parallel edge of a MultiGraph, identified by a
// MultiGraph-global id distinct from the ids of its two endpoints.
type MultiEdge struct {
	ID   int
	A, B int // endpoint MultiVertex ids

	// Virtual marks a synthetic SPQR virtual edge (vs. a real edge of the
	// original skeleton); see spec §3 HalfEdge.isVirtual.
	Virtual bool
}

// MultiGraph is a collection of MultiVertex arena slots with multiset
// adjacency, used to represent SPQR-tree skeletons.
type MultiGraph struct {
	vertices []*MultiVertex
	edges    []*MultiEdge
}

func NewMultiGraph() *MultiGraph { return &MultiGraph{} }

func (g *MultiGraph) NewVertex() *MultiVertex {
	v := &MultiVertex{id: len(g.vertices), graph: g}
	g.vertices = append(g.vertices, v)
	return v
}

func (g *MultiGraph) Vertices() []*MultiVertex {
	out := make([]*MultiVertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

func (g *MultiGraph) Vertex(id int) *MultiVertex {
	if id < 0 || id >= len(g.vertices) {
		return nil
	}
	return g.vertices[id]
}

// AddEdge adds one more parallel edge between a and b (never deduplicated)
// and returns it.
func (g *MultiGraph) AddEdge(a, b *MultiVertex, virtual bool) *MultiEdge {
	e := &MultiEdge{ID: len(g.edges), A: a.id, B: b.id, Virtual: virtual}
	g.edges = append(g.edges, e)
	a.neighborOrder = append(a.neighborOrder, b.id)
	a.edgeOrder = append(a.edgeOrder, e.ID)
	if a.id != b.id {
		b.neighborOrder = append(b.neighborOrder, a.id)
		b.edgeOrder = append(b.edgeOrder, e.ID)
	}
	return e
}

// Edges returns every MultiEdge of g, in creation order.
func (g *MultiGraph) Edges() []*MultiEdge {
	out := make([]*MultiEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Edge returns the MultiEdge with the given global id.
func (g *MultiGraph) Edge(id int) *MultiEdge {
	if id < 0 || id >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}
