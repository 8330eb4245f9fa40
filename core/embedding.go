package core

// PlanarEmbedding is a combinatorial description of a planar drawing: for
// each vertex (indexed by Vertex.ID), an ordered list of neighbour ids
// interpreted as clockwise around that vertex, plus a designated outer
// face given as a closed walk of vertex ids (consecutive pairs are edges;
// the walk may repeat vertices on tree-like graphs).
//
// Rotation is indexed by the owning Graph's vertex ids, so a PlanarEmbedding
// borrows vertex identity from that Graph without owning it (per spec §3
// Ownership).
type PlanarEmbedding struct {
	Graph *Graph

	// Rotation[v] is the clockwise cyclic order of v's neighbours.
	Rotation map[int][]int

	// ExternalFace is a closed walk: ExternalFace[i] and
	// ExternalFace[i+1 mod len] are adjacent in Graph.
	ExternalFace []int
}

// NeighborAfter returns the neighbour immediately clockwise after `from` in
// v's rotation, wrapping around. Panics if from is not a recorded neighbour
// of v — callers must only ask this of vertices present in Rotation.
func (e *PlanarEmbedding) NeighborAfter(v, from int) int {
	rot := e.Rotation[v]
	for i, w := range rot {
		if w == from {
			return rot[(i+1)%len(rot)]
		}
	}
	panic("core: NeighborAfter: from is not a neighbor of v in this rotation")
}

// NeighborBefore is the counter-clockwise counterpart of NeighborAfter.
func (e *PlanarEmbedding) NeighborBefore(v, from int) int {
	rot := e.Rotation[v]
	for i, w := range rot {
		if w == from {
			return rot[(i-1+len(rot))%len(rot)]
		}
	}
	panic("core: NeighborBefore: from is not a neighbor of v in this rotation")
}

// AddedVertexKind distinguishes the two kinds of vertex
// PlanarEmbeddingWithCrossings may insert on an original edge.
type AddedVertexKind int

const (
	// SubdivisionVertex is a degree-2 vertex inserted on an edge, never
	// itself a crossing.
	SubdivisionVertex AddedVertexKind = iota
	// CrossingVertexKind is a degree-4 vertex representing a genuine
	// edge-edge crossing; see Crossing.
	CrossingVertexKind
)

// Crossing is metadata attached to a degree-4 crossing vertex X. X is
// adjacent to four vertices partitioned into two threads (Start1,End1) and
// (Start2,End2): traversing X from Start_i continues out to End_i along the
// i-th thread. The mirror constraint {Start1,Start2,End1,End2} is imposed on
// X (see ecnode.Mirror) so X is recognised in the final embedding as a
// genuine crossing rather than a free branch point.
type Crossing struct {
	Vertex int
	Start1 int
	End1   int
	Start2 int
	End2   int
}

// PlanarEmbeddingWithCrossings is the output of §4.9: an input graph G, a
// planar graph G' obtained by inserting added vertices on G's edges, a
// PlanarEmbedding of G', and for each edge of G the ordered path of G'
// vertices realising it.
type PlanarEmbeddingWithCrossings struct {
	Original  *Graph
	Graph     *Graph
	Embedding *PlanarEmbedding

	// OriginalVertexToVertex maps an Original vertex id to its Graph id.
	OriginalVertexToVertex map[int]int

	// AddedVertices maps an Original edge to the ordered path of Graph
	// vertex ids realising it (including both endpoints).
	AddedVertices map[UnorderedPair[int]][]int

	// Crossings holds one Crossing per crossing vertex introduced, indexed
	// by its Graph vertex id.
	Crossings map[int]*Crossing
}
