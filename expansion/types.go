package expansion

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
)

// Node is one expanded constraint node: the vertex (or small set of
// vertices) its Kind became in the expansion graph, plus enough bookkeeping
// for package contractor to walk a finished embedding back into original
// neighbour order.
type Node struct {
	Kind ecnode.Kind

	// Leaf is valid iff Kind == ecnode.VertexLeaf: the original neighbour id.
	Leaf int

	// Hub, LeafEdge and Children are valid iff Kind == ecnode.Group. Hub is
	// the merge hub every child attaches to. LeafEdge maps a hub neighbour
	// (in the expansion graph) that realises a leaf directly to the original
	// neighbour id it represents. Children maps a hub neighbour that is a
	// non-leaf child's own entry vertex to that child Node.
	Hub      int
	LeafEdge map[int]int
	Children map[int]*Node

	// H, Anchor, Rim, NumRealChildren, RimLeaf and RimChild are valid iff
	// Kind is ecnode.Oriented or ecnode.Mirror. H is the wheel hub. Anchor is
	// the rim vertex this subtree exposes to its parent, or -1 if this node
	// is its tree's root (nothing above it to expose to). Rim holds every
	// rim vertex in construction order, alternating child spoke (even index)
	// and buffer spoke (odd index); a non-root wheel's final two rim
	// positions are reserved for the edge back up to Anchor's parent. RimLeaf
	// and RimChild are parallel arrays of length NumRealChildren describing
	// each child-spoke position: RimLeaf[i] >= 0 iff that position is a leaf,
	// else RimChild[i] is the recursively built child Node.
	H               int
	Anchor          int
	Rim             []int
	NumRealChildren int
	RimLeaf         []int
	RimChild        []*Node
}

// Result is the output of Expand.
type Result struct {
	// Graph is the expansion graph: an auxiliary, unconstrained simple
	// graph whose planar embeddings (once every O-hub orientation is
	// honoured) project back to constraint-respecting embeddings of the
	// original graph.
	Graph *core.Graph

	// Root maps a constrained original vertex id to the root Node of its
	// (consolidated) constraint tree. Unconstrained vertices have no entry.
	Root map[int]*Node

	// PlainVertex maps an unconstrained original vertex id to its single
	// 1:1 expansion-graph vertex.
	PlainVertex map[int]int

	// EndToExpansionEndpoint[v][w] is the expansion-graph vertex through
	// which the original edge (v,w) attaches on v's side.
	EndToExpansionEndpoint map[int]map[int]int

	// ExpansionEdgeToEdge maps an expansion-graph edge that directly
	// realises an original edge back to that original edge. Purely
	// structural expansion edges (hub-to-spoke, rim cycle edges) are never
	// present here.
	ExpansionEdgeToEdge map[core.UnorderedPair[int]]core.UnorderedPair[int]

	// OHubFirst/OHubSecond map an Oriented wheel's hub vertex to its first
	// two rim vertices: in a valid embedding, OHubSecond[h] must be the
	// clockwise-next neighbour of OHubFirst[h] around h (see
	// skeletonembed.CheckOHubOrientation).
	OHubFirst  map[int]int
	OHubSecond map[int]int
}
