package spqr

import "github.com/katalvlaran/ecplanar/core"

// Kind tags the three SPQR node variants.
type Kind int

const (
	SNode Kind = iota
	PNode
	RNode
)

func (k Kind) String() string {
	switch k {
	case SNode:
		return "S"
	case PNode:
		return "P"
	case RNode:
		return "R"
	default:
		return "?"
	}
}

// EdgeInfo annotates one MultiEdge of a Node's skeleton: whether it is
// virtual, and if so which child Node (and which edge of that child's own
// skeleton) it is glued to. A virtual edge with ChildNode == nil is this
// Node's own "reference" edge toward its Parent (set once the Parent is
// known); the Tree's Root has no reference edge.
type EdgeInfo struct {
	Virtual     bool
	ChildNode   *Node
	ChildEdgeID int
}

// Node is one SPQR-tree node: a skeleton multigraph plus per-edge metadata
// and a link to its Parent (nil at the Root).
type Node struct {
	Kind     Kind
	Skeleton *core.MultiGraph
	EdgeInfo map[int]*EdgeInfo // keyed by Skeleton MultiEdge.ID

	// LocalToOrig / OrigToLocal map this node's own Skeleton vertex ids to
	// and from the original (whole-graph) vertex ids.
	LocalToOrig map[int]int
	OrigToLocal map[int]int

	Parent       *Node
	ParentEdgeID int // edge id within this Node's own Skeleton serving as the reference edge up to Parent; -1 at the Root
}

// Tree is the SPQR tree of one biconnected component.
type Tree struct {
	Root  *Node
	Nodes []*Node

	// TrivialEdge holds (origA, origB) when the biconnected component was
	// a single edge: no SPQR node is meaningful, and Root is nil.
	TrivialEdge *core.UnorderedPair[int]
}
