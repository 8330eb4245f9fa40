package spqr

import (
	"testing"

	"github.com/katalvlaran/ecplanar/bctree"
	"github.com/katalvlaran/ecplanar/core"
)

func onlyComponent(t *testing.T, g *core.Graph) *bctree.Component {
	t.Helper()
	comps := bctree.Decompose(g)
	if len(comps) != 1 {
		t.Fatalf("expected exactly one biconnected component, got %d", len(comps))
	}
	return comps[0]
}

func TestBuildTrivialEdge(t *testing.T) {
	g := core.NewGraph()
	a, b := g.NewVertex(), g.NewVertex()
	_ = g.AddEdge(a, b)

	tree := Build(onlyComponent(t, g))
	if tree.TrivialEdge == nil {
		t.Fatal("expected a trivial edge, got a Root node instead")
	}
	if tree.Root != nil {
		t.Fatal("trivial component must have a nil Root")
	}
	if !tree.TrivialEdge.Has(a.ID()) || !tree.TrivialEdge.Has(b.ID()) {
		t.Fatalf("trivial edge %v does not name both original endpoints", tree.TrivialEdge)
	}
}

func TestBuildCycleIsSNode(t *testing.T) {
	g := core.NewGraph()
	n := 5
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(vs[i], vs[(i+1)%n])
	}

	tree := Build(onlyComponent(t, g))
	if tree.Root == nil {
		t.Fatal("expected a Root node for a cycle")
	}
	if tree.Root.Kind != SNode {
		t.Fatalf("expected cycle to collapse to a single S-node, got %s", tree.Root.Kind)
	}
	if got := len(tree.Root.Skeleton.Edges()); got != n {
		t.Fatalf("expected %d skeleton edges, got %d", n, got)
	}
	if tree.Root.ParentEdgeID != -1 {
		t.Fatalf("root must have ParentEdgeID -1, got %d", tree.Root.ParentEdgeID)
	}
}

func TestBuildK4IsRNode(t *testing.T) {
	g := core.NewGraph()
	vs := make([]*core.Vertex, 4)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(vs[i], vs[j])
		}
	}

	tree := Build(onlyComponent(t, g))
	if tree.Root == nil || tree.Root.Kind != RNode {
		t.Fatalf("expected K4 to reduce to a single R-node, got %v", tree.Root)
	}
	if got := len(tree.Root.Skeleton.Vertices()); got != 4 {
		t.Fatalf("expected R-node skeleton with 4 vertices, got %d", got)
	}
	if got := len(tree.Root.Skeleton.Edges()); got != 6 {
		t.Fatalf("expected R-node skeleton with 6 edges, got %d", got)
	}
}

func TestBuildThetaGraphNestsPAndSUnderTheOuterCycle(t *testing.T) {
	// Two hubs joined by three internally-disjoint paths. The shortest
	// 2-edge path contracts into an S-node; that S-node's virtual edge then
	// bundles with the direct edge into a P-node; the P-node's own virtual
	// edge, the remaining 3-edge path, and the hubs then form one outer
	// 4-cycle, which is itself an S-node skeleton and the tree's Root.
	g := core.NewGraph()
	u, w := g.NewVertex(), g.NewVertex()
	_ = g.AddEdge(u, w)

	mid := g.NewVertex()
	_ = g.AddEdge(u, mid)
	_ = g.AddEdge(mid, w)

	m1, m2 := g.NewVertex(), g.NewVertex()
	_ = g.AddEdge(u, m1)
	_ = g.AddEdge(m1, m2)
	_ = g.AddEdge(m2, w)

	tree := Build(onlyComponent(t, g))
	if tree.Root == nil || tree.Root.Kind != SNode {
		t.Fatalf("expected the outer structure to be a 4-cycle S-node, got %v", tree.Root)
	}
	if got := len(tree.Root.Skeleton.Edges()); got != 4 {
		t.Fatalf("expected the outer S-node to have 4 edges, got %d", got)
	}

	var pNode, innerS *Node
	for _, n := range tree.Nodes {
		switch n.Kind {
		case PNode:
			pNode = n
		case SNode:
			if n != tree.Root {
				innerS = n
			}
		}
	}
	if pNode == nil {
		t.Fatal("expected one P-node bundling the direct edge with the 2-path's virtual edge")
	}
	// 2 bundled edges (the direct edge and the contracted path's virtual
	// edge) plus the P-node's own closing edge up to its parent.
	if got := len(pNode.Skeleton.Edges()); got != 3 {
		t.Fatalf("expected the P-node skeleton to have 3 edges, got %d", got)
	}
	if pNode.Parent != tree.Root {
		t.Fatal("the P-node must be a child of the outer cycle")
	}
	if innerS == nil {
		t.Fatal("expected one S-node for the contracted 2-edge path")
	}
	// The path's 2 real edges plus the S-node's own closing edge up to its
	// parent (the P-node).
	if got := len(innerS.Skeleton.Edges()); got != 3 {
		t.Fatalf("expected the inner S-node skeleton to have 3 edges, got %d", got)
	}
	if innerS.Parent != pNode {
		t.Fatal("the inner S-node must be a child of the P-node")
	}
}
