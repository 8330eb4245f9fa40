package core

import "testing"

func TestGraphAddEdgeSymmetric(t *testing.T) {
	g := NewGraph()
	a := g.NewVertex()
	b := g.NewVertex()
	if err := g.AddEdge(a, b); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge(a, b) || !g.HasEdge(b, a) {
		t.Fatal("expected symmetric adjacency")
	}
	if a.Degree() != 1 || b.Degree() != 1 {
		t.Fatalf("expected degree 1 on both ends, got %d/%d", a.Degree(), b.Degree())
	}
}

func TestGraphAddEdgeIdempotent(t *testing.T) {
	g := NewGraph()
	a, b := g.NewVertex(), g.NewVertex()
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, b)
	if a.Degree() != 1 {
		t.Fatalf("expected idempotent AddEdge, got degree %d", a.Degree())
	}
}

func TestGraphAddEdgeSelfLoop(t *testing.T) {
	g := NewGraph()
	a := g.NewVertex()
	if err := g.AddEdge(a, a); err != ErrSelfLoop {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestGraphRemoveEdge(t *testing.T) {
	g := NewGraph()
	a, b := g.NewVertex(), g.NewVertex()
	_ = g.AddEdge(a, b)
	if err := g.RemoveEdge(a, b); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge(a, b) {
		t.Fatal("expected edge removed")
	}
	if err := g.RemoveEdge(a, b); err != ErrEdgeNotFound {
		t.Fatalf("expected ErrEdgeNotFound, got %v", err)
	}
}

func TestGraphForeignVertex(t *testing.T) {
	g1, g2 := NewGraph(), NewGraph()
	a := g1.NewVertex()
	b := g2.NewVertex()
	if err := g1.AddEdge(a, b); err != ErrForeignVertex {
		t.Fatalf("expected ErrForeignVertex, got %v", err)
	}
}

func TestUnorderedPairSymmetric(t *testing.T) {
	p1 := NewUnorderedPair(1, 2)
	p2 := NewUnorderedPair(2, 1)
	if p1 != p2 {
		t.Fatalf("expected symmetric pairs to be equal: %v vs %v", p1, p2)
	}
	if other, ok := p1.Other(1); !ok || other != 2 {
		t.Fatalf("Other(1) = %v, %v, want 2, true", other, ok)
	}
}

func TestGraphEdgesDeterministic(t *testing.T) {
	g := NewGraph()
	vs := make([]*Vertex, 4)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	_ = g.AddEdge(vs[0], vs[1])
	_ = g.AddEdge(vs[1], vs[2])
	_ = g.AddEdge(vs[2], vs[3])

	first := g.Edges()
	second := g.Edges()
	if len(first) != len(second) {
		t.Fatalf("non-deterministic edge count")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic edge order at %d: %v vs %v", i, first[i], second[i])
		}
	}
	if g.NumEdges() != 3 {
		t.Fatalf("NumEdges = %d, want 3", g.NumEdges())
	}
}
