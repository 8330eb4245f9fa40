package planarembed

import (
	"testing"

	"github.com/katalvlaran/ecplanar/core"
)

func complete(n int) *core.Graph {
	g := core.NewGraph()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(vs[i], vs[j])
		}
	}
	return g
}

func TestEmbedK4Planar(t *testing.T) {
	g := complete(4)
	emb, ok := Embed(g)
	if !ok {
		t.Fatal("expected K4 to be planar")
	}
	if len(emb.Rotation) != 4 {
		t.Fatalf("expected rotation for all 4 vertices, got %d", len(emb.Rotation))
	}
	for v, nbrs := range emb.Rotation {
		if len(nbrs) != 3 {
			t.Fatalf("vertex %d: expected degree 3, got %d", v, len(nbrs))
		}
	}
}

func TestEmbedK5NonPlanar(t *testing.T) {
	g := complete(5)
	if _, ok := Embed(g); ok {
		t.Fatal("expected K5 to be non-planar")
	}
}

func TestEmbedCyclePlanar(t *testing.T) {
	g := core.NewGraph()
	n := 6
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(vs[i], vs[(i+1)%n])
	}
	emb, ok := Embed(g)
	if !ok {
		t.Fatal("expected cycle to be planar")
	}
	if len(emb.ExternalFace) != n {
		t.Fatalf("expected external face of length %d, got %d", n, len(emb.ExternalFace))
	}
}

func TestEmbedTreePlanar(t *testing.T) {
	g := core.NewGraph()
	root := g.NewVertex()
	a := g.NewVertex()
	b := g.NewVertex()
	c := g.NewVertex()
	_ = g.AddEdge(root, a)
	_ = g.AddEdge(root, b)
	_ = g.AddEdge(a, c)
	if _, ok := Embed(g); !ok {
		t.Fatal("expected tree to be planar")
	}
}
