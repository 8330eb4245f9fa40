package ecplanar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecplanar"
	"github.com/katalvlaran/ecplanar/builder"
	"github.com/katalvlaran/ecplanar/dualgraph"
	"github.com/katalvlaran/ecplanar/ecnode"
)

// property 1: for every successful embed_ec, every constrained vertex's
// returned clockwise order is a valid linearisation of its constraint tree.
func TestProperty1ConstraintSatisfaction(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	orientedTree := ecnode.NewTree(0)
	root := orientedTree.AddOriented(-1)
	orientedTree.AddLeaf(root, 1)
	orientedTree.AddLeaf(root, 2)
	orientedTree.AddLeaf(root, 3)

	emb, ok, err := ecplanar.EmbedEC(g, 0, map[int]*ecnode.Tree{0: orientedTree})
	require.NoError(t, err)
	require.True(t, ok, "K4 with one ORIENTED constraint must embed")

	assert.True(t, orientedTree.Satisfies(emb.Rotation[0]),
		"rotation %v does not linearise the ORIENTED constraint", emb.Rotation[0])
}

// property 2: face-walks of any returned embedding close in exactly
// |E| - |V| + c + 1 distinct faces (c = number of connected components; our
// scenario graphs here are always connected, so c = 1).
func TestProperty2Planarity(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)

	emb, ok, err := ecplanar.EmbedEC(g, 0, nil)
	require.NoError(t, err)
	require.True(t, ok)

	dual := dualgraph.Build(emb)
	want := g.NumEdges() - g.NumVertices() + 1 + 1
	assert.Equal(t, want, len(dual.Vertices))
}

// property 3: the declared external face is a closed walk under the
// computed clockwise orders (every consecutive pair, wrapping, is an edge).
func TestProperty3ExternalFaceClosed(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	emb, ok, err := ecplanar.EmbedEC(g, 0, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, emb.ExternalFace)

	walk := emb.ExternalFace
	for i := range walk {
		u, v := walk[i], walk[(i+1)%len(walk)]
		assert.True(t, g.HasEdge(g.Vertex(u), g.Vertex(v)),
			"external face walk step (%d,%d) is not an edge", u, v)
	}
}

// property 4: embed_ec_with_crossings returns a super-graph in which every
// original edge's AddedVertices path is simple (no repeated vertex) and
// actually connects the edge's two endpoints.
func TestProperty4EdgePreservation(t *testing.T) {
	g, err := builder.Complete(5) // K5, non-planar: forces at least one crossing
	require.NoError(t, err)

	withX, err := ecplanar.EmbedECWithCrossings(g, 0, nil)
	require.NoError(t, err)

	for edge, path := range withX.AddedVertices {
		require.GreaterOrEqual(t, len(path), 2)
		seen := map[int]bool{}
		for _, v := range path {
			assert.False(t, seen[v], "path for edge %v repeats vertex %d", edge, v)
			seen[v] = true
		}
		wantA, wantB := withX.OriginalVertexToVertex[edge.A], withX.OriginalVertexToVertex[edge.B]
		assert.Equal(t, wantA, path[0], "path for edge %v does not start at its mapped endpoint", edge)
		assert.Equal(t, wantB, path[len(path)-1], "path for edge %v does not end at its mapped endpoint", edge)
	}
}

// property 5: every crossing vertex has exactly four neighbours, and its
// clockwise order around it matches one of the two MIRROR orderings of
// (start1, start2, end1, end2).
func TestProperty5CrossingMirrorLaw(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)

	withX, err := ecplanar.EmbedECWithCrossings(g, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, withX.Crossings, "K5 must require at least one crossing")

	for x, cr := range withX.Crossings {
		rot := withX.Embedding.Rotation[x]
		require.Len(t, rot, 4, "crossing vertex %d must have degree 4", x)

		mt := ecnode.NewTree(x)
		m := mt.AddMirror(-1)
		mt.AddLeaf(m, cr.Start1)
		mt.AddLeaf(m, cr.Start2)
		mt.AddLeaf(m, cr.End1)
		mt.AddLeaf(m, cr.End2)
		assert.True(t, mt.Satisfies(rot),
			"crossing %d's rotation %v does not satisfy its MIRROR law", x, rot)
	}
}

// go-cmp sanity check: re-running EmbedEC on the same input is deterministic.
func TestEmbedECDeterministic(t *testing.T) {
	g, err := builder.Cycle(7)
	require.NoError(t, err)

	emb1, ok1, err1 := ecplanar.EmbedEC(g, 0, nil)
	emb2, ok2, err2 := ecplanar.EmbedEC(g, 0, nil)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, ok1, ok2)

	if diff := cmp.Diff(emb1.Rotation, emb2.Rotation); diff != "" {
		t.Fatalf("EmbedEC is not deterministic (-first +second):\n%s", diff)
	}
}
