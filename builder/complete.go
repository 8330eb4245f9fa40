package builder

import (
	"fmt"

	"github.com/katalvlaran/ecplanar/core"
)

const minCompleteVertices = 1

// Complete builds the complete simple graph K_n (n >= 1): vertices 0..n-1,
// every unordered pair {i,j}, i<j, connected exactly once in lexicographic
// order.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}
	g := core.NewGraph()
	vs := make([]*core.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(vs[i], vs[j]); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}
