package builder

import (
	"fmt"

	"github.com/katalvlaran/ecplanar/core"
)

const minCycleVertices = 3

// Cycle builds the simple cycle C_n (n >= 3): vertices 0..n-1, edges
// (0,1),(1,2),...,(n-2,n-1),(n-1,0).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g := core.NewGraph()
	vs := make([]*core.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(vs[i], vs[(i+1)%n]); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}
	return g, nil
}
