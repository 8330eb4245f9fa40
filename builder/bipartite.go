package builder

import (
	"fmt"

	"github.com/katalvlaran/ecplanar/core"
)

const minBipartiteSide = 1

// CompleteBipartite builds K_n1,n2: the left partition is vertices 0..n1-1,
// the right partition n1..n1+n2-1, with every left-right pair connected in
// row-major order. Returns the graph plus the two partitions' vertex ids for
// convenience (e.g. constraint-building in tests).
func CompleteBipartite(n1, n2 int) (g *core.Graph, left, right []int, err error) {
	if n1 < minBipartiteSide || n2 < minBipartiteSide {
		return nil, nil, nil, fmt.Errorf("CompleteBipartite: n1=%d n2=%d < min=%d: %w", n1, n2, minBipartiteSide, ErrTooFewVertices)
	}
	g = core.NewGraph()
	left = make([]int, n1)
	right = make([]int, n2)
	lv := make([]*core.Vertex, n1)
	for i := 0; i < n1; i++ {
		v := g.NewVertex()
		lv[i] = v
		left[i] = v.ID()
	}
	rv := make([]*core.Vertex, n2)
	for j := 0; j < n2; j++ {
		v := g.NewVertex()
		rv[j] = v
		right[j] = v.ID()
	}
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			if e := g.AddEdge(lv[i], rv[j]); e != nil {
				return nil, nil, nil, fmt.Errorf("CompleteBipartite: AddEdge(%d,%d): %w", lv[i].ID(), rv[j].ID(), e)
			}
		}
	}
	return g, left, right, nil
}
