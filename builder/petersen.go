package builder

import "github.com/katalvlaran/ecplanar/core"

// Petersen builds the canonical Petersen graph: outer vertices 0-4 form a
// 5-cycle, inner vertices 5-9 form a 5-cycle connecting every second vertex
// (the pentagram), and spokes connect each outer vertex i to its inner
// counterpart i+5. Used by spec §8 scenario S5 (embed_ec returns absence:
// the Petersen graph is non-planar).
func Petersen() (*core.Graph, error) {
	g := core.NewGraph()
	outer := make([]*core.Vertex, 5)
	inner := make([]*core.Vertex, 5)
	for i := 0; i < 5; i++ {
		outer[i] = g.NewVertex()
	}
	for i := 0; i < 5; i++ {
		inner[i] = g.NewVertex()
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(outer[i], outer[(i+1)%5]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(inner[i], inner[(i+2)%5]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < 5; i++ {
		if err := g.AddEdge(outer[i], inner[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
