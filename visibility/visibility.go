package visibility

import "github.com/katalvlaran/ecplanar/core"

// Representation is the output of Build: a horizontal bar (Y, MinX, MaxX)
// per vertex, and an x-coordinate per undirected edge, assigned when the
// edge is first traversed.
type Representation struct {
	Y    map[int]int
	MinX map[int]int
	MaxX map[int]int

	// EdgeX[(u,v)] is the x-coordinate assigned to the edge between u and v.
	EdgeX map[core.UnorderedPair[int]]int

	Width, Height int
}

// Build computes a Representation of emb, with per-vertex minimum
// width/height and a fixed inter-column/inter-row spacing.
func Build(emb *core.PlanarEmbedding, minWidth, minHeight map[int]int, spacing int) *Representation {
	rep := &Representation{
		Y: map[int]int{}, MinX: map[int]int{}, MaxX: map[int]int{},
		EdgeX: map[core.UnorderedPair[int]]int{},
	}

	var ids []int
	for v := range emb.Rotation {
		ids = append(ids, v)
	}
	sortIntsV(ids)

	visited := map[int]bool{}
	y := 0
	x := 0
	var dfs func(v int)
	dfs = func(v int) {
		if visited[v] {
			return
		}
		visited[v] = true
		mh := minHeight[v]
		if mh <= 0 {
			mh = 1
		}
		rep.Y[v] = y
		y += mh + spacing

		mw := minWidth[v]
		if mw <= 0 {
			mw = 1
		}
		rep.MinX[v] = x
		rep.MaxX[v] = x + mw
		x += mw + spacing

		for _, w := range emb.Rotation[v] {
			e := core.NewUnorderedPair(v, w)
			if _, ok := rep.EdgeX[e]; !ok {
				rep.EdgeX[e] = x
				x += spacing
			}
			dfs(w)
		}
	}
	for _, v := range ids {
		dfs(v)
	}

	rep.Width = x
	rep.Height = y
	return rep
}

func sortIntsV(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
