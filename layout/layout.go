package layout

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/gadget"
	"github.com/katalvlaran/ecplanar/router"
	"github.com/katalvlaran/ecplanar/visibility"
)

// Result is the output of LayoutGadgets: every placed rectangle (gadgets,
// wires, barriers) mapped to its top-left point, with the bounding box
// normalised to start at (0, 0).
type Result struct {
	Positions     map[gadget.Gadget]gadget.Point
	Order         []gadget.Gadget
	Width, Height int
}

// LayoutGadgets is the layout_gadgets entry point of spec §6/§4.12.
// edgePorts[v][w] is the port index of gadgets[v] bound to the edge toward
// w.
func LayoutGadgets(emb *core.PlanarEmbedding, gadgets map[int]gadget.Gadget, edgePorts map[int]map[int]int, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) (*Result, error) {
	minWidth := map[int]int{}
	regionHeight := map[int]int{}
	maxWireBarrierH := wf.MinWireHeight()
	if bf.MinHeight() > maxWireBarrierH {
		maxWireBarrierH = bf.MinHeight()
	}
	for v, gd := range gadgets {
		minWidth[v] = router.MinWidth(gd, wf, bf)
		regionHeight[v] = router.MinHeight(gd, wf, bf) + maxWireBarrierH
	}
	spacing := wf.MinWireWidth() + 2*bf.MinWidth()

	vis := visibility.Build(emb, minWidth, regionHeight, spacing)

	res := &Result{Positions: map[gadget.Gadget]gadget.Point{}}
	place := func(g gadget.Gadget, x, y int) {
		res.Positions[g] = gadget.Point{X: x, Y: y}
		res.Order = append(res.Order, g)
	}

	placedEdge := map[core.UnorderedPair[int]]bool{}

	for v, gd := range gadgets {
		var targets []router.Target
		for _, w := range emb.Rotation[v] {
			port, ok := edgePorts[v][w]
			if !ok {
				continue
			}
			edge := core.NewUnorderedPair(v, w)
			col := vis.EdgeX[edge] - vis.MinX[v]
			if col < 0 {
				col = 0
			}
			targets = append(targets, router.Target{Port: port, Column: col, Top: vis.Y[w] < vis.Y[v]})
		}
		gl, err := router.Route(gd, targets, wf, bf)
		if err != nil {
			return nil, err
		}
		ox, oy := vis.MinX[v], vis.Y[v]
		for _, g := range gl.Order {
			p := gl.Placements[g]
			place(g, ox+p.X, oy+p.Y)
		}

		for _, w := range emb.Rotation[v] {
			edge := core.NewUnorderedPair(v, w)
			if placedEdge[edge] {
				continue
			}
			placedEdge[edge] = true
			x := vis.EdgeX[edge]
			topY, bottomY := vis.Y[v], vis.Y[w]
			if bottomY < topY {
				topY, bottomY = bottomY, topY
			}
			topY += regionHeight[v]
			if topY >= bottomY {
				continue
			}
			wireG := wf.CreateVerticalWire(bottomY - topY)
			place(wireG, x, topY)
			bw, bh := bf.MinWidth(), bf.MinHeight()
			place(bf.CreateBarrier(bw, bh), x-bw, topY)
			place(bf.CreateBarrier(bw, bh), x+1, topY)
		}
	}

	normalize(res)
	return res, nil
}

// normalize translates every placement so the bounding box's minimum
// corner lands at (0, 0).
func normalize(res *Result) {
	minX, minY := 0, 0
	first := true
	for _, p := range res.Positions {
		if first || p.X < minX {
			minX = p.X
		}
		if first || p.Y < minY {
			minY = p.Y
		}
		first = false
	}
	maxX, maxY := 0, 0
	for g, p := range res.Positions {
		np := gadget.Point{X: p.X - minX, Y: p.Y - minY}
		res.Positions[g] = np
		if x := np.X + g.Width(); x > maxX {
			maxX = x
		}
		if y := np.Y + g.Height(); y > maxY {
			maxY = y
		}
	}
	res.Width, res.Height = maxX, maxY
}
