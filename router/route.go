package router

import "github.com/katalvlaran/ecplanar/gadget"

// Target describes where one port's wire must terminate: column x on the
// allotted region's top edge (Top == true) or bottom edge (Top == false).
type Target struct {
	Port   int
	Column int
	Top    bool
}

// Layout is the placement result of routing one gadget: every rectangle
// (the gadget itself, each wire, each barrier) mapped to its top-left point
// within the allotted region, plus the region's own size.
type Layout struct {
	Width, Height int
	Placements    map[gadget.Gadget]gadget.Point
	Order         []gadget.Gadget // placement order, for deterministic iteration
}

// Route lays out g centred in its minimum-size allotted region (per
// MinWidth/MinHeight) and threads one rectilinear wire path from each port
// to its Target: up to two turn wires for a top or bottom port, up to three
// for a left or right port. One barrier is placed beside each routed port.
// Each port gets a private, monotonically offset lane rather than a shared
// winding order (see package doc).
func Route(g gadget.Gadget, targets []Target, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) (*Layout, error) {
	w := MinWidth(g, wf, bf)
	h := MinHeight(g, wf, bf)
	ox := (w - g.Width()) / 2
	oy := (h - g.Height()) / 2

	lay := &Layout{Width: w, Height: h, Placements: map[gadget.Gadget]gadget.Point{}}
	place := func(gd gadget.Gadget, x, y int) {
		lay.Placements[gd] = gadget.Point{X: x, Y: y}
		lay.Order = append(lay.Order, gd)
	}
	place(g, ox, oy)

	unit := wf.MinWireWidth() + bf.MinWidth()
	if wf.MinWireHeight()+bf.MinHeight() > unit {
		unit = wf.MinWireHeight() + bf.MinHeight()
	}

	ports := g.Ports()
	byPort := map[int]Target{}
	for _, t := range targets {
		byPort[t.Port] = t
	}

	for lane, p := range ports {
		t, ok := byPort[lane]
		if !ok {
			continue
		}
		startX, startY := ox+p.X, oy+p.Y
		side := gadget.SideOf(p, g.Width(), g.Height())

		// bend row: a private horizontal rail above the gadget (target on
		// top) or below it (target on bottom), offset per lane so distinct
		// ports never share the same rail.
		bendY := oy - unit*(lane+1)
		if !t.Top {
			bendY = oy + g.Height() + unit*(lane+1)
		}
		if bendY < 0 {
			bendY = 0
		}

		switch side {
		case gadget.Top, gadget.Bottom:
			placeVertical(lay, wf, startX, startY, bendY)
			if startX != t.Column {
				placeTurn(lay, wf, startX, bendY)
				placeHorizontal(lay, wf, startX, t.Column, bendY)
				placeTurn(lay, wf, t.Column, bendY)
			}
			placeVertical(lay, wf, t.Column, bendY, boundaryY(t, h))
			placeCornerBarrier(lay, bf, startX, startY, side)
		default: // Left, Right
			bendX := startX
			placeHorizontal(lay, wf, startX, bendX, startY)
			placeTurn(lay, wf, bendX, startY)
			placeVertical(lay, wf, bendX, startY, bendY)
			if bendX != t.Column {
				placeTurn(lay, wf, bendX, bendY)
				placeHorizontal(lay, wf, bendX, t.Column, bendY)
				placeTurn(lay, wf, t.Column, bendY)
			}
			placeVertical(lay, wf, t.Column, bendY, boundaryY(t, h))
			placeCornerBarrier(lay, bf, startX, startY, side)
		}
	}

	return lay, nil
}

func boundaryY(t Target, h int) int {
	if t.Top {
		return 0
	}
	return h
}

func placeHorizontal(lay *Layout, wf gadget.IPlanarWireFactory, x1, x2, y int) {
	width := x2 - x1
	if width == 0 {
		return
	}
	if width < 0 {
		width = -width
		x1 = x2
	}
	wireG := wf.CreateHorizontalWire(width)
	lay.Placements[wireG] = gadget.Point{X: x1, Y: y}
	lay.Order = append(lay.Order, wireG)
}

func placeVertical(lay *Layout, wf gadget.IPlanarWireFactory, x, y1, y2 int) {
	height := y2 - y1
	if height == 0 {
		return
	}
	if height < 0 {
		height = -height
		y1 = y2
	}
	wireG := wf.CreateVerticalWire(height)
	lay.Placements[wireG] = gadget.Point{X: x, Y: y1}
	lay.Order = append(lay.Order, wireG)
}

func placeTurn(lay *Layout, wf gadget.IPlanarWireFactory, x, y int) {
	turn := wf.CreateTurnWire()
	lay.Placements[turn] = gadget.Point{X: x, Y: y}
	lay.Order = append(lay.Order, turn)
}

// placeCornerBarrier reserves a minWidth x minHeight filler rectangle just
// outside the gadget at the port's side, covering the corner-neighbourhood
// obligation of §4.11 only in part: one barrier per routed port, and the
// gadget's own corners get none.
func placeCornerBarrier(lay *Layout, bf gadget.IPlanarBarrierFactory, x, y int, side gadget.Side) {
	bw, bh := bf.MinWidth(), bf.MinHeight()
	var bx, by int
	switch side {
	case gadget.Top:
		bx, by = x-bw, y-bh
	case gadget.Bottom:
		bx, by = x, y
	case gadget.Left:
		bx, by = x-bw, y
	default: // Right
		bx, by = x, y-bh
	}
	b := bf.CreateBarrier(bw, bh)
	lay.Placements[b] = gadget.Point{X: bx, Y: by}
	lay.Order = append(lay.Order, b)
}
