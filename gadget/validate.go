package gadget

// Validate checks a Gadget of size w×h against spec §4's port contract:
// every port on the boundary, no duplicates, listed in clockwise order
// starting at the top-left-most port, and (when minGap > 0) at least minGap
// lattice units between any two ports that share a side.
func Validate(g Gadget, minGap int) error {
	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return ErrInvalidGadget
	}
	ports := g.Ports()
	seen := map[Point]bool{}
	perim := make([]int, len(ports))
	for i, p := range ports {
		if !onBoundary(p, w, h) {
			return ErrInvalidGadget
		}
		if seen[p] {
			return ErrInvalidGadget
		}
		seen[p] = true
		perim[i] = perimeterParam(p, w, h)
	}
	for i := 1; i < len(perim); i++ {
		if perim[i] < perim[i-1] {
			return ErrInvalidGadget
		}
	}
	if minGap > 0 {
		bySide := map[Side][]Point{}
		for _, p := range ports {
			s := SideOf(p, w, h)
			bySide[s] = append(bySide[s], p)
		}
		for s, pts := range bySide {
			for i := 1; i < len(pts); i++ {
				if gapAlong(s, pts[i-1], pts[i]) < minGap {
					return ErrInvalidGadget
				}
			}
		}
	}
	return nil
}

func onBoundary(p Point, w, h int) bool {
	if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
		return false
	}
	return p.X == 0 || p.X == w || p.Y == 0 || p.Y == h
}

// perimeterParam gives the clockwise distance of p from (0,0) walking
// top -> right -> bottom -> left, used both to classify Side and to check
// the required clockwise port ordering.
func perimeterParam(p Point, w, h int) int {
	switch SideOf(p, w, h) {
	case Top:
		return p.X
	case Right:
		return w + p.Y
	case Bottom:
		return w + h + (w - p.X)
	default: // Left
		return 2*w + h + (h - p.Y)
	}
}

func gapAlong(s Side, a, b Point) int {
	switch s {
	case Top, Bottom:
		d := b.X - a.X
		if d < 0 {
			d = -d
		}
		return d
	default:
		d := b.Y - a.Y
		if d < 0 {
			d = -d
		}
		return d
	}
}
