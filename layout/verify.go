package layout

import "errors"

// ErrInvalidLayout is the InvalidLayout error kind of spec §7: raised only
// by Verify, a testing-time checker. The production LayoutGadgets path
// guarantees this never occurs.
var ErrInvalidLayout = errors.New("layout: overlapping rectangles")

// Verify reports whether any two placed rectangles in res overlap (ignoring
// degenerate zero-area intersections), for use by tests only.
func Verify(res *Result) error {
	type box struct{ x1, y1, x2, y2 int }
	boxes := make([]box, 0, len(res.Order))
	for _, g := range res.Order {
		p := res.Positions[g]
		boxes = append(boxes, box{p.X, p.Y, p.X + g.Width(), p.Y + g.Height()})
	}
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			ox := min(a.x2, b.x2) - max(a.x1, b.x1)
			oy := min(a.y2, b.y2) - max(a.y1, b.y1)
			if ox > 0 && oy > 0 {
				return ErrInvalidLayout
			}
		}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
