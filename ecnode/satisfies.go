package ecnode

// Satisfies reports whether the cyclic neighbour order `order` (as produced
// around the constrained vertex by a PlanarEmbedding) is a valid
// linearisation of t: leaves in order, Oriented order preserved exactly,
// Mirror order matching forwards or exactly reversed, Group children
// contiguous (in any internal arrangement).
//
// order must contain each of t's leaves exactly once, with no other
// elements; it is treated as a cyclic sequence (the match may start at any
// rotation of order).
func (t *Tree) Satisfies(order []int) bool {
	if len(order) == 0 {
		return t.Root < 0
	}
	for shift := range order {
		rotated := rotate(order, shift)
		if consumed, ok := matchNode(t, t.Root, rotated); ok && consumed == len(rotated) {
			return true
		}
	}
	return false
}

func rotate(xs []int, shift int) []int {
	out := make([]int, len(xs))
	for i := range xs {
		out[i] = xs[(i+shift)%len(xs)]
	}
	return out
}

// matchNode attempts to match the subtree at idx as a prefix of seq,
// returning how many elements of seq it consumed and whether the match
// succeeded.
func matchNode(t *Tree, idx int, seq []int) (int, bool) {
	n := t.Node(idx)
	if n.IsLeaf() {
		if len(seq) == 0 || seq[0] != n.Neighbor {
			return 0, false
		}
		return 1, true
	}

	switch n.Kind {
	case Oriented:
		return matchSequence(t, n.Children, seq, false)
	case Mirror:
		if c, ok := matchSequence(t, n.Children, seq, false); ok {
			return c, true
		}
		return matchSequence(t, n.Children, seq, true)
	case Group:
		return matchGroup(t, n.Children, seq)
	default:
		return 0, false
	}
}

func matchSequence(t *Tree, children []int, seq []int, reversed bool) (int, bool) {
	order := children
	if reversed {
		order = make([]int, len(children))
		for i, c := range children {
			order[len(children)-1-i] = c
		}
	}
	total := 0
	for _, c := range order {
		n, ok := matchNode(t, c, seq[total:])
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// matchGroup consumes a permutation of children (each matched contiguously,
// in any order) as a prefix of seq.
func matchGroup(t *Tree, children []int, seq []int) (int, bool) {
	remaining := append([]int(nil), children...)
	total := 0
	for len(remaining) > 0 {
		matched := -1
		var consumed int
		for i, c := range remaining {
			n, ok := matchNode(t, c, seq[total:])
			if ok {
				matched, consumed = i, n
				break
			}
		}
		if matched < 0 {
			return 0, false
		}
		total += consumed
		remaining = append(remaining[:matched], remaining[matched+1:]...)
	}
	return total, true
}
