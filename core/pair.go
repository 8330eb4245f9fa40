package core

import "cmp"

// UnorderedPair is a value equal to {a,b} regardless of argument order, fit
// for use as a map/set key for edges. Equality and hashing (via Go's native
// struct comparison, since the fields are always stored low-then-high) are
// symmetric in A and B.
type UnorderedPair[T cmp.Ordered] struct {
	A, B T
}

// NewUnorderedPair returns the UnorderedPair of a and b with fields stored
// in a canonical (non-decreasing) order, so two pairs built from the same
// two values in either order compare and hash identically.
func NewUnorderedPair[T cmp.Ordered](a, b T) UnorderedPair[T] {
	if a <= b {
		return UnorderedPair[T]{A: a, B: b}
	}
	return UnorderedPair[T]{A: b, B: a}
}

// Has reports whether x is one of the pair's two elements.
func (p UnorderedPair[T]) Has(x T) bool { return p.A == x || p.B == x }

// Other returns the element of the pair that is not x, and whether x was
// actually a member of the pair.
func (p UnorderedPair[T]) Other(x T) (T, bool) {
	switch x {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	default:
		var zero T
		return zero, false
	}
}
