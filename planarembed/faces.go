package planarembed

// faceWalk is a closed directed-edge walk: consecutive entries (w[i],
// w[i+1 mod len]) are the half-edges bounding one face, traced with the
// "next clockwise at the far end" rule (spec §8 property 2).
type faceWalk []int

func (f faceWalk) containsAll(vs []int) bool {
	set := make(map[int]bool, len(f))
	for _, v := range f {
		set[v] = true
	}
	for _, v := range vs {
		if !set[v] {
			return false
		}
	}
	return true
}

// predecessorAt returns the walk predecessor of the first occurrence of v,
// or (0, false) if v does not appear.
func (f faceWalk) predecessorAt(v int) (int, bool) {
	for i, w := range f {
		if w == v {
			return f[(i-1+len(f))%len(f)], true
		}
	}
	return 0, false
}

// neighborAfter returns the neighbour immediately clockwise after `from` in
// v's rotation, wrapping around.
func neighborAfter(rot map[int][]int, v, from int) int {
	ord := rot[v]
	for i, w := range ord {
		if w == from {
			return ord[(i+1)%len(ord)]
		}
	}
	// from is v's only neighbour listed once but arrived via a parallel
	// direction (degenerate 2-cycle component): fall back to the other
	// entry if present.
	if len(ord) == 1 {
		return ord[0]
	}
	return from
}

// traceFaces derives every face of the planar embedding described by rot,
// in a deterministic order (outermost loop over ascending vertex id, inner
// loop over rotation order, skipping already-visited half-edges).
func traceFaces(rot map[int][]int) []faceWalk {
	visited := make(map[[2]int]bool)
	var ids []int
	for v := range rot {
		ids = append(ids, v)
	}
	sortInts(ids)

	var faces []faceWalk
	for _, u := range ids {
		for _, v := range rot[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			var face faceWalk
			cu, cv := u, v
			for {
				visited[[2]int{cu, cv}] = true
				face = append(face, cu)
				nxt := neighborAfter(rot, cv, cu)
				cu, cv = cv, nxt
				if cu == u && cv == v {
					break
				}
			}
			faces = append(faces, face)
		}
	}
	return faces
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// externalFaceWalk picks one face of rot to serve as the outer face: the
// longest face walk, a simple deterministic heuristic (the outer face of a
// 2-connected planar graph is not otherwise distinguished combinatorially;
// any face is a valid outer face per spec §3 "the outer face is *a* face
// walk").
func externalFaceWalk(rot map[int][]int) []int {
	faces := traceFaces(rot)
	best := faceWalk(nil)
	for _, f := range faces {
		if len(f) > len(best) {
			best = f
		}
	}
	return append([]int(nil), best...)
}
