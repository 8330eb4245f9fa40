package dualgraph

import "github.com/katalvlaran/ecplanar/core"

// DualVertex is one face of a PlanarEmbedding.
type DualVertex struct {
	ID   int
	Face []int // the face's directed vertex walk, as traced from the embedding
}

// Dual is the dual graph of a PlanarEmbedding: one DualVertex per face, with
// positive-integer-count adjacency between faces that share at least one
// edge (self-loops — a face adjacent to itself across a bridge edge — are
// never recorded, per spec §4.10).
type Dual struct {
	Vertices []*DualVertex

	// EdgeToFace[(u,v)] is the id of the face to the right of the directed
	// edge u->v (i.e. the face whose walk contains u immediately followed by
	// v).
	EdgeToFace map[[2]int]int

	// Adjacency[a][b] counts how many original undirected edges separate
	// face a from face b (0 if a == b or they share none).
	Adjacency map[int]map[int]int

	// DualEdgeToEdges[{a,b}] lists every original undirected edge whose two
	// sides are faces a and b.
	DualEdgeToEdges map[core.UnorderedPair[int]][]core.UnorderedPair[int]
}

// Build computes the dual graph of emb.
func Build(emb *core.PlanarEmbedding) *Dual {
	faces := traceFaces(emb.Rotation)
	d := &Dual{
		EdgeToFace:      map[[2]int]int{},
		Adjacency:       map[int]map[int]int{},
		DualEdgeToEdges: map[core.UnorderedPair[int]][]core.UnorderedPair[int]{},
	}
	for id, f := range faces {
		d.Vertices = append(d.Vertices, &DualVertex{ID: id, Face: f})
		d.Adjacency[id] = map[int]int{}
		for i, u := range f {
			v := f[(i+1)%len(f)]
			d.EdgeToFace[[2]int{u, v}] = id
		}
	}
	seen := map[core.UnorderedPair[int]]bool{}
	for _, f := range faces {
		for i, u := range f {
			v := f[(i+1)%len(f)]
			ue := core.NewUnorderedPair(u, v)
			if seen[ue] {
				continue
			}
			seen[ue] = true
			a, aok := d.EdgeToFace[[2]int{u, v}]
			b, bok := d.EdgeToFace[[2]int{v, u}]
			if !aok || !bok || a == b {
				continue
			}
			d.Adjacency[a][b]++
			d.Adjacency[b][a]++
			fp := core.NewUnorderedPair(a, b)
			d.DualEdgeToEdges[fp] = append(d.DualEdgeToEdges[fp], ue)
		}
	}
	return d
}

// RightFaces returns the (possibly repeated) ids of every face incident to
// vertex v, in v's rotation order.
func (d *Dual) RightFaces(emb *core.PlanarEmbedding, v int) []int {
	var out []int
	for _, w := range emb.Rotation[v] {
		if id, ok := d.EdgeToFace[[2]int{v, w}]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ShortestPath returns the sequence of face ids on a shortest dual path from
// any face in starts to any face in ends (a plain BFS), or nil if none
// exists.
func ShortestPath(d *Dual, starts, ends []int) []int {
	endSet := make(map[int]bool, len(ends))
	for _, e := range ends {
		endSet[e] = true
	}
	prev := map[int]int{}
	visited := map[int]bool{}
	var queue []int
	for _, s := range starts {
		if !visited[s] {
			visited[s] = true
			prev[s] = -1
			queue = append(queue, s)
		}
	}
	var found = -1
	for len(queue) > 0 && found == -1 {
		u := queue[0]
		queue = queue[1:]
		if endSet[u] {
			found = u
			break
		}
		var nbrs []int
		for v := range d.Adjacency[u] {
			if d.Adjacency[u][v] > 0 {
				nbrs = append(nbrs, v)
			}
		}
		sortInts(nbrs)
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}
	if found == -1 {
		return nil
	}
	var path []int
	for cur := found; cur != -1; cur = prev[cur] {
		path = append([]int{cur}, path...)
	}
	return path
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// traceFaces derives every face of rot, mirroring planarembed's internal
// algorithm (kept as an independent, package-local copy since planarembed
// does not export it: a directed half-edge walk using the "next clockwise
// at the far end" rule).
func traceFaces(rot map[int][]int) [][]int {
	visited := make(map[[2]int]bool)
	var ids []int
	for v := range rot {
		ids = append(ids, v)
	}
	sortInts(ids)

	var faces [][]int
	for _, u := range ids {
		for _, v := range rot[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			var face []int
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

func neighborAfter(rot map[int][]int, v, from int) int {
	ord := rot[v]
	for i, w := range ord {
		if w == from {
			return ord[(i+1)%len(ord)]
		}
	}
	if len(ord) == 1 {
		return ord[0]
	}
	return from
}
