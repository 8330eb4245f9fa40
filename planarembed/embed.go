package planarembed

import (
	"sort"

	"github.com/katalvlaran/ecplanar/core"
)

// Embed attempts to build a planar embedding of the connected graph g.
// Returns (embedding, true) on success, or (nil, false) if g is non-planar.
// g is assumed connected; callers (package ecembed) are responsible for
// restricting g to one connected component before calling.
func Embed(g *core.Graph) (*core.PlanarEmbedding, bool) {
	if g.NumVertices() == 0 {
		return &core.PlanarEmbedding{Graph: g, Rotation: map[int][]int{}}, true
	}
	if g.NumVertices() == 1 {
		v := g.Vertices()[0].ID()
		return &core.PlanarEmbedding{Graph: g, Rotation: map[int][]int{v: nil}, ExternalFace: []int{v}}, true
	}

	rot := make(map[int][]int)
	if !embedConnected(g, rot) {
		return nil, false
	}
	ext := externalFaceWalk(rot)
	return &core.PlanarEmbedding{Graph: g, Rotation: rot, ExternalFace: ext}, true
}

// embedConnected fills rot with a valid planar rotation system for g,
// mutating it in place, and returns false if g is non-planar. Assumes g is
// connected and has at least 2 vertices.
func embedConnected(g *core.Graph, rot map[int][]int) bool {
	cyc := findCycle(g)
	if cyc == nil {
		embedTree(g, rot)
		return true
	}
	for i, v := range cyc {
		n := len(cyc)
		prev := cyc[(i-1+n)%n]
		next := cyc[(i+1)%n]
		rot[v] = []int{prev, next}
	}
	placed := make(map[core.UnorderedPair[int]]bool)
	for i := range cyc {
		placed[core.NewUnorderedPair(cyc[i], cyc[(i+1)%len(cyc)])] = true
	}

	for {
		faces := traceFaces(rot)
		unplaced := unplacedEdges(g, placed)
		if len(unplaced) == 0 {
			return true
		}
		bridges := computeBridges(g, rot, placed, unplaced)
		if len(bridges) == 0 {
			// Disconnected remainder with no attachment to H: should not
			// happen for a connected g, but guard against infinite loop.
			return true
		}
		type choice struct {
			bridge    *bridgeGroup
			faceIdx   int
			numFaces  int
		}
		var best *choice
		for _, br := range bridges {
			admissible := admissibleFaces(faces, br.attachments)
			if len(admissible) == 0 {
				return false
			}
			if best == nil || len(admissible) < best.numFaces ||
				(len(admissible) == best.numFaces && br.id < best.bridge.id) {
				best = &choice{bridge: br, faceIdx: admissible[0], numFaces: len(admissible)}
			}
		}
		if !embedBridge(g, rot, placed, best.bridge, faces[best.faceIdx]) {
			return false
		}
	}
}

// findCycle returns the vertex sequence of some cycle in g via DFS back-edge
// detection, or nil if g is acyclic (a tree).
func findCycle(g *core.Graph) []int {
	visited := make(map[int]bool)
	parent := make(map[int]int)
	var cyc []int

	var dfs func(u int) bool
	dfs = func(u int) bool {
		visited[u] = true
		for _, w := range g.Vertex(u).Neighbors() {
			wid := w.ID()
			if p, ok := parent[u]; ok && wid == p {
				continue
			}
			if !visited[wid] {
				parent[wid] = u
				if dfs(wid) {
					return true
				}
			} else {
				// Back edge u->wid: reconstruct the cycle wid..u.
				path := []int{u}
				cur := u
				for cur != wid {
					cur = parent[cur]
					path = append(path, cur)
				}
				cyc = path
				return true
			}
		}
		return false
	}
	for _, v := range g.Vertices() {
		if !visited[v.ID()] {
			if dfs(v.ID()) {
				return cyc
			}
		}
	}
	return nil
}

// embedTree assigns a trivial rotation to the acyclic graph g: every
// rotation of a tree is planar, so neighbours are simply kept in their
// existing (deterministic) iteration order.
func embedTree(g *core.Graph, rot map[int][]int) {
	for _, v := range g.Vertices() {
		var nbrs []int
		for _, w := range v.Neighbors() {
			nbrs = append(nbrs, w.ID())
		}
		rot[v.ID()] = nbrs
	}
}

func unplacedEdges(g *core.Graph, placed map[core.UnorderedPair[int]]bool) []core.UnorderedPair[int] {
	var out []core.UnorderedPair[int]
	for _, e := range g.Edges() {
		if !placed[e] {
			out = append(out, e)
		}
	}
	return out
}

type bridgeGroup struct {
	id          int
	edges       []core.UnorderedPair[int]
	attachments []int // sorted, deterministic
}

// computeBridges groups unplaced edges into bridges relative to the
// already-embedded vertex set (keys of rot): a direct edge between two
// already-embedded vertices is its own single-edge bridge (a chord); all
// other unplaced edges are grouped by connectivity through not-yet-embedded
// vertices.
func computeBridges(g *core.Graph, rot map[int][]int, placed map[core.UnorderedPair[int]]bool, unplaced []core.UnorderedPair[int]) []*bridgeGroup {
	inH := func(v int) bool { _, ok := rot[v]; return ok }

	uf := newUnionFind(g.NumVertices())
	var chords []core.UnorderedPair[int]
	var rest []core.UnorderedPair[int]
	for _, e := range unplaced {
		if inH(e.A) && inH(e.B) {
			chords = append(chords, e)
		} else {
			if !inH(e.A) && !inH(e.B) {
				uf.union(e.A, e.B)
			}
			rest = append(rest, e)
		}
	}

	groups := make(map[int]*bridgeGroup)
	var order []int
	attachSet := make(map[int]map[int]bool)
	for _, e := range rest {
		key := e.A
		if inH(key) {
			key = e.B
		}
		root := uf.find(key)
		br, ok := groups[root]
		if !ok {
			br = &bridgeGroup{id: len(order)}
			groups[root] = br
			attachSet[root] = make(map[int]bool)
			order = append(order, root)
		}
		br.edges = append(br.edges, e)
		if inH(e.A) {
			attachSet[root][e.A] = true
		}
		if inH(e.B) {
			attachSet[root][e.B] = true
		}
	}
	var out []*bridgeGroup
	for _, root := range order {
		br := groups[root]
		br.attachments = sortedKeys(attachSet[root])
		out = append(out, br)
	}
	for _, e := range chords {
		out = append(out, &bridgeGroup{id: len(out), edges: []core.UnorderedPair[int]{e}, attachments: sortedPair(e.A, e.B)})
	}
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedPair(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	return []int{a, b}
}

// admissibleFaces returns the indices into faces of every face whose vertex
// set is a superset of attachments.
func admissibleFaces(faces []faceWalk, attachments []int) []int {
	var out []int
	for i, f := range faces {
		if f.containsAll(attachments) {
			out = append(out, i)
		}
	}
	return out
}

// embedBridge embeds one attachment-to-attachment path of br into face f,
// or (if br has a single attachment point) splices br's whole induced
// subgraph as a pendant piece at that attachment vertex. Marks the absorbed
// edges as placed and extends rot in place. Returns false if a recursive
// sub-embedding turns out non-planar.
func embedBridge(g *core.Graph, rot map[int][]int, placed map[core.UnorderedPair[int]]bool, br *bridgeGroup, f faceWalk) bool {
	if len(br.attachments) <= 1 {
		return splicePendant(g, rot, placed, br)
	}
	path, ok := bridgePath(br, br.attachments[0], br.attachments[1])
	if !ok {
		// Attachments not directly connected yet (a larger bridge with more
		// than 2 attachment points): fall back to a BFS path between the
		// two requested endpoints using the bridge's own edges.
		path = bfsPathWithin(br, br.attachments[0], br.attachments[1])
	}
	spliceePath(rot, placed, f, path)
	return true
}

// bridgePath returns the direct edge a-b as a 2-vertex path if br contains
// it, else (nil, false).
func bridgePath(br *bridgeGroup, a, b int) ([]int, bool) {
	for _, e := range br.edges {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return []int{a, b}, true
		}
	}
	return nil, false
}

func bfsPathWithin(br *bridgeGroup, a, b int) []int {
	adj := make(map[int][]int)
	for _, e := range br.edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	attached := make(map[int]bool)
	for _, x := range br.attachments {
		attached[x] = true
	}
	prev := map[int]int{a: -1}
	queue := []int{a}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == b {
			break
		}
		if u != a && attached[u] {
			continue
		}
		for _, w := range adj[u] {
			if _, seen := prev[w]; !seen {
				prev[w] = u
				queue = append(queue, w)
			}
		}
	}
	var path []int
	cur := b
	for cur != -1 {
		path = append([]int{cur}, path...)
		cur = prev[cur]
	}
	return path
}

// spliceePath inserts the interior vertices of path into rot (trivial
// 2-entry rotations) and inserts the path's two new end-edges into the
// rotation corners of face f at its two endpoints, splitting f into two
// faces. Marks every edge of path as placed.
func spliceePath(rot map[int][]int, placed map[core.UnorderedPair[int]]bool, f faceWalk, path []int) {
	for i := 0; i+1 < len(path); i++ {
		placed[core.NewUnorderedPair(path[i], path[i+1])] = true
	}
	for i := 1; i+1 < len(path); i++ {
		rot[path[i]] = []int{path[i-1], path[i+1]}
	}
	insertAtCorner(rot, f, path[0], path[1])
	insertAtCorner(rot, f, path[len(path)-1], path[len(path)-2])
}

// insertAtCorner inserts newNbr into v's rotation immediately after the
// predecessor v had in face f's first corner at v, splitting that corner.
func insertAtCorner(rot map[int][]int, f faceWalk, v int, newNbr int) {
	pred, ok := f.predecessorAt(v)
	if !ok {
		// v has no existing rotation yet (shouldn't happen for an
		// attachment vertex, but guard defensively): start fresh.
		rot[v] = append(rot[v], newNbr)
		return
	}
	ord := rot[v]
	for i, x := range ord {
		if x == pred {
			out := make([]int, 0, len(ord)+1)
			out = append(out, ord[:i+1]...)
			out = append(out, newNbr)
			out = append(out, ord[i+1:]...)
			rot[v] = out
			return
		}
	}
	rot[v] = append(rot[v], newNbr)
}

// splicePendant embeds br's entire induced subgraph as a pendant attached
// at its single attachment vertex, by recursively calling Embed on the
// induced subgraph (attachment vertex included) and merging the resulting
// rotation at every vertex except the attachment, where the new neighbours
// are inserted as one extra branch.
func splicePendant(g *core.Graph, rot map[int][]int, placed map[core.UnorderedPair[int]]bool, br *bridgeGroup) bool {
	sub := core.NewGraph()
	remap := make(map[int]*core.Vertex)
	ensure := func(id int) *core.Vertex {
		if v, ok := remap[id]; ok {
			return v
		}
		v := sub.NewVertex()
		remap[id] = v
		return v
	}
	for _, e := range br.edges {
		_ = sub.AddEdge(ensure(e.A), ensure(e.B))
	}
	sub.Vertex(0) // keep sub referenced; arena already populated via ensure

	subEmb, ok := Embed(sub)
	if !ok {
		return false
	}
	inverse := make(map[int]int, len(remap))
	for orig, v := range remap {
		inverse[v.ID()] = orig
	}
	attach := 0
	if len(br.attachments) == 1 {
		attach = br.attachments[0]
	}
	attachSub := -1
	for subID, orig := range inverse {
		if orig == attach {
			attachSub = subID
		}
	}
	for subID, subNbrs := range subEmb.Rotation {
		orig := inverse[subID]
		var mapped []int
		for _, n := range subNbrs {
			mapped = append(mapped, inverse[n])
		}
		if subID == attachSub {
			rot[orig] = append(rot[orig], mapped...)
		} else {
			rot[orig] = mapped
		}
	}
	for _, e := range br.edges {
		placed[e] = true
	}
	return true
}
