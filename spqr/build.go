package spqr

import (
	"github.com/katalvlaran/ecplanar/bctree"
	"github.com/katalvlaran/ecplanar/core"
)

// workEdge is one edge of the in-progress "current" multigraph being
// contracted down to its triconnected skeleton.
type workEdge struct {
	id   int
	a, b int // "true original" whole-graph vertex ids
	info *EdgeInfo
}

// workGraph is a tiny adjacency-list multigraph over true-original vertex
// ids, used only during construction (distinct from core.MultiGraph, which
// needs its own dense local arena per finished Node).
type workGraph struct {
	nextEdgeID int
	edges      map[int]*workEdge
	adj        map[int][]int // vertex -> incident edge ids, insertion order
}

func newWorkGraph() *workGraph {
	return &workGraph{edges: make(map[int]*workEdge), adj: make(map[int][]int)}
}

func (w *workGraph) addEdge(a, b int, info *EdgeInfo) *workEdge {
	e := &workEdge{id: w.nextEdgeID, a: a, b: b, info: info}
	w.nextEdgeID++
	w.edges[e.id] = e
	w.adj[a] = append(w.adj[a], e.id)
	w.adj[b] = append(w.adj[b], e.id)
	return e
}

func (w *workGraph) removeEdge(id int) {
	e := w.edges[id]
	delete(w.edges, id)
	w.adj[e.a] = removeInt(w.adj[e.a], id)
	w.adj[e.b] = removeInt(w.adj[e.b], id)
}

func removeInt(xs []int, v int) []int {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}

func (w *workGraph) degree(v int) int { return len(w.adj[v]) }

// vertices returns every vertex with at least one incident edge, in
// ascending id order (deterministic regardless of Go's randomized map
// iteration, per spec §5).
func (w *workGraph) vertices() []int {
	var out []int
	for v, es := range w.adj {
		if len(es) > 0 {
			out = append(out, v)
		}
	}
	sortInts2(out)
	return out
}

func (w *workGraph) otherEnd(edgeID, v int) int {
	e := w.edges[edgeID]
	if e.a == v {
		return e.b
	}
	return e.a
}

// Build decomposes one biconnected component into an SPQR tree.
func Build(comp *bctree.Component) *Tree {
	origEdges := comp.Graph.Edges()
	if len(origEdges) == 1 {
		pair := core.NewUnorderedPair(comp.LocalToOrig[origEdges[0].A], comp.LocalToOrig[origEdges[0].B])
		return &Tree{TrivialEdge: &pair}
	}

	cur := newWorkGraph()
	for _, e := range origEdges {
		a := comp.LocalToOrig[e.A]
		b := comp.LocalToOrig[e.B]
		cur.addEdge(a, b, &EdgeInfo{Virtual: false})
	}

	tree := &Tree{}

	for {
		if vs := cur.vertices(); len(vs) >= 3 && allDegreeTwo(cur, vs) {
			root := finalizeNode(tree, SNode, cur, vs, nil)
			root.Parent = nil
			root.ParentEdgeID = -1
			tree.Root = root
			return tree
		}
		if mergeParallelBundle(tree, cur) {
			continue
		}
		if mergeSeriesChain(tree, cur) {
			continue
		}
		break
	}

	vs := cur.vertices()
	var final *Node
	if len(vs) == 2 {
		edges := edgeList(cur)
		if len(edges) == 1 {
			final = edges[0].info.ChildNode
		} else {
			final = finalizeNode(tree, PNode, cur, vs, nil)
		}
	} else {
		final = finalizeNode(tree, RNode, cur, vs, nil)
	}
	final.Parent = nil
	final.ParentEdgeID = -1
	tree.Root = final
	return tree
}

func allDegreeTwo(cur *workGraph, vs []int) bool {
	for _, v := range vs {
		if cur.degree(v) != 2 {
			return false
		}
	}
	return true
}

func edgeList(cur *workGraph) []*workEdge {
	var out []*workEdge
	for _, e := range cur.edges {
		out = append(out, e)
	}
	return out
}

// mergeParallelBundle finds one maximal bundle of >=2 parallel edges in cur
// and contracts it into a new P-node, returning true if one was found.
func mergeParallelBundle(tree *Tree, cur *workGraph) bool {
	seen := make(map[core.UnorderedPair[int]][]int)
	var order []core.UnorderedPair[int]
	for _, id := range sortedEdgeIDs(cur) {
		e := cur.edges[id]
		p := core.NewUnorderedPair(e.a, e.b)
		if _, ok := seen[p]; !ok {
			order = append(order, p)
		}
		seen[p] = append(seen[p], id)
	}
	sortPairs(order)
	for _, p := range order {
		ids := seen[p]
		if len(ids) >= 2 {
			contractBundle(tree, cur, p.A, p.B, ids)
			return true
		}
	}
	return false
}

func sortPairs(ps []core.UnorderedPair[int]) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && less(ps[j], ps[j-1]); j-- {
			ps[j-1], ps[j] = ps[j], ps[j-1]
		}
	}
}

func less(a, b core.UnorderedPair[int]) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

func contractBundle(tree *Tree, cur *workGraph, a, b int, edgeIDs []int) {
	node := &Node{Kind: PNode, Skeleton: core.NewMultiGraph(), EdgeInfo: map[int]*EdgeInfo{}}
	local := newLocalMapper(node)
	la, lb := local.get(a), local.get(b)
	for _, id := range edgeIDs {
		e := cur.edges[id]
		me := node.Skeleton.AddEdge(la, lb, e.info.Virtual)
		node.EdgeInfo[me.ID] = e.info
		if e.info.ChildNode != nil {
			e.info.ChildNode.Parent = node
		}
	}
	closing := node.Skeleton.AddEdge(la, lb, true)
	node.EdgeInfo[closing.ID] = &EdgeInfo{Virtual: true}
	node.ParentEdgeID = closing.ID
	tree.Nodes = append(tree.Nodes, node)

	for _, id := range edgeIDs {
		cur.removeEdge(id)
	}
	cur.addEdge(a, b, &EdgeInfo{Virtual: true, ChildNode: node, ChildEdgeID: closing.ID})
}

// mergeSeriesChain finds one maximal chain of degree-2 vertices and
// contracts it into a new S-node, returning true if one was found.
func mergeSeriesChain(tree *Tree, cur *workGraph) bool {
	var starts []int
	for _, v := range cur.vertices() {
		if cur.degree(v) != 2 {
			starts = append(starts, v)
		}
	}
	sortInts2(starts)
	visitedEdge := make(map[int]bool)
	for _, s := range starts {
		for _, eid := range append([]int(nil), cur.adj[s]...) {
			if visitedEdge[eid] {
				continue
			}
			chain, chainEdges := walkChain(cur, s, eid, visitedEdge)
			if len(chain) > 2 {
				contractChain(tree, cur, chain, chainEdges)
				return true
			}
		}
	}
	return false
}

func walkChain(cur *workGraph, start, firstEdge int, visitedEdge map[int]bool) ([]int, []int) {
	chain := []int{start}
	var edges []int
	cv := start
	ce := firstEdge
	for {
		visitedEdge[ce] = true
		edges = append(edges, ce)
		nv := cur.otherEnd(ce, cv)
		chain = append(chain, nv)
		if cur.degree(nv) != 2 {
			break
		}
		// advance to the other incident edge at nv
		var next int = -1
		for _, id := range cur.adj[nv] {
			if id != ce {
				next = id
				break
			}
		}
		if next == -1 || visitedEdge[next] {
			break
		}
		cv, ce = nv, next
	}
	return chain, edges
}

func sortInts2(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func contractChain(tree *Tree, cur *workGraph, chain []int, chainEdges []int) {
	node := &Node{Kind: SNode, Skeleton: core.NewMultiGraph(), EdgeInfo: map[int]*EdgeInfo{}}
	local := newLocalMapper(node)
	for _, v := range chain {
		local.get(v)
	}
	for i, eid := range chainEdges {
		e := cur.edges[eid]
		la, lb := local.get(chain[i]), local.get(chain[i+1])
		me := node.Skeleton.AddEdge(la, lb, e.info.Virtual)
		node.EdgeInfo[me.ID] = e.info
		if e.info.ChildNode != nil {
			e.info.ChildNode.Parent = node
		}
	}
	v0, vk := chain[0], chain[len(chain)-1]
	closing := node.Skeleton.AddEdge(local.get(vk), local.get(v0), true)
	node.EdgeInfo[closing.ID] = &EdgeInfo{Virtual: true}
	node.ParentEdgeID = closing.ID
	tree.Nodes = append(tree.Nodes, node)

	for _, eid := range chainEdges {
		cur.removeEdge(eid)
	}
	cur.addEdge(v0, vk, &EdgeInfo{Virtual: true, ChildNode: node, ChildEdgeID: closing.ID})
}

// finalizeNode builds a terminal node (S-node-as-cycle or the final P/R
// residual) directly from cur's remaining edges, with no dedicated closing
// edge since it will become the Tree's Root.
func finalizeNode(tree *Tree, kind Kind, cur *workGraph, vs []int, _ any) *Node {
	node := &Node{Kind: kind, Skeleton: core.NewMultiGraph(), EdgeInfo: map[int]*EdgeInfo{}}
	local := newLocalMapper(node)
	for _, v := range vs {
		local.get(v)
	}
	for _, id := range sortedEdgeIDs(cur) {
		e := cur.edges[id]
		la, lb := local.get(e.a), local.get(e.b)
		me := node.Skeleton.AddEdge(la, lb, e.info.Virtual)
		node.EdgeInfo[me.ID] = e.info
		if e.info.ChildNode != nil {
			e.info.ChildNode.Parent = node
		}
	}
	tree.Nodes = append(tree.Nodes, node)
	return node
}

func sortedEdgeIDs(cur *workGraph) []int {
	var ids []int
	for id := range cur.edges {
		ids = append(ids, id)
	}
	sortInts2(ids)
	return ids
}

type localMapper struct {
	node        *Node
	origToLocal map[int]int
}

func newLocalMapper(n *Node) *localMapper {
	n.LocalToOrig = map[int]int{}
	n.OrigToLocal = map[int]int{}
	return &localMapper{node: n, origToLocal: n.OrigToLocal}
}

func (m *localMapper) get(orig int) *core.MultiVertex {
	if id, ok := m.origToLocal[orig]; ok {
		return m.node.Skeleton.Vertex(id)
	}
	v := m.node.Skeleton.NewVertex()
	m.origToLocal[orig] = v.ID()
	m.node.LocalToOrig[v.ID()] = orig
	return v
}
