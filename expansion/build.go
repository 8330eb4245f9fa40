package expansion

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
)

// Expand builds the expansion graph of g under the given per-vertex
// constraint trees (spec §4.5). constraints may omit any vertex, leaving it
// unconstrained. Every supplied tree is validated against g's actual
// neighbour set first; an invalid tree reports ecnode.ErrInvalidConstraint.
func Expand(g *core.Graph, constraints map[int]*ecnode.Tree) (*Result, error) {
	for v, t := range constraints {
		var nbrs []int
		for _, w := range g.Vertex(v).Neighbors() {
			nbrs = append(nbrs, w.ID())
		}
		if err := t.Validate(nbrs); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Graph:                  core.NewGraph(),
		Root:                   map[int]*Node{},
		PlainVertex:            map[int]int{},
		EndToExpansionEndpoint: map[int]map[int]int{},
		ExpansionEdgeToEdge:    map[core.UnorderedPair[int]]core.UnorderedPair[int]{},
		OHubFirst:              map[int]int{},
		OHubSecond:             map[int]int{},
	}

	b := &builder{eg: res.Graph, res: res, groupHub: map[int]*Node{}}

	for _, v := range g.Vertices() {
		id := v.ID()
		res.EndToExpansionEndpoint[id] = map[int]int{}
		if t, ok := constraints[id]; ok {
			ct := ecnode.Consolidate(t)
			root := b.build(id, ct, ct.Root, true)
			res.Root[id] = root
		} else {
			pv := b.eg.NewVertex()
			res.PlainVertex[id] = pv.ID()
			for _, w := range v.Neighbors() {
				res.EndToExpansionEndpoint[id][w.ID()] = pv.ID()
			}
		}
	}

	for _, e := range g.Edges() {
		eu := res.EndToExpansionEndpoint[e.A][e.B]
		ev := res.EndToExpansionEndpoint[e.B][e.A]
		_ = b.eg.AddEdge(b.eg.Vertex(eu), b.eg.Vertex(ev))
		res.ExpansionEdgeToEdge[core.NewUnorderedPair(eu, ev)] = e
		if gn, ok := b.groupHub[eu]; ok {
			gn.LeafEdge[ev] = e.B
		}
		if gn, ok := b.groupHub[ev]; ok {
			gn.LeafEdge[eu] = e.A
		}
	}

	return res, nil
}

type builder struct {
	eg       *core.Graph
	res      *Result
	groupHub map[int]*Node // Group hub vertex -> its Node, for LeafEdge
}

// build expands the constraint (sub)tree t rooted at idx, belonging to
// original vertex v, recording leaf endpoints into
// res.EndToExpansionEndpoint[v] as it goes. isRoot distinguishes the whole
// tree's own root (no parent to expose an Anchor to) from a nested subtree.
func (b *builder) build(v int, t *ecnode.Tree, idx int, isRoot bool) *Node {
	n := t.Node(idx)
	switch n.Kind {
	case ecnode.VertexLeaf:
		e := b.eg.NewVertex()
		b.res.EndToExpansionEndpoint[v][n.Neighbor] = e.ID()
		return &Node{Kind: ecnode.VertexLeaf, Leaf: n.Neighbor}

	case ecnode.Group:
		hub := b.eg.NewVertex()
		out := &Node{
			Kind:     ecnode.Group,
			Hub:      hub.ID(),
			LeafEdge: map[int]int{},
			Children: map[int]*Node{},
		}
		b.groupHub[hub.ID()] = out
		for _, c := range n.Children {
			cn := t.Node(c)
			if cn.IsLeaf() {
				b.res.EndToExpansionEndpoint[v][cn.Neighbor] = hub.ID()
				continue
			}
			child := b.build(v, t, c, false)
			entry := childEntry(child)
			_ = b.eg.AddEdge(hub, b.eg.Vertex(entry))
			out.Children[entry] = child
		}
		return out

	default: // ecnode.Oriented, ecnode.Mirror
		k := len(n.Children)
		extra := 0
		if !isRoot {
			extra = 1
		}
		slots := k + extra
		rim := make([]int, 2*slots)
		for i := range rim {
			rim[i] = b.eg.NewVertex().ID()
		}
		for i := range rim {
			_ = b.eg.AddEdge(b.eg.Vertex(rim[i]), b.eg.Vertex(rim[(i+1)%len(rim)]))
		}
		hub := b.eg.NewVertex()
		for _, r := range rim {
			_ = b.eg.AddEdge(hub, b.eg.Vertex(r))
		}

		out := &Node{
			Kind:            n.Kind,
			H:               hub.ID(),
			Anchor:          -1,
			Rim:             rim,
			NumRealChildren: k,
			RimLeaf:         make([]int, k),
			RimChild:        make([]*Node, k),
		}
		for i, c := range n.Children {
			cn := t.Node(c)
			spoke := rim[2*i]
			if cn.IsLeaf() {
				b.res.EndToExpansionEndpoint[v][cn.Neighbor] = spoke
				out.RimLeaf[i] = cn.Neighbor
				out.RimChild[i] = nil
			} else {
				out.RimLeaf[i] = -1
				child := b.build(v, t, c, false)
				out.RimChild[i] = child
				entry := childEntry(child)
				_ = b.eg.AddEdge(b.eg.Vertex(spoke), b.eg.Vertex(entry))
			}
		}
		if extra > 0 {
			out.Anchor = rim[2*k]
		}
		if n.Kind == ecnode.Oriented {
			b.res.OHubFirst[hub.ID()] = rim[0]
			b.res.OHubSecond[hub.ID()] = rim[1]
		}
		return out
	}
}

// childEntry returns the expansion-graph vertex a node's parent must
// connect an edge to: a Group's hub or a wheel's reserved Anchor rim vertex.
// build() never recurses into a leaf except at isRoot, so childEntry is only
// ever called on a Group or wheel Node.
func childEntry(n *Node) int {
	switch n.Kind {
	case ecnode.Group:
		return n.Hub
	default:
		return n.Anchor
	}
}
