package sat

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
)

// railroad is the initial (pre-embedding) gadget graph plus the bookkeeping
// needed to recover each vertex's semantic role and each edge's declared
// port assignment after ecembed.EmbedECWithCrossings has subdivided it.
type railroad struct {
	Graph   *core.Graph
	Start   int
	Finish  int
	VarOf   map[int]int // vertex -> variable index (0..NumVars-1), or NumVars for gating
	ClauseOf map[int]int // vertex -> clause index

	// Port[v][w] is the declared port of v's gadget bound toward neighbour
	// w, recorded before any crossing subdivision.
	Port map[int]map[int]int

	Constraints map[int]*ecnode.Tree
}

// buildRailroad compiles f into the initial gadget graph of spec §4.13.
func buildRailroad(f Formula, fac I3SatPlanarGadgetFactory) *railroad {
	g := core.NewGraph()
	r := &railroad{
		Graph: g, VarOf: map[int]int{}, ClauseOf: map[int]int{},
		Port: map[int]map[int]int{}, Constraints: map[int]*ecnode.Tree{},
	}
	port := func(v, w, p int) {
		if r.Port[v] == nil {
			r.Port[v] = map[int]int{}
		}
		r.Port[v][w] = p
	}

	start := g.NewVertex()
	r.Start = start.ID()
	finish := g.NewVertex()
	r.Finish = finish.ID()

	varVertex := make([]*core.Vertex, f.NumVars+1) // +1: gating variable
	for i := range varVertex {
		v := g.NewVertex()
		varVertex[i] = v
		r.VarOf[v.ID()] = i
	}
	clauseVertex := make([]*core.Vertex, len(f.Clauses))
	for i := range clauseVertex {
		v := g.NewVertex()
		clauseVertex[i] = v
		r.ClauseOf[v.ID()] = i
	}

	prevIn, nextOut := fac.RailroadPorts()

	chain := append([]*core.Vertex{start}, varVertex...)
	chain = append(chain, clauseVertex...)
	chain = append(chain, finish)
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		_ = g.AddEdge(a, b)
		port(a.ID(), b.ID(), nextOut)
		port(b.ID(), a.ID(), prevIn)
	}

	literalCount := map[int]int{} // running count of literal ports used per variable
	for ci, cl := range f.Clauses {
		for lp, lit := range cl {
			vv := varVertex[lit.Var]
			cv := clauseVertex[ci]
			_ = g.AddEdge(vv, cv)
			vStart, _ := fac.VariablePortRange(lit.Var, ci, lit.Negated)
			port(vv.ID(), cv.ID(), vStart+literalCount[lit.Var])
			literalCount[lit.Var]++
			cStart, _ := fac.ClausePortRange(ci, lp)
			port(cv.ID(), vv.ID(), cStart)
		}
	}

	for _, v := range g.Vertices() {
		r.Constraints[v.ID()] = orientedByPort(v, r.Port[v.ID()])
	}
	return r
}

// orientedByPort builds an ORIENTED root whose children are one singleton
// GROUP per neighbour, ordered by that neighbour's declared port — the EC
// constraint §4.13 describes as "one ORIENTED root whose children are
// GROUPs (one per port-index range), enforcing that neighbours bound to the
// same port range appear contiguously and in declared order". Every port
// range used here has width one, so each GROUP is a single leaf.
func orientedByPort(v *core.Vertex, ports map[int]int) *ecnode.Tree {
	nbrs := v.Neighbors()
	if len(nbrs) <= 1 {
		return nil
	}
	ordered := make([]int, len(nbrs))
	copy(ordered, idsOf(nbrs))
	sortByPort(ordered, ports)

	t := ecnode.NewTree(v.ID())
	root := t.AddOriented(-1)
	for _, n := range ordered {
		grp := t.AddGroup(root)
		t.AddLeaf(grp, n)
	}
	return t
}

func idsOf(vs []*core.Vertex) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}
	return out
}

func sortByPort(ids []int, ports map[int]int) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ports[ids[j-1]] > ports[ids[j]]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
