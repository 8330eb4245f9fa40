package sat

import (
	"github.com/katalvlaran/ecplanar/ecembed"
	"github.com/katalvlaran/ecplanar/ecnode"
	"github.com/katalvlaran/ecplanar/gadget"
	lay "github.com/katalvlaran/ecplanar/layout"
)

// Layout3Sat is the layout_3sat entry point of spec §6/§4.13: compiles f
// into its railroad gadget graph, embeds it with crossings allowed, assigns
// a concrete gadget to every resulting vertex (variable/clause/terminal from
// the original graph, junction for a plain subdivision vertex, crossover for
// a genuine crossing), and calls package layout to produce the final
// geometric layout.
func Layout3Sat(f Formula, fac I3SatPlanarGadgetFactory, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) (*lay.Result, error) {
	r := buildRailroad(f, fac)

	constraints := map[int]*ecnode.Tree{}
	for v, t := range r.Constraints {
		if t != nil {
			constraints[v] = t
		}
	}

	emb := &ecembed.Embedder{}
	withX, err := emb.EmbedECWithCrossings(r.Graph, r.Start, constraints)
	if err != nil {
		return nil, err
	}

	gadgets := map[int]gadget.Gadget{}
	edgePorts := map[int]map[int]int{}

	origOfNew := map[int]int{} // new vertex -> original railroad vertex
	for orig, nv := range withX.OriginalVertexToVertex {
		origOfNew[nv] = orig
	}

	for _, v := range withX.Graph.Vertices() {
		nv := v.ID()
		if orig, ok := origOfNew[nv]; ok {
			switch {
			case orig == r.Start || orig == r.Finish:
				gadgets[nv] = fac.TerminalGadget()
			case func() bool { _, ok := r.ClauseOf[orig]; return ok }():
				gadgets[nv] = fac.ClauseGadget(r.ClauseOf[orig])
			default:
				gadgets[nv] = fac.VariableGadget(r.VarOf[orig])
			}
			continue
		}
		if _, ok := withX.Crossings[nv]; ok {
			gadgets[nv] = fac.CrossoverGadget()
		} else {
			gadgets[nv] = fac.JunctionGadget()
		}
	}

	for origEdge, path := range withX.AddedVertices {
		a, b := origEdge.A, origEdge.B
		na, nb := withX.OriginalVertexToVertex[a], withX.OriginalVertexToVertex[b]
		if len(path) < 2 {
			continue
		}
		pa := r.Port[a][b]
		pb := r.Port[b][a]
		assignPort(edgePorts, na, path[1], pa)
		assignPort(edgePorts, nb, path[len(path)-2], pb)
		for i := 1; i+1 < len(path); i++ {
			assignPort(edgePorts, path[i], path[i-1], 0)
			assignPort(edgePorts, path[i], path[i+1], 1)
		}
	}

	for x, cr := range withX.Crossings {
		cwForward := withX.Embedding.NeighborAfter(x, cr.Start1) == cr.Start2
		if cwForward {
			assignPort(edgePorts, x, cr.Start1, fac.FirstCrossoverEntryPort())
			assignPort(edgePorts, x, cr.End1, fac.FirstCrossoverExitPort())
			assignPort(edgePorts, x, cr.Start2, fac.SecondCrossoverEntryPort())
			assignPort(edgePorts, x, cr.End2, fac.SecondCrossoverExitPort())
		} else {
			assignPort(edgePorts, x, cr.Start1, fac.FirstCrossoverEntryPort())
			assignPort(edgePorts, x, cr.End1, fac.FirstCrossoverExitPort())
			assignPort(edgePorts, x, cr.Start2, fac.SecondCrossoverExitPort())
			assignPort(edgePorts, x, cr.End2, fac.SecondCrossoverEntryPort())
		}
	}

	return lay.LayoutGadgets(withX.Embedding, gadgets, edgePorts, wf, bf)
}

func assignPort(edgePorts map[int]map[int]int, v, w, p int) {
	if edgePorts[v] == nil {
		edgePorts[v] = map[int]int{}
	}
	edgePorts[v][w] = p
}
