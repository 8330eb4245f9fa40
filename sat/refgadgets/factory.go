package refgadgets

import (
	"github.com/katalvlaran/ecplanar/gadget"
	"github.com/katalvlaran/ecplanar/sat"
)

const (
	railPrev = 0
	railNext = 1

	xEntry1 = 0
	xExit1  = 1
	xEntry2 = 2
	xExit2  = 3
)

// Factory is the reference sat.I3SatPlanarGadgetFactory for this module.
type Factory struct {
	posCount []int // per variable, number of positive occurrences
	negCount []int // per variable, number of negative occurrences
}

// New precomputes, for every variable in f, how many positive and negative
// literal ports its gadget must reserve.
func New(f sat.Formula) *Factory {
	fac := &Factory{
		posCount: make([]int, f.NumVars+1), // +1: the gating variable, unused
		negCount: make([]int, f.NumVars+1),
	}
	for _, cl := range f.Clauses {
		for _, lit := range cl {
			if lit.Negated {
				fac.negCount[lit.Var]++
			} else {
				fac.posCount[lit.Var]++
			}
		}
	}
	return fac
}

func (f *Factory) occurrences(vIdx int) int {
	return f.posCount[vIdx] + f.negCount[vIdx]
}

// RailroadPorts returns the fixed (prev, next) port pair shared by every
// gadget kind this factory produces.
func (f *Factory) RailroadPorts() (prev, next int) { return railPrev, railNext }

// TerminalGadget is the single-edge pass-through used for the railroad's
// start and finish vertices: it carries both rail ports even though only
// one is ever wired, since RailroadPorts is shared across all gadget kinds.
func (f *Factory) TerminalGadget() gadget.Gadget {
	return railPair(2, 2)
}

// JunctionGadget is the plain pass-through assigned to a subdivision vertex
// that ecembed.EmbedECWithCrossings created but that is not a genuine
// crossing.
func (f *Factory) JunctionGadget() gadget.Gadget {
	return railPair(2, 2)
}

func railPair(w, h int) *gadget.Rect {
	return &gadget.Rect{
		W: w, H: h,
		PortsList: []gadget.Point{
			{X: 0, Y: h / 2}, // railPrev
			{X: w, Y: h / 2}, // railNext
		},
	}
}

// VariableGadget returns vIdx's gadget: two rail ports plus, per §4.13's
// shared occurrence counter in sat.buildRailroad, a full occurrences(vIdx)
// -wide port block for each polarity (only one index per occurrence is
// ever wired, but the counter that picks it ranges over both polarities).
func (f *Factory) VariableGadget(vIdx int) gadget.Gadget {
	k := f.occurrences(vIdx)
	w := 4 + 2*k
	if w < 4 {
		w = 4
	}
	h := 4
	ports := []gadget.Point{
		{X: 0, Y: h / 2}, // railPrev
		{X: w, Y: h / 2}, // railNext
	}
	for i := 0; i < k; i++ { // positive-occurrence block
		ports = append(ports, gadget.Point{X: 1 + 2*i, Y: 0})
	}
	for i := 0; i < k; i++ { // negative-occurrence block
		ports = append(ports, gadget.Point{X: 1 + 2*i, Y: h})
	}
	return &gadget.Rect{W: w, H: h, PortsList: ports}
}

// VariablePortRange returns the first port of vIdx's positive or negative
// occurrence block (width occurrences(vIdx), see VariableGadget) depending
// on negated; cIdx is unused by this reference factory (every clause using
// a variable draws from the same shared block).
func (f *Factory) VariablePortRange(vIdx, cIdx int, negated bool) (start, count int) {
	_ = cIdx
	k := f.occurrences(vIdx)
	if !negated {
		return 2, k
	}
	return 2 + k, k
}

// ClauseGadget returns cIdx's gadget: two rail ports plus one port per
// literal position (always exactly three, spec §4.13's 3-CNF clauses).
func (f *Factory) ClauseGadget(cIdx int) gadget.Gadget {
	_ = cIdx
	const w, h = 6, 4
	return &gadget.Rect{
		W: w, H: h,
		PortsList: []gadget.Point{
			{X: 0, Y: h / 2}, // railPrev
			{X: w, Y: h / 2}, // railNext
			{X: 1, Y: 0},     // literal 0
			{X: 3, Y: 0},     // literal 1
			{X: 5, Y: 0},     // literal 2
		},
	}
}

// ClausePortRange returns the single port reserved for the literal at
// position litPos (0, 1, or 2) of clause cIdx.
func (f *Factory) ClausePortRange(cIdx, litPos int) (start, count int) {
	_ = cIdx
	return 2 + litPos, 1
}

// CrossoverGadget is the degree-4 gadget assigned to a genuine crossing
// vertex: two independent straight threads, left-right and top-bottom.
func (f *Factory) CrossoverGadget() gadget.Gadget {
	const w, h = 4, 4
	return &gadget.Rect{
		W: w, H: h,
		PortsList: []gadget.Point{
			{X: 0, Y: h / 2}, // xEntry1 (left)
			{X: w, Y: h / 2}, // xExit1 (right)
			{X: w / 2, Y: 0}, // xEntry2 (top)
			{X: w / 2, Y: h}, // xExit2 (bottom)
		},
	}
}

func (f *Factory) FirstCrossoverEntryPort() int  { return xEntry1 }
func (f *Factory) FirstCrossoverExitPort() int   { return xExit1 }
func (f *Factory) SecondCrossoverEntryPort() int { return xEntry2 }
func (f *Factory) SecondCrossoverExitPort() int  { return xExit2 }
