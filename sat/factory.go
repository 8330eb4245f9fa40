package sat

import "github.com/katalvlaran/ecplanar/gadget"

// I3SatPlanarGadgetFactory manufactures the fixed gadget shapes the 3-SAT
// reduction is built from, plus the port-range queries needed to bind a
// railroad-graph vertex's neighbours to specific ports in declared order.
type I3SatPlanarGadgetFactory interface {
	// VariableGadget returns the gadget for Boolean variable vIdx (or the
	// gating variable, passed as NumVars).
	VariableGadget(vIdx int) gadget.Gadget
	ClauseGadget(cIdx int) gadget.Gadget
	JunctionGadget() gadget.Gadget
	// TerminalGadget is the gadget used for the railroad's start and finish
	// vertices. Each has a single railroad neighbour, but start is bound to
	// the RailroadPorts next port and finish to the prev port, so the
	// gadget carries both.
	TerminalGadget() gadget.Gadget
	CrossoverGadget() gadget.Gadget

	// VariablePortRange returns the first port index and count reserved on
	// vIdx's gadget for its occurrence (possibly negated) toward clause
	// cIdx.
	VariablePortRange(vIdx, cIdx int, negated bool) (start, count int)
	// ClausePortRange returns the first port index and count reserved on
	// cIdx's gadget for the literal at position litPos (0, 1, or 2).
	ClausePortRange(cIdx, litPos int) (start, count int)

	// RailroadPorts returns the two port indices a variable or clause
	// gadget reserves for its railroad chain neighbours (toward the
	// previous and next chain vertex, in that order).
	RailroadPorts() (prev, next int)

	FirstCrossoverEntryPort() int
	FirstCrossoverExitPort() int
	SecondCrossoverEntryPort() int
	SecondCrossoverExitPort() int
}
