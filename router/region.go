package router

import "github.com/katalvlaran/ecplanar/gadget"

// MinWidth and MinHeight implement spec §4.11's minimum allotted-region
// size formula, in terms of g's own size, a port count k, and the
// wire/barrier factories' minimum dimensions. k is len(g.Ports()): every port
// of the gadget counts, whether or not a wire is routed to it.
func MinWidth(g gadget.Gadget, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) int {
	return minDim(g.Width(), len(g.Ports()), wf.MinWireWidth(), bf.MinWidth())
}

func MinHeight(g gadget.Gadget, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) int {
	return minDim(g.Height(), len(g.Ports()), wf.MinWireHeight(), bf.MinHeight())
}

func minDim(gadgetDim, k, wireDim, barrierDim int) int {
	maxWB := wireDim
	if barrierDim > maxWB {
		maxWB = barrierDim
	}
	return gadgetDim + 6*maxWB + (6*k-3)*(barrierDim+wireDim-1) + 3*barrierDim + 6*k*wireDim
}
