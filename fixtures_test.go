package ecplanar_test

import "github.com/katalvlaran/ecplanar/gadget"

// testWireFactory and testBarrierFactory are the minimal, deterministic
// gadget.IPlanarWireFactory / gadget.IPlanarBarrierFactory implementations
// shared by every top-level test file: 1-unit-minimum rectangles, enough to
// exercise router/layout without needing a real rendering backend.
type testWireFactory struct{}

func (testWireFactory) MinWireWidth() int  { return 1 }
func (testWireFactory) MinWireHeight() int { return 1 }

func (testWireFactory) CreateHorizontalWire(w int) gadget.Gadget {
	return &gadget.Rect{W: w, H: 1, PortsList: []gadget.Point{{X: 0, Y: 0}, {X: w, Y: 0}}}
}

func (testWireFactory) CreateVerticalWire(h int) gadget.Gadget {
	return &gadget.Rect{W: 1, H: h, PortsList: []gadget.Point{{X: 0, Y: 0}, {X: 0, Y: h}}}
}

func (testWireFactory) CreateTurnWire() gadget.Gadget {
	return &gadget.Rect{W: 1, H: 1, PortsList: []gadget.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
}

type testBarrierFactory struct{}

func (testBarrierFactory) MinWidth() int  { return 1 }
func (testBarrierFactory) MinHeight() int { return 1 }

func (testBarrierFactory) CreateBarrier(w, h int) gadget.Gadget {
	return &gadget.Rect{W: w, H: h}
}
