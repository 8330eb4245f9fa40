// Package gadget defines the rectangle/port contract shared by every
// geometric piece of spec §4.11–§4.13: a Gadget is a positive-width,
// positive-height rectangle with a clockwise-ordered, duplicate-free list of
// boundary lattice points (its ports), and the two factory interfaces
// (IPlanarWireFactory, IPlanarBarrierFactory) package router and package
// layout consume to manufacture wires and barriers.
package gadget
