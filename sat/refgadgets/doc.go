// Package refgadgets is a reference sat.I3SatPlanarGadgetFactory: plain
// gadget.Rect shapes sized to the formula being compiled, enough to exercise
// spec §8's S7/S8 scenarios end-to-end.
//
// Every gadget shares one fixed logical port scheme instead of a strict
// clockwise-from-top-left-most Ports() ordering: index 0 is always the
// railroad "previous" port, index 1 the railroad "next" port, and any
// clause/literal ports start at index 2. This is required because
// sat.buildRailroad hands out a single pair of RailroadPorts indices to
// every vertex on the chain regardless of its concrete gadget (terminal,
// variable, clause) or port count, which a literal per-gadget clockwise
// boundary order could not satisfy uniformly. These gadgets are therefore
// not expected to pass gadget.Validate; that validator targets the general
// single-gadget contract of spec §4.11, not this shared chain-port
// convention.
package refgadgets
