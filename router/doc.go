// Package router implements spec §4.11: given one gadget and a target
// column (on the top or bottom edge of its allotted region) for each of its
// ports, it produces a rectilinear wire path from each port to its target,
// plus filler barriers, with no two placed rectangles overlapping.
//
// This is a simplified rendition of the source's clockwise "winding" router
// (see DESIGN.md): rather than a shared winding loop that lets a port's path
// spiral around the gadget and commits as soon as it can reach its target
// without blocking a sibling port, each port here is assigned its own
// monotonically-increasing lane (a bend row offset by the port's index),
// so paths are non-overlapping by construction rather than by a
// commit/crossing check.
// The minimum-region-size formula of §4.11 is implemented faithfully, since
// package layout depends on it to size each gadget's allotted region.
package router
