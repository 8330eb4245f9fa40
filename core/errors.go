package core

import "errors"

// Sentinel errors for core graph operations, in the style of lvlath's
// package-level error vars: wrap with fmt.Errorf("...: %w", ...) at call
// sites rather than constructing ad-hoc error strings.
var (
	// ErrNilVertex indicates a nil *Vertex was passed where a live vertex
	// from the owning Graph's arena was required.
	ErrNilVertex = errors.New("core: nil vertex")

	// ErrForeignVertex indicates a *Vertex belonging to a different Graph
	// was passed to a method of this Graph.
	ErrForeignVertex = errors.New("core: vertex does not belong to this graph")

	// ErrSelfLoop indicates an edge was requested between a vertex and
	// itself; simple graphs here never allow self-loops.
	ErrSelfLoop = errors.New("core: self-loop not allowed in a simple graph")

	// ErrEdgeNotFound indicates RemoveEdge was asked to remove an edge that
	// does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
