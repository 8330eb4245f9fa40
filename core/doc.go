// Package core defines the fundamental graph primitives shared by every
// other package in this module: Vertex, MultiVertex, Graph, MultiGraph,
// UnorderedPair, and the PlanarEmbedding family of result types.
//
// A Graph owns its vertices in an arena: NewVertex appends to an internal
// slice and hands back a *Vertex whose ID is that slice index. Neighbour
// references are non-owning back-edges into the same arena, so a Graph must
// never be asked to forget a vertex other than by discarding the whole Graph.
// This mirrors lvlath's map-owned-by-Graph discipline, specialised to
// integer indices because the algorithms built on top (constraint trees,
// SPQR skeletons, half-edge meshes) need stable, densely-packed ids rather
// than string keys.
//
// Iteration over a Vertex's neighbours is insertion-ordered and deterministic:
// every map this package keeps is paired with (or replaced by) an explicit
// order slice, since the embedding algorithms downstream require two runs on
// equal input to produce identical output.
package core
