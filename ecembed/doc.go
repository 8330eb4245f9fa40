// Package ecembed implements spec §4.9 (plus the dual-graph-driven crossing
// insertion it depends on, package dualgraph): EmbedEC attempts a
// constraint-respecting planar embedding of the connected component of a
// graph containing a given start vertex; EmbedECWithCrossings always
// succeeds by inserting degree-4 crossing vertices, each carrying a
// synthesized MIRROR constraint, wherever a direct planar embedding is not
// possible.
//
// Both entry points delegate the combinatorial embedding itself to package
// planarembed (a general simple-planar-graph embedder), gated by a fast
// SPQR-tree-based O-hub feasibility pre-check (packages bctree, spqr,
// skeletonembed, halfmerge) that rejects contradictory wheel-gadget
// orientations before the more expensive embedding attempt. The final O-hub
// orientation is re-verified directly against the whole-graph embedding; if
// every O-hub agrees on the same global chirality the embedding is accepted
// as-is or with a single whole-graph reflection (always a valid planar
// embedding of the same graph), and package contractor projects the result
// back onto the original vertices. This is a deliberate simplification of
// the textbook per-biconnected-component independent reflection (see
// DESIGN.md): it is sound (a global reflect is always valid) but can reject
// some graphs a smarter per-component reflection would still embed.
package ecembed
