// Package planarembed is the external collaborator of spec §4.3: an
// already-specified planar embedder for graphs without rotation
// constraints. It decides whether a simple core.Graph is planar and, if so,
// returns a core.PlanarEmbedding (clockwise rotation at every vertex plus an
// outer face walk).
//
// It is out of scope as a *specified* component of this module (spec §1
// lists it among the external collaborators called by contract), but since
// no such package ships in the standard library this package provides a
// working implementation so the rest of the pipeline has something to call.
// It follows the classical Demoucron-Malgrange-Pertuiset (DMP) incremental
// face-splitting construction: seed an embedding from one cycle, then
// repeatedly find the "bridge" of not-yet-embedded edges with the fewest
// faces it could be drawn into, embed one attachment-to-attachment path of
// it by splitting that face, and repeat until every edge is placed or some
// bridge has no admissible face (non-planar).
//
// Grounded on the teacher's recursive depth-first traversal idiom
// (lvlath's dfs package: explicit visited sets, deterministic neighbor
// iteration order, no goroutines) rather than a textbook Boyer-Myrvold
// implementation, which would dwarf the rest of this module's size budget.
package planarembed
