// Package sat implements spec §4.13: it compiles a 3-CNF formula into a
// "railroad" gadget graph (start, finish, one gadget per variable plus a
// gating variable, one per clause, direct variable-to-clause wiring for
// each literal occurrence), assigns each vertex an EC constraint biasing
// its neighbours into the declared port order, runs the graph through
// package ecembed's crossing-capable embedder, instantiates a crossover
// gadget at every resulting crossing vertex (thread order and handedness
// taken from its core.Crossing and its clockwise position in the
// embedding), and finally calls package layout to produce a geometric
// layout whose traversal-solvability is equivalent to the formula's
// satisfiability.
//
// Simplification (documented in DESIGN.md): literal-to-clause edges are
// wired directly from variable to clause rather than through an explicit
// chain of junction gadgets. Layout3Sat places a junction gadget only on an
// added vertex that has no core.Crossing record, and
// ecembed.EmbedECWithCrossings adds crossing vertices only, so every added
// vertex becomes a crossover gadget and no junction gadget is placed.
package sat
