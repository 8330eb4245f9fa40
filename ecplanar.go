// Package ecplanar composes the four spec §6 entry points — EmbedEC,
// EmbedECWithCrossings, LayoutGadgets, and Layout3Sat — into a single
// pipeline: constrain a planar embedding (package ecnode / ecembed),
// guarantee one even for non-planar input by inserting crossing vertices
// (ecembed), place fixed-size gadgets at every resulting vertex without
// overlap (package layout, built on router and visibility), and compile a
// 3-CNF formula into a planar gadget network whose traversal reachability
// encodes satisfiability (package sat).
//
//	emb, ok, err := ecplanar.EmbedEC(g, start, constraints)
//	withX, err := ecplanar.EmbedECWithCrossings(g, start, constraints)
//	res, err := ecplanar.LayoutGadgets(emb, gadgets, edgePorts, wireFactory, barrierFactory)
//	res, err := ecplanar.Layout3Sat(formula, gadgetFactory, wireFactory, barrierFactory)
//
// Package core holds the shared Graph/Vertex/PlanarEmbedding primitives;
// package ecnode holds EC constraint trees; the remaining packages
// (expansion, contractor, spqr, bctree, skeletonembed, halfmerge,
// planarembed, dualgraph, gadget, router, visibility) are internal
// machinery exercised through these four functions.
package ecplanar

import (
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecembed"
	"github.com/katalvlaran/ecplanar/ecnode"
	"github.com/katalvlaran/ecplanar/gadget"
	"github.com/katalvlaran/ecplanar/layout"
	"github.com/katalvlaran/ecplanar/sat"
)

// EmbedEC is the embed_ec entry point of spec §6/§4.9: attempts a
// constraint-respecting planar embedding of the connected component of g
// containing start. Returns ok == false (not an error) when no such
// embedding exists.
func EmbedEC(g *core.Graph, start int, constraints map[int]*ecnode.Tree) (*core.PlanarEmbedding, bool, error) {
	return ecembed.EmbedEC(g, start, constraints)
}

// EmbedECWithCrossings is the embed_ec_with_crossings entry point of spec
// §6/§4.9: always succeeds, subdividing edges through synthesized
// degree-4 crossing vertices wherever a direct planar embedding is not
// possible.
func EmbedECWithCrossings(g *core.Graph, start int, constraints map[int]*ecnode.Tree) (*core.PlanarEmbeddingWithCrossings, error) {
	return (&ecembed.Embedder{}).EmbedECWithCrossings(g, start, constraints)
}

// LayoutGadgets is the layout_gadgets entry point of spec §6/§4.12: places
// every gadget at its embedding vertex and threads its ports to its
// neighbours' gadgets with disjoint wires and barriers.
func LayoutGadgets(emb *core.PlanarEmbedding, gadgets map[int]gadget.Gadget, edgePorts map[int]map[int]int, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) (*layout.Result, error) {
	return layout.LayoutGadgets(emb, gadgets, edgePorts, wf, bf)
}

// Layout3Sat is the layout_3sat entry point of spec §6/§4.13: compiles a
// 3-CNF formula into its railroad gadget network and lays it out. Unlike
// the spec's literal signature (which takes caller-supplied start/finish
// vertices and ports), this reference composition synthesizes its own
// start and finish terminal vertices internally — see DESIGN.md.
func Layout3Sat(f sat.Formula, fac sat.I3SatPlanarGadgetFactory, wf gadget.IPlanarWireFactory, bf gadget.IPlanarBarrierFactory) (*layout.Result, error) {
	return sat.Layout3Sat(f, fac, wf, bf)
}
