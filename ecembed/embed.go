package ecembed

import (
	"io"

	"github.com/katalvlaran/ecplanar/bctree"
	"github.com/katalvlaran/ecplanar/contractor"
	"github.com/katalvlaran/ecplanar/core"
	"github.com/katalvlaran/ecplanar/ecnode"
	"github.com/katalvlaran/ecplanar/expansion"
	"github.com/katalvlaran/ecplanar/halfmerge"
	"github.com/katalvlaran/ecplanar/planarembed"
	"github.com/katalvlaran/ecplanar/skeletonembed"
	"github.com/katalvlaran/ecplanar/spqr"

	"github.com/charmbracelet/log"
)

// Embedder bundles the optional tracing logger used by the greedy
// crossing-insertion pass of EmbedECWithCrossings (spec §7b). The zero value
// is ready to use: Logger defaults to a discarding logger on first use.
type Embedder struct {
	Logger *log.Logger
}

func (e *Embedder) logger() *log.Logger {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e.Logger
}

// EmbedEC is the embed_ec entry point of spec §6/§4.9: a constraint-
// respecting planar embedding of the connected component of g containing
// start, or (nil, false, nil) if no such embedding exists. A non-nil error
// is only ever ecnode.ErrInvalidConstraint.
func EmbedEC(g *core.Graph, start int, constraints map[int]*ecnode.Tree) (*core.PlanarEmbedding, bool, error) {
	if err := validateAll(g, constraints); err != nil {
		return nil, false, err
	}
	c := extractComponent(g, start)
	subConstraints := remapConstraints(c, constraints)

	emb, ok, err := embedOnce(c.Graph, subConstraints)
	if err != nil || !ok {
		return nil, false, err
	}

	// embedOnce already contracted the expansion graph back onto c.Graph's
	// own vertices, so only the sub->orig id projection remains here.
	final := &core.PlanarEmbedding{Graph: g, Rotation: map[int][]int{}}
	for _, v := range c.Graph.Vertices() {
		origV := c.SubToOrig[v.ID()]
		mapped := make([]int, len(emb.Rotation[v.ID()]))
		for i, w := range emb.Rotation[v.ID()] {
			mapped[i] = c.SubToOrig[w]
		}
		final.Rotation[origV] = mapped
	}
	final.ExternalFace = projectExternalFace(final.Rotation)
	return final, true, nil
}

func validateAll(g *core.Graph, constraints map[int]*ecnode.Tree) error {
	for v, t := range constraints {
		var nbrs []int
		for _, w := range g.Vertex(v).Neighbors() {
			nbrs = append(nbrs, w.ID())
		}
		if err := t.Validate(nbrs); err != nil {
			return err
		}
	}
	return nil
}

// embedOnce builds the expansion graph of (g, constraints), checks O-hub
// feasibility via the SPQR pre-check, embeds the expansion graph, re-verifies
// O-hub orientation directly against that embedding (reflecting the whole
// embedding once if needed), and projects the result back onto g's own
// vertices via package contractor. The returned embedding's Rotation is
// indexed by g's vertex ids directly (not the expansion graph's).
func embedOnce(g *core.Graph, constraints map[int]*ecnode.Tree) (*core.PlanarEmbedding, bool, error) {
	res, err := expansion.Expand(g, constraints)
	if err != nil {
		return nil, false, err
	}

	if !spqrFeasible(res) {
		return nil, false, nil
	}

	emb, ok := planarembed.Embed(res.Graph)
	if !ok {
		return nil, false, nil
	}

	allFwd, allRev := true, true
	for hub, first := range res.OHubFirst {
		second := res.OHubSecond[hub]
		fwd, rev := skeletonembed.CheckOHubOrientation(emb, hub, first, second)
		allFwd = allFwd && fwd
		allRev = allRev && rev
	}
	if !allFwd && !allRev {
		return nil, false, nil
	}
	if !allFwd {
		reflect(emb)
	}

	out := &core.PlanarEmbedding{Graph: g, Rotation: map[int][]int{}}
	for _, v := range g.Vertices() {
		out.Rotation[v.ID()] = contractor.Contract(v.ID(), res, emb)
	}
	out.ExternalFace = projectExternalFace(out.Rotation)
	return out, true, nil
}

// spqrFeasible runs the SPQR/half-merge O-hub pre-check across every
// biconnected component of the expansion graph, purely as a fast rejection
// path before the (more expensive) full embedding attempt.
func spqrFeasible(res *expansion.Result) bool {
	for _, comp := range bctree.Decompose(res.Graph) {
		tree := spqr.Build(comp)
		nonFlip, flip := halfmerge.CheckTree(tree, res.OHubFirst, res.OHubSecond)
		if !nonFlip && !flip {
			return false
		}
	}
	return true
}

// reflect reverses every vertex's rotation in place: always a valid planar
// embedding of the same graph (its mirror image), used to satisfy O-hubs
// that are only consistent in the reversed chirality.
func reflect(emb *core.PlanarEmbedding) {
	for v, nbrs := range emb.Rotation {
		rev := make([]int, len(nbrs))
		for i, w := range nbrs {
			rev[len(nbrs)-1-i] = w
		}
		emb.Rotation[v] = rev
	}
	if len(emb.ExternalFace) > 0 {
		rev := make([]int, len(emb.ExternalFace))
		for i, w := range emb.ExternalFace {
			rev[len(emb.ExternalFace)-1-i] = w
		}
		emb.ExternalFace = rev
	}
}

// projectExternalFace picks the longest face of rot as the outer face,
// mirroring planarembed's own externalFaceWalk heuristic (package-local copy
// since rot here is already expressed in projected, original-graph ids).
func projectExternalFace(rot map[int][]int) []int {
	visited := map[[2]int]bool{}
	var ids []int
	for v := range rot {
		ids = append(ids, v)
	}
	sortIntsEC(ids)

	var best []int
	for _, u := range ids {
		for _, v := range rot[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			var face []int
			cu, cv := u, v
			for {
				visited[[2]int{cu, cv}] = true
				face = append(face, cu)
				nxt := neighborAfterEC(rot, cv, cu)
				cu, cv = cv, nxt
				if cu == u && cv == v {
					break
				}
			}
			if len(face) > len(best) {
				best = face
			}
		}
	}
	return best
}

func neighborAfterEC(rot map[int][]int, v, from int) int {
	ord := rot[v]
	for i, w := range ord {
		if w == from {
			return ord[(i+1)%len(ord)]
		}
	}
	if len(ord) == 1 {
		return ord[0]
	}
	return from
}

func sortIntsEC(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
