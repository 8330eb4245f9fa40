package halfmerge

import (
	"github.com/katalvlaran/ecplanar/skeletonembed"
	"github.com/katalvlaran/ecplanar/spqr"
)

// CheckTree reports, for the SPQR tree of one biconnected component, whether
// every O-hub it contains (keys of ohubFirst/ohubSecond that fall within
// this component) can be satisfied without reflecting the component
// (canBeNonFlipped) or only after reflecting it (canBeFlipped). Both are
// false if some SPQR node's own skeleton is non-planar (should not happen
// for a component extracted from a planarity-feasible expansion graph, but
// checked rather than assumed) or if an O-hub's anchors are themselves
// contradictory within one node.
func CheckTree(tree *spqr.Tree, ohubFirst, ohubSecond map[int]int) (canBeNonFlipped, canBeFlipped bool) {
	if tree.TrivialEdge != nil {
		return true, true
	}
	canBeNonFlipped, canBeFlipped = true, true
	for _, n := range tree.Nodes {
		emb, ok := skeletonembed.EmbedNode(n)
		if !ok {
			return false, false
		}
		for hub, first := range ohubFirst {
			second, ok := ohubSecond[hub]
			if !ok {
				continue
			}
			localHub, ok := n.OrigToLocal[hub]
			if !ok {
				continue
			}
			localFirst, ok := n.OrigToLocal[first]
			if !ok {
				continue
			}
			localSecond, ok := n.OrigToLocal[second]
			if !ok {
				continue
			}
			fwd, rev := skeletonembed.CheckOHubOrientation(emb, localHub, localFirst, localSecond)
			canBeNonFlipped = canBeNonFlipped && fwd
			canBeFlipped = canBeFlipped && rev
		}
	}
	return canBeNonFlipped, canBeFlipped
}
