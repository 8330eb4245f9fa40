package ecnode

// Consolidate returns a new Tree holding the deterministic consolidated
// form of t (spec §4.2 consolidatedChildren): a node with exactly one
// child is replaced by that child, transitively; an Oriented grandchild
// directly under another Oriented ancestor is flattened (its children are
// spliced into the ancestor's child list in place of the grandchild).
// The same input always yields the same output tree.
func Consolidate(t *Tree) *Tree {
	out := &Tree{Vertex: t.Vertex}
	root := consolidateInto(t, out, t.Root, -1)
	root = collapseUnary(out, root)
	out.Root = root
	if root >= 0 {
		out.Nodes[root].Parent = -1
	}
	return out
}

// consolidateInto recursively rebuilds the subtree rooted at oldIdx into
// out, parented at newParent, applying unary-collapse to every child and
// Oriented-under-Oriented flattening at internal nodes. Returns the new
// node's index in out.
func consolidateInto(src *Tree, out *Tree, oldIdx int, newParent int) int {
	n := src.Node(oldIdx)
	if n.IsLeaf() {
		return out.newLeafNode(newParent, n.Neighbor)
	}

	idx := out.newInternalNode(n.Kind, newParent)

	var childIdxs []int
	for _, c := range n.Children {
		ci := consolidateInto(src, out, c, idx)
		ci = collapseUnary(out, ci)
		out.Nodes[ci].Parent = idx
		childIdxs = append(childIdxs, ci)
	}

	if n.Kind == Oriented {
		var flattened []int
		for _, ci := range childIdxs {
			cn := out.Node(ci)
			if cn.Kind == Oriented {
				for _, gc := range cn.Children {
					out.Nodes[gc].Parent = idx
					flattened = append(flattened, gc)
				}
			} else {
				flattened = append(flattened, ci)
			}
		}
		childIdxs = flattened
	}

	out.Nodes[idx].Children = childIdxs
	return idx
}

// collapseUnary replaces a non-leaf node with exactly one child by that
// child, transitively, within out's arena. The vacated node is left
// unreferenced in the arena (harmless: arenas are discarded whole).
func collapseUnary(out *Tree, idx int) int {
	for {
		n := out.Node(idx)
		if n.IsLeaf() || len(n.Children) != 1 {
			return idx
		}
		idx = n.Children[0]
	}
}

func (t *Tree) newLeafNode(parent int, neighbor int) int {
	return t.newNode(&Node{Kind: VertexLeaf, Parent: parent, Neighbor: neighbor})
}

func (t *Tree) newInternalNode(k Kind, parent int) int {
	return t.newNode(&Node{Kind: k, Parent: parent})
}
