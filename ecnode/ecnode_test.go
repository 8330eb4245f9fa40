package ecnode

import "testing"

// buildOriented builds ORIENTED(leaves...) constraining vertex and returns
// the tree.
func buildOriented(vertex int, leaves []int) *Tree {
	t := NewTree(vertex)
	root := t.AddOriented(-1)
	for _, l := range leaves {
		t.AddLeaf(root, l)
	}
	return t
}

func TestSatisfiesOriented(t *testing.T) {
	tr := buildOriented(1, []int{2, 3, 4})
	if !tr.Satisfies([]int{2, 3, 4}) {
		t.Fatal("expected [2,3,4] to satisfy ORIENTED(2,3,4)")
	}
	if !tr.Satisfies([]int{3, 4, 2}) {
		t.Fatal("expected cyclic rotation to satisfy ORIENTED")
	}
	if tr.Satisfies([]int{2, 4, 3}) {
		t.Fatal("did not expect reversed order to satisfy ORIENTED")
	}
}

func TestSatisfiesMirror(t *testing.T) {
	tr := NewTree(1)
	root := tr.AddMirror(-1)
	tr.AddLeaf(root, 2)
	tr.AddLeaf(root, 3)
	tr.AddLeaf(root, 4)
	if !tr.Satisfies([]int{2, 3, 4}) {
		t.Fatal("expected forward order to satisfy MIRROR")
	}
	if !tr.Satisfies([]int{2, 4, 3}) {
		t.Fatal("expected reversed order to satisfy MIRROR")
	}
}

func TestSatisfiesGroup(t *testing.T) {
	tr := NewTree(1)
	root := tr.AddGroup(-1)
	tr.AddLeaf(root, 2)
	tr.AddLeaf(root, 3)
	tr.AddLeaf(root, 4)
	for _, order := range [][]int{{2, 3, 4}, {4, 2, 3}, {3, 4, 2}} {
		if !tr.Satisfies(order) {
			t.Fatalf("expected permutation %v to satisfy GROUP", order)
		}
	}
}

func TestConsolidateUnaryCollapse(t *testing.T) {
	tr := NewTree(1)
	outer := tr.AddGroup(-1)
	inner := tr.AddOriented(outer)
	tr.AddLeaf(inner, 2)
	tr.AddLeaf(inner, 3)

	out := Consolidate(tr)
	root := out.Node(out.Root)
	if root.Kind != Oriented {
		t.Fatalf("expected unary GROUP collapsed to ORIENTED, got %v", root.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 leaves after collapse, got %d", len(root.Children))
	}
}

func TestConsolidateOrientedFlatten(t *testing.T) {
	tr := NewTree(1)
	outer := tr.AddOriented(-1)
	tr.AddLeaf(outer, 2)
	innerOriented := tr.AddOriented(outer)
	tr.AddLeaf(innerOriented, 3)
	tr.AddLeaf(innerOriented, 4)
	tr.AddLeaf(outer, 5)

	out := Consolidate(tr)
	root := out.Node(out.Root)
	if root.Kind != Oriented {
		t.Fatalf("expected ORIENTED root, got %v", root.Kind)
	}
	if len(root.Children) != 4 {
		t.Fatalf("expected flattened ORIENTED to have 4 children, got %d", len(root.Children))
	}
	leaves := out.AllLeaves()
	want := []int{2, 3, 4, 5}
	if len(leaves) != len(want) {
		t.Fatalf("leaves = %v, want %v", leaves, want)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Fatalf("leaves[%d] = %d, want %d", i, leaves[i], want[i])
		}
	}
}

func TestValidateMismatch(t *testing.T) {
	tr := buildOriented(1, []int{2, 3, 4})
	if err := tr.Validate([]int{2, 3, 4}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := tr.Validate([]int{2, 3}); err != ErrInvalidConstraint {
		t.Fatalf("expected ErrInvalidConstraint, got %v", err)
	}
}

func TestReplaceVerticesPrunes(t *testing.T) {
	tr := NewTree(1)
	root := tr.AddGroup(-1)
	tr.AddLeaf(root, 2)
	tr.AddLeaf(root, 3)

	out := ReplaceVertices(tr, map[int]int{2: 20})
	if out == nil {
		t.Fatal("expected non-nil result")
	}
	leaves := out.AllLeaves()
	if len(leaves) != 1 || leaves[0] != 20 {
		t.Fatalf("leaves = %v, want [20]", leaves)
	}
}

func TestReplaceVerticesEmpties(t *testing.T) {
	tr := buildOriented(1, []int{2, 3})
	if out := ReplaceVertices(tr, map[int]int{}); out != nil {
		t.Fatal("expected nil when no replacements apply")
	}
}
