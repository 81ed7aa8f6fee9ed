package btree

import "testing"

func nums(vs ...int) []num {
	out := make([]num, 0, len(vs))
	for _, v := range vs {
		out = append(out, num(v))
	}
	return out
}

func TestCloneLeafCreatesIndependentSlice(t *testing.T) {
	tree := makeNumTree(t)
	leaf := tree.makeLeaf(nums(1, 2, 3))
	cloned := tree.cloneLeaf(leaf)
	if cloned == leaf {
		t.Fatalf("cloneLeaf returned same pointer")
	}
	cloned.items[1] = 99
	tree.recomputeLeafSummary(cloned)
	if leaf.items[1] != 2 || leaf.summary.Sum != 6 {
		t.Fatalf("original leaf changed after clone mutation")
	}
}

func TestRecomputeInnerSummaryAndCount(t *testing.T) {
	tree := makeNumTree(t)
	l1 := tree.makeLeaf(nums(1, 2))
	l2 := tree.makeLeaf(nums(3))
	inner := tree.makeInternal(l1, l2)
	if inner.summary.Sum != 6 || inner.count != 3 {
		t.Fatalf("unexpected initial inner state: %+v count=%d", inner.summary, inner.count)
	}
	l2.items = append(l2.items, 4)
	tree.recomputeLeafSummary(l2)
	tree.recomputeInnerSummary(inner)
	if inner.summary.Sum != 10 || inner.count != 4 {
		t.Fatalf("unexpected recomputed inner state: %+v count=%d", inner.summary, inner.count)
	}
}

func TestInsertRemoveSliceHelpers(t *testing.T) {
	base := []int{1, 2, 3, 4}
	ins := insertAt(base, 2, 8, 9)
	wantIns := []int{1, 2, 8, 9, 3, 4}
	for i := range wantIns {
		if ins[i] != wantIns[i] {
			t.Fatalf("insertAt mismatch at %d: got %v want %v", i, ins, wantIns)
		}
	}
	rem := removeRange(ins, 1, 4)
	wantRem := []int{1, 3, 4}
	for i := range wantRem {
		if rem[i] != wantRem[i] {
			t.Fatalf("removeRange mismatch at %d: got %v want %v", i, rem, wantRem)
		}
	}
	if base[2] != 3 {
		t.Fatalf("insertAt modified its source slice")
	}
}

func TestInsertRemoveChildHelpers(t *testing.T) {
	tree := makeNumTree(t)
	l1 := tree.makeLeaf(nums(1))
	l2 := tree.makeLeaf(nums(2, 2))
	l3 := tree.makeLeaf(nums(3, 3, 3))
	inner := tree.makeInternal(l1, l3)
	tree.insertChildAt(inner, 1, l2)
	if len(inner.children) != 3 || inner.summary.Sum != 14 || inner.count != 6 {
		t.Fatalf("unexpected state after insertChildAt: %+v count=%d", inner.summary, inner.count)
	}
	tree.removeChildAt(inner, 0)
	if len(inner.children) != 2 || inner.summary.Sum != 13 || inner.count != 5 {
		t.Fatalf("unexpected state after removeChildAt: %+v count=%d", inner.summary, inner.count)
	}
}

func TestLeafInsertLocalNoSplit(t *testing.T) {
	tree := makeNumTree(t)
	leaf := tree.makeLeaf(nums(1, 2, 3))
	left, right, err := tree.insertIntoLeafLocal(leaf, 1, 9)
	if err != nil {
		t.Fatalf("insertIntoLeafLocal failed: %v", err)
	}
	if right != nil {
		t.Fatalf("unexpected split sibling for non-overflow insert")
	}
	want := nums(1, 9, 2, 3)
	for i := range want {
		if left.items[i] != want[i] {
			t.Fatalf("insert order mismatch: got %v want %v", left.items, want)
		}
	}
	if len(leaf.items) != 3 || leaf.items[1] != 2 {
		t.Fatalf("original leaf modified unexpectedly: %v", leaf.items)
	}
}

func TestLeafInsertLocalSplit(t *testing.T) {
	tree := makeNumTree(t)
	base := make([]num, 0, MaxLeafItems)
	for i := range MaxLeafItems {
		base = append(base, num(i))
	}
	leaf := tree.makeLeaf(base)
	left, right, err := tree.insertIntoLeafLocal(leaf, MaxLeafItems/2, 100)
	if err != nil {
		t.Fatalf("insertIntoLeafLocal failed: %v", err)
	}
	if right == nil {
		t.Fatalf("expected split sibling, got nil")
	}
	if tree.leafOverflow(left) || tree.leafOverflow(right) {
		t.Fatalf("split result still overflows")
	}
	if got := len(left.items) + len(right.items); got != MaxLeafItems+1 {
		t.Fatalf("unexpected split output length: got %d want %d", got, MaxLeafItems+1)
	}
}
