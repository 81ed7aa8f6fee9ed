package btree

import "testing"

// sumDimension seeks along the running sum of item values.
type sumDimension struct{}

func (sumDimension) Zero() int                       { return 0 }
func (sumDimension) Add(acc int, s numSummary) int   { return acc + s.Sum }
func (sumDimension) Compare(acc int, target int) int { return cmpInt(acc, target) }

// countDimension seeks along item count.
type countDimension struct{}

func (countDimension) Zero() int                       { return 0 }
func (countDimension) Add(acc int, s numSummary) int   { return acc + s.Count }
func (countDimension) Compare(acc int, target int) int { return cmpInt(acc, target) }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestCursorSeekSum(t *testing.T) {
	tree := makeNumTree(t)
	var err error
	for _, v := range []num{2, 3, 5} {
		if tree, err = tree.InsertAt(tree.Len(), v); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	cursor, err := NewCursor[num, numSummary, int](tree, sumDimension{})
	if err != nil {
		t.Fatalf("new cursor failed: %v", err)
	}
	cases := []struct {
		target, idx, acc int
	}{
		{target: 0, idx: 0, acc: 0},
		{target: 1, idx: 0, acc: 2},
		{target: 2, idx: 0, acc: 2},
		{target: 3, idx: 1, acc: 5},
		{target: 5, idx: 1, acc: 5},
		{target: 6, idx: 2, acc: 10},
		{target: 11, idx: 3, acc: 10},
	}
	for _, c := range cases {
		idx, acc, err := cursor.Seek(c.target)
		if err != nil {
			t.Fatalf("seek(%d) failed: %v", c.target, err)
		}
		if idx != c.idx || acc != c.acc {
			t.Fatalf("seek(%d): got (idx=%d, acc=%d), want (idx=%d, acc=%d)",
				c.target, idx, acc, c.idx, c.acc)
		}
	}
}

func TestCursorSeekCountInDeepTree(t *testing.T) {
	tree := fillNumTree(t, 1000)
	cursor, err := NewCursor[num, numSummary, int](tree, countDimension{})
	if err != nil {
		t.Fatalf("new cursor failed: %v", err)
	}
	for _, target := range []int{1, 12, 13, 144, 999, 1000} {
		idx, acc, err := cursor.Seek(target)
		if err != nil {
			t.Fatalf("seek(%d) failed: %v", target, err)
		}
		if idx != target-1 || acc != target {
			t.Fatalf("seek(%d): got (idx=%d, acc=%d)", target, idx, acc)
		}
	}
}

func TestCursorRequiresDimension(t *testing.T) {
	tree := makeNumTree(t)
	if _, err := NewCursor[num, numSummary, int](tree, nil); err == nil {
		t.Fatalf("expected dimension error, got nil")
	}
}

func TestCursorSeekUninitializedFails(t *testing.T) {
	c := &Cursor[num, numSummary, int]{}
	if _, _, err := c.Seek(1); err == nil {
		t.Fatalf("expected error for uninitialized cursor")
	}
}
