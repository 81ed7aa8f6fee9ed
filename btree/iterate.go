package btree

import "iter"

// ForEachItem walks leaf items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[I, S]) ForEachItem(fn func(item I) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachItemNode(t.root, fn)
}

func (t *Tree[I, S]) forEachItemNode(n treeNode[I, S], fn func(item I) bool) bool {
	assert(n != nil, "forEachItemNode called with nil node")
	if n.isLeaf() {
		for _, item := range n.(*leafNode[I, S]).items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*innerNode[I, S]).children {
		if !t.forEachItemNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over (index, item) pairs in order.
func (t *Tree[I, S]) All() iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		i := 0
		t.ForEachItem(func(item I) bool {
			ok := yield(i, item)
			i++
			return ok
		})
	}
}
