package btree

import (
	"fmt"
)

// Tree is a persistent B+ sum-tree.
//
// I is the leaf item type, S is the summary type aggregated through the tree.
// The item type is tied to the summary type via SummarizedItem[S].
//
// A nil *Tree behaves like an empty tree for all read operations.
type Tree[I SummarizedItem[S], S any] struct {
	cfg    Config[S]
	root   treeNode[I, S]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("btree: rejecting configuration: %v", err)
		return nil, err
	}
	return &Tree[I, S]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[I, S]) Config() Config[S] {
	return t.cfg
}

// Clone returns a shallow clone of the tree root container.
//
// Node contents are shared; updates path-copy every node they touch.
func (t *Tree[I, S]) Clone() *Tree[I, S] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[I, S]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[I, S]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the root summary, or Zero() for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t == nil {
		var zero S
		return zero
	}
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.Summary()
}

// InsertAt inserts items at an item index and returns a new tree.
func (t *Tree[I, S]) InsertAt(index int, items ...I) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	cloned := t.Clone()
	for i, item := range items {
		cloned.insertOneAt(index+i, item)
	}
	return cloned, nil
}

// SetAt replaces the item at index and returns a new tree.
//
// The tree shape does not change; only the path to the item is copied.
func (t *Tree[I, S]) SetAt(index int, item I) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	cloned.root = t.replaceRecursive(t.root, t.height, index, item)
	return cloned, nil
}

// DeleteAt removes one item at index and returns a new tree.
//
// Delete uses recursive path-copy with sibling borrow/merge rebalancing.
func (t *Tree[I, S]) DeleteAt(index int) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	cloned.deleteOneAt(index)
	return cloned, nil
}

// DeleteRange removes count items starting at index and returns a new tree.
func (t *Tree[I, S]) DeleteRange(index, count int) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	size := t.Len()
	if index < 0 || count < 0 || index > size || index+count > size {
		return nil, ErrIndexOutOfBounds
	}
	if count == 0 {
		return t, nil
	}
	if index == 0 && count == size {
		return &Tree[I, S]{cfg: t.cfg}, nil
	}
	cloned := t.Clone()
	for range count {
		cloned.deleteOneAt(index)
	}
	return cloned, nil
}

// normalizeRoot canonicalizes root representation after structural edits.
//
// It applies the standard B-tree root rules:
//   - nil root => empty tree (height 0)
//   - leaf root => height 1, an empty leaf root is an empty tree
//   - internal root with single child => collapse repeatedly.
func (t *Tree[I, S]) normalizeRoot() {
	for {
		switch root := t.root.(type) {
		case nil:
			t.height = 0
			return
		case *leafNode[I, S]:
			if root == nil || len(root.items) == 0 {
				t.root, t.height = nil, 0
				return
			}
			t.height = 1
			return
		case *innerNode[I, S]:
			if root == nil || len(root.children) == 0 {
				t.root, t.height = nil, 0
				return
			}
			if len(root.children) > 1 {
				return
			}
			t.root = root.children[0]
			t.height--
		}
	}
}

// deleteOneAt performs a single-item delete on this tree in place.
//
// The receiver is expected to be a private clone when called from public APIs.
func (t *Tree[I, S]) deleteOneAt(index int) {
	assert(t.root != nil, "deleteOneAt called on empty tree")
	updated, _ := t.deleteRecursive(t.root, t.height, index, true)
	t.root = updated
	t.normalizeRoot()
	t.assertRootNormalized()
}

// assertRootNormalized verifies post-delete root invariants.
//
// Violations indicate a tree algorithm bug, not an input error.
func (t *Tree[I, S]) assertRootNormalized() {
	if t.root == nil {
		assert(t.height == 0, "root normalization: nil root must have height 0")
		return
	}
	if t.root.isLeaf() {
		leaf := t.root.(*leafNode[I, S])
		assert(len(leaf.items) > 0, "root normalization: root leaf must be non-empty")
		assert(t.height == 1, "root normalization: root leaf must have height 1")
		return
	}
	inner := t.root.(*innerNode[I, S])
	assert(len(inner.children) > 1, "root normalization: root inner must have at least 2 children")
	assert(t.height >= 2, "root normalization: root inner must have height >= 2")
}

// deleteRecursive removes one item at index from subtree n.
//
// Returns the updated subtree root (nil if the subtree became empty) and
// whether the caller must repair occupancy at parent level.
func (t *Tree[I, S]) deleteRecursive(n treeNode[I, S], height, index int, isRoot bool) (treeNode[I, S], bool) {
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "deleteRecursive expected leaf at height 1")
		assert(index >= 0 && index < len(leaf.items), "deleteRecursive leaf index out of range")
		cloned := t.cloneLeaf(leaf)
		t.removeLeafItemsRange(cloned, index, index+1)
		if len(cloned.items) == 0 && isRoot {
			return nil, false
		}
		return cloned, t.leafUnderflow(cloned, isRoot)
	}

	inner, ok := n.(*innerNode[I, S])
	assert(ok, "deleteRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, localIndex := t.locateChild(cloned, index, false)
	updatedChild, childUnderflow := t.deleteRecursive(cloned.children[slot], height-1, localIndex, false)
	cloned.children[slot] = updatedChild
	t.recomputeInnerSummary(cloned)
	if childUnderflow && len(cloned.children) > 1 {
		resolved := t.rebalanceChildAfterDelete(cloned, slot, height-1)
		assert(resolved, "deleteRecursive could not rebalance child with siblings")
	}
	return cloned, t.innerUnderflow(cloned, isRoot)
}

// insertOneAt inserts one item into this tree in place.
//
// Like deleteOneAt, callers should use a private clone to preserve persistence.
func (t *Tree[I, S]) insertOneAt(index int, item I) {
	if t.root == nil {
		t.root = t.makeLeaf([]I{item})
		t.height = 1
		return
	}
	updated, promoted := t.insertRecursive(t.root, t.height, index, item)
	if promoted != nil {
		t.root = t.makeInternal(updated, promoted)
		t.height++
		return
	}
	t.root = updated
}

// insertRecursive inserts one item into subtree n and propagates split results.
//
// The returned promoted sibling is non-nil only when the updated subtree split.
func (t *Tree[I, S]) insertRecursive(n treeNode[I, S], height, index int, item I) (treeNode[I, S], treeNode[I, S]) {
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "insertRecursive expected leaf at height 1")
		left, right, err := t.insertIntoLeafLocal(leaf, index, item)
		assert(err == nil, "insertRecursive: leaf insert failed")
		if right == nil {
			return left, nil
		}
		return left, right
	}

	inner, ok := n.(*innerNode[I, S])
	assert(ok, "insertRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, localIndex := t.locateChild(cloned, index, true)
	updatedChild, promotedChild := t.insertRecursive(cloned.children[slot], height-1, localIndex, item)
	cloned.children[slot] = updatedChild
	if promotedChild != nil {
		t.insertChildAt(cloned, slot+1, promotedChild)
	} else {
		t.recomputeInnerSummary(cloned)
	}
	if !t.innerOverflow(cloned) {
		return cloned, nil
	}
	left, right := t.splitInner(cloned)
	return left, right
}

// replaceRecursive path-copies subtree n with the item at index replaced.
func (t *Tree[I, S]) replaceRecursive(n treeNode[I, S], height, index int, item I) treeNode[I, S] {
	assert(n != nil, "replaceRecursive called with nil node")
	if height == 1 {
		leaf, ok := n.(*leafNode[I, S])
		assert(ok, "replaceRecursive expected leaf at height 1")
		cloned := t.cloneLeaf(leaf)
		cloned.items[index] = item
		t.recomputeLeafSummary(cloned)
		return cloned
	}
	inner, ok := n.(*innerNode[I, S])
	assert(ok, "replaceRecursive expected internal node")
	cloned := t.cloneInner(inner)
	slot, localIndex := t.locateChild(cloned, index, false)
	cloned.children[slot] = t.replaceRecursive(cloned.children[slot], height-1, localIndex, item)
	t.recomputeInnerSummary(cloned)
	return cloned
}

// locateChild maps a subtree item index to child slot + local index.
//
// With forInsert set, boundary indices land in the left child (an insert at
// the seam appends to the left sibling). Otherwise each absolute index is
// owned by exactly one child.
func (t *Tree[I, S]) locateChild(inner *innerNode[I, S], index int, forInsert bool) (int, int) {
	assert(inner != nil && len(inner.children) > 0, "locateChild called with empty inner node")
	assert(index >= 0, "locateChild called with negative index")
	remaining := index
	for i, child := range inner.children {
		childItems := child.size()
		if remaining < childItems || (forInsert && remaining == childItems) {
			return i, remaining
		}
		remaining -= childItems
	}
	assert(false, "locateChild index exceeded subtree item count")
	return 0, 0
}

// rebalanceChildAfterDelete repairs occupancy for child at slot.
//
// `childHeight` selects leaf vs internal sibling operations.
func (t *Tree[I, S]) rebalanceChildAfterDelete(parent *innerNode[I, S], slot int, childHeight int) bool {
	assert(parent != nil, "rebalanceChildAfterDelete called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChildAfterDelete slot out of range")
	if childHeight == 1 {
		return t.rebalanceLeafChild(parent, slot)
	}
	return t.rebalanceInnerChild(parent, slot)
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
func (t *Tree[I, S]) applyRebalancePolicy(
	parent *innerNode[I, S], slot int,
	borrowLeft, borrowRight, mergeLeft, mergeRight func() bool,
) bool {
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft() {
		return true
	}
	if hasRight && borrowRight() {
		return true
	}
	if hasLeft && mergeLeft() {
		return true
	}
	if hasRight && mergeRight() {
		return true
	}
	return false
}

func (t *Tree[I, S]) rebalanceLeafChild(parent *innerNode[I, S], slot int) bool {
	child, ok := parent.children[slot].(*leafNode[I, S])
	assert(ok, "rebalanceLeafChild expected leaf child")
	if !t.leafUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			if len(left.items) <= Base {
				return false
			}
			leftClone := t.cloneLeaf(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.items[len(leftClone.items)-1]
			t.removeLeafItemsRange(leftClone, len(leftClone.items)-1, len(leftClone.items))
			t.insertLeafItemsAt(child, 0, borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			if len(right.items) <= Base {
				return false
			}
			rightClone := t.cloneLeaf(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.items[0]
			t.removeLeafItemsRange(rightClone, 0, 1)
			t.insertLeafItemsAt(child, len(child.items), borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			merged := append(append([]I(nil), left.items...), child.items...)
			parent.children[slot-1] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			merged := append(append([]I(nil), child.items...), right.items...)
			parent.children[slot] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
//
// Child pointers are moved between siblings; summaries and item counts are
// recomputed by the lower-level mutation helpers.
func (t *Tree[I, S]) rebalanceInnerChild(parent *innerNode[I, S], slot int) bool {
	child, ok := parent.children[slot].(*innerNode[I, S])
	assert(ok, "rebalanceInnerChild expected internal child")
	if !t.innerUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			if len(left.children) <= Base {
				return false
			}
			leftClone := t.cloneInner(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.children[len(leftClone.children)-1]
			t.removeChildAt(leftClone, len(leftClone.children)-1)
			t.insertChildAt(child, 0, borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			if len(right.children) <= Base {
				return false
			}
			rightClone := t.cloneInner(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.children[0]
			t.removeChildAt(rightClone, 0)
			t.insertChildAt(child, len(child.children), borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			merged := append(append([]treeNode[I, S](nil), left.children...), child.children...)
			parent.children[slot-1] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			merged := append(append([]treeNode[I, S](nil), child.children...), right.children...)
			parent.children[slot] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}
