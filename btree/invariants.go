package btree

import "fmt"

// Check validates structural tree invariants: uniform leaf depth, node
// occupancy bounds and cached item counts.
func (t *Tree[I, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvalidConfig)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidConfig)
	}
	_, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	return nil
}

func (t *Tree[I, S]) checkNode(n treeNode[I, S], isRoot bool) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		switch {
		case len(leaf.items) == 0:
			return 0, 0, fmt.Errorf("%w: empty leaf", ErrInvalidConfig)
		case len(leaf.items) > MaxLeafItems:
			return 0, 0, fmt.Errorf("%w: leaf holds %d items, max is %d",
				ErrInvalidConfig, len(leaf.items), MaxLeafItems)
		case !isRoot && len(leaf.items) < Base:
			return 0, 0, fmt.Errorf("%w: leaf holds %d items, min is %d",
				ErrInvalidConfig, len(leaf.items), Base)
		}
		return len(leaf.items), 1, nil
	}
	inner := n.(*innerNode[I, S])
	switch {
	case isRoot && len(inner.children) < 2:
		return 0, 0, fmt.Errorf("%w: inner root has %d children", ErrInvalidConfig, len(inner.children))
	case len(inner.children) > MaxChildren:
		return 0, 0, fmt.Errorf("%w: child count %d exceeds degree %d",
			ErrInvalidConfig, len(inner.children), MaxChildren)
	case !isRoot && len(inner.children) < Base:
		return 0, 0, fmt.Errorf("%w: child count %d below minimum %d",
			ErrInvalidConfig, len(inner.children), Base)
	}
	var totalItems int
	var childHeight int
	for i, child := range inner.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidConfig, i)
		}
		cItems, cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
		}
	}
	if totalItems != inner.count {
		return 0, 0, fmt.Errorf("%w: cached item count %d, counted %d",
			ErrInvalidConfig, inner.count, totalItems)
	}
	return totalItems, childHeight + 1, nil
}
