package btree

// At returns the leaf item at item index.
func (t *Tree[I, S]) At(index int) (I, error) {
	var zero I
	if t == nil || t.root == nil {
		return zero, ErrIndexOutOfBounds
	}
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	n, height := t.root, t.height
	for height > 1 {
		var slot int
		slot, index = t.locateChild(n.(*innerNode[I, S]), index, false)
		n = n.(*innerNode[I, S]).children[slot]
		height--
	}
	return n.(*leafNode[I, S]).items[index], nil
}

// Items returns all leaf items in order as a fresh slice.
func (t *Tree[I, S]) Items() []I {
	out := make([]I, 0, t.Len())
	t.ForEachItem(func(item I) bool {
		out = append(out, item)
		return true
	})
	return out
}
