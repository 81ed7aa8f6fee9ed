package btree

type treeNode[I SummarizedItem[S], S any] interface {
	isLeaf() bool
	Summary() S
	size() int
}

type leafNode[I SummarizedItem[S], S any] struct {
	summary S
	items   []I
}

func (l *leafNode[I, S]) isLeaf() bool { return true }
func (l *leafNode[I, S]) Summary() S   { return l.summary }
func (l *leafNode[I, S]) size() int    { return len(l.items) }

type innerNode[I SummarizedItem[S], S any] struct {
	summary  S
	count    int // number of leaf items in this subtree
	children []treeNode[I, S]
}

func (n *innerNode[I, S]) isLeaf() bool { return false }
func (n *innerNode[I, S]) Summary() S   { return n.summary }
func (n *innerNode[I, S]) size() int    { return n.count }
