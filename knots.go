package splines

import (
	"cmp"
	"math"

	"github.com/npillmayer/splines/btree"
)

// knot is the item type of the node store.
type knot[V any] struct {
	x float64
	y V
}

// span summarizes a run of knots: their count and the position interval
// they cover.
type span struct {
	Count  int
	Lo, Hi float64
}

func (k knot[V]) Summary() span {
	return span{Count: 1, Lo: k.x, Hi: k.x}
}

type spanMonoid struct{}

func (spanMonoid) Zero() span { return span{} }

func (spanMonoid) Add(left, right span) span {
	switch {
	case left.Count == 0:
		return right
	case right.Count == 0:
		return left
	}
	return span{
		Count: left.Count + right.Count,
		Lo:    left.Lo,
		Hi:    right.Hi,
	}
}

// positionDimension seeks along knot positions. The accumulated value of a
// prefix of knots is its greatest position.
type positionDimension struct{}

func (positionDimension) Zero() float64 { return math.Inf(-1) }

func (positionDimension) Add(acc float64, s span) float64 {
	if s.Count == 0 {
		return acc
	}
	return s.Hi
}

func (positionDimension) Compare(acc, target float64) int {
	return cmp.Compare(acc, target)
}

type knotTree[V any] = btree.Tree[knot[V], span]

func newKnotTree[V any]() *knotTree[V] {
	tree, err := btree.New[knot[V]](btree.Config[span]{Monoid: spanMonoid{}})
	if err != nil {
		panic(err) // a non-nil monoid is always a valid configuration
	}
	return tree
}

// seekKnot finds the index of the first knot at a position ≥ x. found
// reports whether that knot sits exactly at x.
func seekKnot[V any](tree *knotTree[V], x float64) (index int, found bool) {
	cursor, err := btree.NewCursor[knot[V], span, float64](tree, positionDimension{})
	if err != nil {
		panic(err)
	}
	if index, _, err = cursor.Seek(x); err != nil {
		panic(err)
	}
	if index < tree.Len() {
		k, err := tree.At(index)
		found = err == nil && k.x == x
	}
	return index, found
}
