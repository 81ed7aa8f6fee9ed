package splines

// VectorSpace describes the arithmetic a spline needs on node values.
//
// Implementations must not modify their arguments. The zero element is taken
// as Scale(v, 0) of an arbitrary stored value v, so Scale has to produce a
// proper zero for a factor of 0 (for slices and matrices: of the same shape).
type VectorSpace[V any] interface {
	Add(u, v V) V
	Sub(u, v V) V
	Scale(v V, s float64) V
}

// Node is a sample of a spline: value Y at position X.
type Node[V any] struct {
	X float64
	Y V
}

// combine computes u + s·v.
func combine[V any](space VectorSpace[V], u, v V, s float64) V {
	return space.Add(u, space.Scale(v, s))
}
