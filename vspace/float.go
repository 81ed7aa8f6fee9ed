package vspace

import "fmt"

// Float is the vector space of real numbers.
type Float struct{}

func (Float) Add(u, v float64) float64           { return u + v }
func (Float) Sub(u, v float64) float64           { return u - v }
func (Float) Scale(v float64, s float64) float64 { return v * s }

// Slice is the vector space of fixed-length float64 vectors, e.g. coordinates.
// Both operands of Add and Sub must have the same length.
type Slice struct{}

func (Slice) Add(u, v []float64) []float64 {
	mustMatch(len(u), len(v))
	r := make([]float64, len(u))
	for i := range u {
		r[i] = u[i] + v[i]
	}
	return r
}

func (Slice) Sub(u, v []float64) []float64 {
	mustMatch(len(u), len(v))
	r := make([]float64, len(u))
	for i := range u {
		r[i] = u[i] - v[i]
	}
	return r
}

func (Slice) Scale(v []float64, s float64) []float64 {
	r := make([]float64, len(v))
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

func mustMatch(n, m int) {
	if n != m {
		tracer().Errorf("vector lengths %d and %d differ", n, m)
		panic(fmt.Errorf("%w: length %d vs %d", ErrShapeMismatch, n, m))
	}
}

// Vector is implemented by value types which carry their own arithmetic.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
}

// Methods adapts a Vector type to a vector space.
type Methods[V Vector[V]] struct{}

func (Methods[V]) Add(u, v V) V           { return u.Add(v) }
func (Methods[V]) Sub(u, v V) V           { return u.Sub(v) }
func (Methods[V]) Scale(v V, s float64) V { return v.Scale(s) }

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) String() string        { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Points is the vector space of points in the plane.
type Points = Methods[Point]
