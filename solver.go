package splines

import (
	"fmt"
	"math"
)

// Coefficients holds the polynomial pieces of a spline with n+1 nodes.
//
// Segment i covers [X[i], X[i+1]] and evaluates to
//
//	A[i] + B[i]·t + C[i]·t² + D[i]·t³,  t = x − X[i]
//
// A, B, C and D have n entries, X has n+1.
type Coefficients[V any] struct {
	X          []float64
	A, B, C, D []V
}

// Segments returns the number of polynomial pieces.
func (c Coefficients[V]) Segments() int {
	return len(c.A)
}

func (c Coefficients[V]) clone() Coefficients[V] {
	return Coefficients[V]{
		X: append([]float64(nil), c.X...),
		A: append([]V(nil), c.A...),
		B: append([]V(nil), c.B...),
		C: append([]V(nil), c.C...),
		D: append([]V(nil), c.D...),
	}
}

// Solve computes the coefficients of the natural cubic spline through the
// nodes (xs[i], ys[i]). Positions must be strictly increasing.
//
// This follows Burden & Faires, Numerical Analysis, Algorithm 3.4: the
// second-order coefficients c_i are the solution of a tridiagonal system,
// solved by a forward sweep (Crout factorization) and back substitution in
// O(n). The natural boundary fixes c_0 = c_n = 0.
//
// Solve does not modify xs or ys. A[i] is ys[i] itself.
func Solve[V any](space VectorSpace[V], xs []float64, ys []V) (Coefficients[V], error) {
	if space == nil {
		return Coefficients[V]{}, fmt.Errorf("%w: vector space is nil", ErrIllegalArguments)
	}
	if len(xs) != len(ys) {
		return Coefficients[V]{}, fmt.Errorf("%w: %d positions for %d values",
			ErrIllegalArguments, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Coefficients[V]{}, ErrInsufficientNodes
	}
	n := len(xs) - 1
	h := make([]float64, n)
	for i := range n {
		if !(xs[i+1] > xs[i]) {
			return Coefficients[V]{}, fmt.Errorf("%w: positions not strictly increasing at index %d",
				ErrIllegalArguments, i+1)
		}
		h[i] = xs[i+1] - xs[i]
	}
	a := ys
	zero := space.Scale(a[0], 0)
	// slope of segment i
	slope := func(i int) V {
		return divide(space, space.Sub(a[i+1], a[i]), h[i])
	}
	// forward sweep
	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]V, n+1)
	l[0], mu[0], z[0] = 1, 0, zero
	for i := 1; i < n; i++ {
		alpha := space.Scale(space.Sub(slope(i), slope(i-1)), 3)
		l[i] = 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = divide(space, combine(space, alpha, z[i-1], -h[i-1]), l[i])
	}
	l[n], z[n] = 1, zero
	// back substitution
	coeff := Coefficients[V]{
		X: append([]float64(nil), xs...),
		A: append([]V(nil), a[:n]...),
		B: make([]V, n),
		C: make([]V, n),
		D: make([]V, n),
	}
	next := zero // c_{j+1}, starting with c_n
	for j := n - 1; j >= 0; j-- {
		c := combine(space, z[j], next, -mu[j])
		coeff.C[j] = c
		coeff.B[j] = combine(space, slope(j), space.Add(next, space.Scale(c, 2)), -h[j]/3)
		coeff.D[j] = divide(space, space.Sub(next, c), 3*h[j])
		next = c
	}
	return coeff, nil
}

// divide computes v/d with scaling only. For subnormal d, where 1/d
// overflows, the reciprocal is applied in two finite steps.
func divide[V any](space VectorSpace[V], v V, d float64) V {
	if r := 1 / d; !math.IsInf(r, 0) {
		return space.Scale(v, r)
	}
	return space.Scale(space.Scale(v, 1/math.Ldexp(d, 64)), math.Ldexp(1, 64))
}
