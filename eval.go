package splines

import (
	"fmt"
	"math"
	"sort"
)

// Evaluate returns the value of the spline at position x.
//
// Positions before the first node are extrapolated with the first segment,
// positions at or beyond the last node with the last segment. With less than
// two nodes Evaluate returns ErrInsufficientNodes.
func (s *Spline[V]) Evaluate(x float64) (V, error) {
	var v V
	err := s.withFresh(func(c *Coefficients[V]) error {
		v = c.eval(s.cfg.Space, x)
		return nil
	})
	return v, err
}

// EvaluateAll evaluates the spline at every position in xs. Results are
// appended to out[:0], which may be nil.
func (s *Spline[V]) EvaluateAll(xs []float64, out []V) ([]V, error) {
	out = out[:0]
	err := s.withFresh(func(c *Coefficients[V]) error {
		for _, x := range xs {
			out = append(out, c.eval(s.cfg.Space, x))
		}
		return nil
	})
	return out, err
}

// Derivative returns the derivative of the given order at position x.
// Order 0 is the value itself. Derivatives of order 4 and above are zero.
func (s *Spline[V]) Derivative(x float64, order int) (V, error) {
	var v V
	if order < 0 {
		return v, fmt.Errorf("%w: negative derivative order %d", ErrIllegalArguments, order)
	}
	err := s.withFresh(func(c *Coefficients[V]) error {
		v = c.derivative(s.cfg.Space, x, order)
		return nil
	})
	return v, err
}

// Integrate returns the integral of the spline from lo to hi. Integrating
// from a greater to a smaller position yields the negated integral.
func (s *Spline[V]) Integrate(lo, hi float64) (V, error) {
	var v V
	err := s.withFresh(func(c *Coefficients[V]) error {
		if lo > hi {
			v = s.cfg.Space.Scale(c.integrate(s.cfg.Space, hi, lo), -1)
		} else {
			v = c.integrate(s.cfg.Space, lo, hi)
		}
		return nil
	})
	return v, err
}

// --- Coefficient arithmetic -------------------------------------------

func (c *Coefficients[V]) eval(space VectorSpace[V], x float64) V {
	i := locate(c.X, x)
	t := x - c.X[i]
	// Horner: a + t·(b + t·(c + t·d))
	v := combine(space, c.C[i], c.D[i], t)
	v = combine(space, c.B[i], v, t)
	return combine(space, c.A[i], v, t)
}

func (c *Coefficients[V]) derivative(space VectorSpace[V], x float64, order int) V {
	i := locate(c.X, x)
	t := x - c.X[i]
	switch order {
	case 0:
		return c.eval(space, x)
	case 1: // b + 2c·t + 3d·t²
		v := combine(space, space.Scale(c.C[i], 2), c.D[i], 3*t)
		return combine(space, c.B[i], v, t)
	case 2: // 2c + 6d·t
		return space.Add(space.Scale(c.C[i], 2), space.Scale(c.D[i], 6*t))
	case 3:
		return space.Scale(c.D[i], 6)
	}
	return space.Scale(c.A[i], 0)
}

// antiderivative of segment i at offset t, vanishing at t = 0.
func (c *Coefficients[V]) antiderivative(space VectorSpace[V], i int, t float64) V {
	// t·(a + t·(b/2 + t·(c/3 + t·d/4)))
	v := combine(space, space.Scale(c.C[i], 1.0/3), c.D[i], t/4)
	v = combine(space, space.Scale(c.B[i], 0.5), v, t)
	v = combine(space, c.A[i], v, t)
	return space.Scale(v, t)
}

// integrate requires lo ≤ hi.
func (c *Coefficients[V]) integrate(space VectorSpace[V], lo, hi float64) V {
	i, j := locate(c.X, lo), locate(c.X, hi)
	if i == j {
		return space.Sub(c.antiderivative(space, i, hi-c.X[i]),
			c.antiderivative(space, i, lo-c.X[i]))
	}
	sum := space.Sub(c.antiderivative(space, i, c.X[i+1]-c.X[i]),
		c.antiderivative(space, i, lo-c.X[i]))
	for k := i + 1; k < j; k++ {
		sum = space.Add(sum, c.antiderivative(space, k, c.X[k+1]-c.X[k]))
	}
	return space.Add(sum, c.antiderivative(space, j, hi-c.X[j]))
}

// locate finds the segment for position x in the ascending knot positions xs
// (at least two of them):
//
//	x < xs[0]        → 0
//	x ≥ xs[n]        → n−1
//	otherwise        → greatest i with xs[i] ≤ x
//
// It first guesses the segment assuming uniformly spaced knots and falls back
// to binary search if the guess misses.
func locate(xs []float64, x float64) int {
	n := len(xs) - 1
	switch {
	case math.IsNaN(x) || x < xs[0]:
		return 0
	case x >= xs[n]:
		return n - 1
	}
	guess := int(float64(n) * (x - xs[0]) / (xs[n] - xs[0]))
	guess = min(max(guess, 0), n-1)
	if xs[guess] <= x && x < xs[guess+1] {
		return guess
	}
	// first index with xs[k] > x; k ≥ 1 as xs[0] ≤ x
	k := sort.Search(n+1, func(k int) bool { return xs[k] > x })
	return min(k-1, n-1)
}
