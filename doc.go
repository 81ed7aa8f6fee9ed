/*
Package splines interpolates sparse samples with natural cubic splines.

Splines

A spline stores a set of nodes (x, y) with unique, ascending positions x and
produces a piecewise cubic curve passing through every node. Between
neighbouring nodes x_i and x_{i+1} the curve is

    f_i(x) = a_i + b_i·t + c_i·t² + d_i·t³,   t = x − x_i

The pieces join with matching value, slope and curvature (the curve is C²
continuous), and the curvature vanishes at both ends ("natural" boundary).

Node values need not be numbers. Any type V works for which addition,
subtraction and scaling by a real factor are defined; clients hand in a
VectorSpace[V] implementing these operations. Package vspace provides
implementations for floats, float slices, colors and matrices.

Lazy Recomputation

Coefficients are derived from the nodes by solving a tridiagonal system
(Burden & Faires, Numerical Analysis, Algorithm 3.4). Every mutation of the node
set marks the coefficients as stale; the next evaluation recomputes them once.
Evaluation is safe for concurrent use with other evaluations and with
mutations.

Evaluation outside the node range extrapolates with the first or last
segment's cubic.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package splines

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SplineError is an error type for the splines module
type SplineError string

func (e SplineError) Error() string {
	return string(e)
}

// ErrInsufficientNodes is flagged whenever a spline has to be computed or
// evaluated with less than two nodes.
const ErrInsufficientNodes = SplineError("insufficient nodes; need at least two")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SplineError("illegal arguments")
