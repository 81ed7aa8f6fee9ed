/*
Package vspace provides vector spaces for spline node values.

A vector space in this sense is a type offering addition, subtraction and
scaling by a real factor for values of some type V. Splines use these
operations to compute and evaluate their coefficients:

	spline, err := splines.New(splines.Config[float64]{Space: vspace.Float{}})

All operations return new values and leave their arguments untouched.
Operations on values of mismatching shape (slices of different length,
matrices of different dimensions) panic.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vspace

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// ErrShapeMismatch is the panic value for arithmetic on values of different
// shape.
var ErrShapeMismatch = errors.New("vspace: operands differ in shape")
