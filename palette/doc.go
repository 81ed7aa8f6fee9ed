/*
Package palette implements continuous color maps based on splines.

A palette is defined by a small number of color stops at positions in
[0, 1]. Mapping a value to a color evaluates a spline through the stops,
interpolating in CIE L*a*b* space, so gradients stay perceptually smooth.
Color maps of this kind are used for coloring fractals and heat maps.

Palettes may be defined in code or loaded from YAML:

	palettes:
	  - name: ocean
	    stops:
	      - { at: 0.0, color: "#000764" }
	      - { at: 0.16, color: "#206bcb" }
	      - { at: 0.42, color: "#edffff" }
	      - { at: 0.6425, color: "#ffaa00" }
	      - { at: 0.8575, color: "#000200" }

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package palette

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// ErrInvalidPalette is flagged for palette definitions which cannot be
// turned into a color map.
var ErrInvalidPalette = errors.New("invalid palette definition")
