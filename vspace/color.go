package vspace

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab is a color in CIE L*a*b* space, using the D65 white point.
//
// Components follow go-colorful's scaling: lightness L runs from 0 (black)
// to 1 (white), not 0 to 100, and a, b are scaled down accordingly.
//
// Lab distances approximate perceived color differences, which makes it the
// space of choice for interpolating colors: a spline through Lab colors
// yields smooth gradients without the muddy mid-tones of RGB blending.
type Lab struct {
	L, A, B float64
}

// LabFromColor converts any color to Lab.
func LabFromColor(c color.Color) Lab {
	cf, ok := colorful.MakeColor(c)
	if !ok { // fully transparent
		return Lab{}
	}
	l, a, b := cf.Lab()
	return Lab{L: l, A: a, B: b}
}

// LabFromHex parses a color in "#rrggbb" notation.
func LabFromHex(hex string) (Lab, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return Lab{}, err
	}
	l, a, b := cf.Lab()
	return Lab{L: l, A: a, B: b}, nil
}

// Color converts to an sRGB color. Colors outside the sRGB gamut are clamped.
func (c Lab) Color() colorful.Color {
	return colorful.Lab(c.L, c.A, c.B).Clamped()
}

// RGBA implements color.Color.
func (c Lab) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Hex returns the "#rrggbb" notation of c (after clamping to sRGB).
func (c Lab) Hex() string {
	return c.Color().Hex()
}

func (c Lab) Add(d Lab) Lab       { return Lab{c.L + d.L, c.A + d.A, c.B + d.B} }
func (c Lab) Sub(d Lab) Lab       { return Lab{c.L - d.L, c.A - d.A, c.B - d.B} }
func (c Lab) Scale(s float64) Lab { return Lab{c.L * s, c.A * s, c.B * s} }

// Colors is the vector space of Lab colors.
type Colors = Methods[Lab]
