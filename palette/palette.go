package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/vspace"
)

// Stop is a color at a position of a palette.
type Stop struct {
	At    float64
	Color vspace.Lab
}

// Palette maps values from [0, 1] to colors.
type Palette struct {
	Name   string
	stops  []Stop
	spline *splines.Spline[vspace.Lab]
}

// New creates a palette from at least two stops. Stop positions have to be
// distinct and lie within [0, 1].
func New(name string, stops ...Stop) (*Palette, error) {
	return NewWithConfig(name, splines.Config[vspace.Lab]{}, stops...)
}

// NewWithConfig is like New, but lets clients configure the underlying
// spline, e.g., to attach a recompute hook. cfg.Space is always set to Lab
// arithmetic.
func NewWithConfig(name string, cfg splines.Config[vspace.Lab], stops ...Stop) (*Palette, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: palette %q has %d stops, need at least 2",
			ErrInvalidPalette, name, len(stops))
	}
	cfg.Space = vspace.Colors{}
	spline, err := splines.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, stop := range stops {
		if !(stop.At >= 0 && stop.At <= 1) {
			return nil, fmt.Errorf("%w: palette %q: stop position %v outside [0,1]",
				ErrInvalidPalette, name, stop.At)
		}
		spline.Insert(stop.At, stop.Color)
	}
	if spline.Len() != len(stops) {
		return nil, fmt.Errorf("%w: palette %q has duplicate stop positions", ErrInvalidPalette, name)
	}
	p := &Palette{Name: name, spline: spline}
	for _, n := range spline.Nodes() {
		p.stops = append(p.stops, Stop{At: n.X, Color: n.Y})
	}
	tracer().Debugf("palette %q with %d stops", name, len(p.stops))
	return p, nil
}

// Stops returns the palette's stops, ordered by position.
func (p *Palette) Stops() []Stop {
	return append([]Stop(nil), p.stops...)
}

// Map returns the color for x. Values outside [0, 1] are clamped, as are
// colors outside the sRGB gamut.
func (p *Palette) Map(x float64) colorful.Color {
	if math.IsNaN(x) {
		x = 0
	}
	x = min(max(x, 0), 1)
	lab, err := p.spline.Evaluate(x)
	if err != nil { // cannot happen for palettes created by New
		panic(err)
	}
	return lab.Color()
}

// Colors samples n equidistant colors from the palette, including both ends.
func (p *Palette) Colors(n int) []colorful.Color {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []colorful.Color{p.Map(0)}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
	}
	labs, err := p.spline.EvaluateAll(xs, nil)
	if err != nil {
		panic(err)
	}
	colors := make([]colorful.Color, n)
	for i, lab := range labs {
		colors[i] = lab.Color()
	}
	return colors
}
