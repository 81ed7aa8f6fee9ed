package vspace

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/mat"
)

// Dense is the vector space of real matrices of equal dimensions.
type Dense struct{}

func (Dense) Add(u, v *mat.Dense) *mat.Dense {
	mustMatchDims(u, v)
	var r mat.Dense
	r.Add(u, v)
	return &r
}

func (Dense) Sub(u, v *mat.Dense) *mat.Dense {
	mustMatchDims(u, v)
	var r mat.Dense
	r.Sub(u, v)
	return &r
}

func (Dense) Scale(v *mat.Dense, s float64) *mat.Dense {
	var r mat.Dense
	r.Scale(s, v)
	return &r
}

func mustMatchDims(u, v mat.Matrix) {
	ur, uc := u.Dims()
	vr, vc := v.Dims()
	if ur != vr || uc != vc {
		tracer().Errorf("matrix dimensions %dx%d and %dx%d differ", ur, uc, vr, vc)
		panic(fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ur, uc, vr, vc))
	}
}

// Picture is an image decomposed into L*, a* and b* planes. Pictures of equal
// size form a vector space, so splines over pictures morph between images.
type Picture struct {
	L, A, B *mat.Dense
}

// PictureFromImage converts an image to a Picture. The picture has one
// matrix row per pixel row.
func PictureFromImage(img image.Image) Picture {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows == 0 || cols == 0 {
		panic(fmt.Errorf("%w: empty image", ErrShapeMismatch))
	}
	p := Picture{
		L: mat.NewDense(rows, cols, nil),
		A: mat.NewDense(rows, cols, nil),
		B: mat.NewDense(rows, cols, nil),
	}
	for y := range rows {
		for x := range cols {
			lab := LabFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			p.L.Set(y, x, lab.L)
			p.A.Set(y, x, lab.A)
			p.B.Set(y, x, lab.B)
		}
	}
	return p
}

// Image converts p back to an RGBA image.
func (p Picture) Image() *image.RGBA {
	rows, cols := p.L.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := range rows {
		for x := range cols {
			img.Set(x, y, p.At(x, y).Color())
		}
	}
	return img
}

// At returns the color of the pixel in column x and row y.
func (p Picture) At(x, y int) Lab {
	return Lab{L: p.L.At(y, x), A: p.A.At(y, x), B: p.B.At(y, x)}
}

func (p Picture) Add(q Picture) Picture {
	var d Dense
	return Picture{L: d.Add(p.L, q.L), A: d.Add(p.A, q.A), B: d.Add(p.B, q.B)}
}

func (p Picture) Sub(q Picture) Picture {
	var d Dense
	return Picture{L: d.Sub(p.L, q.L), A: d.Sub(p.A, q.A), B: d.Sub(p.B, q.B)}
}

func (p Picture) Scale(s float64) Picture {
	var d Dense
	return Picture{L: d.Scale(p.L, s), A: d.Scale(p.A, s), B: d.Scale(p.B, s)}
}

// Pictures is the vector space of pictures of equal size.
type Pictures = Methods[Picture]
