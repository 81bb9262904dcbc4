// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws a polygon and its largest inscribed rectangle into an
// image, for eyeballing results.
//
// Vertices are mapped to the centres of integer tiles, scaled uniformly to
// fit the image, so the drawing keeps the polygon's aspect ratio.
//
// Usage:
//
//	res, _ := rectfit.Solve(vertices)
//	img, err := render.Draw(vertices, res.Rect, render.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	return render.WritePNG(f, img)
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/rectfit"
)

// ErrEmptyImage is returned when the requested image has no pixels.
var ErrEmptyImage = errors.New("render: empty image")

// Options configures Draw.
type Options struct {
	// Width and Height are the image size in pixels.
	Width, Height int

	// Margin is left blank around the drawing, in pixels.
	Margin int

	Background color.Color
	Fill       color.Color // polygon interior
	Highlight  color.Color // the rectangle
	Marker     color.Color // vertex dots

	// NoRect skips the rectangle and its label.
	NoRect bool
}

// DefaultOptions returns an 800x600 image on a dark background.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Margin:     24,
		Background: color.RGBA{0x1e, 0x1e, 0x2e, 0xff},
		Fill:       color.RGBA{0x3a, 0x7b, 0x5a, 0xff},
		Highlight:  color.NRGBA{0xe0, 0x4a, 0x3a, 0xb0},
		Marker:     color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
	}
}

// Draw renders the polygon described by vertices and overlays rect.
func Draw(vertices []rectfit.Vertex, rect rectfit.Rectangle, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, opts.Width, opts.Height)
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	if len(vertices) == 0 {
		return dst, nil
	}

	t := fit(rectfit.Bounds(vertices), opts)

	z := vector.NewRasterizer(opts.Width, opts.Height)
	z.DrawOp = xdraw.Over
	for i, v := range vertices {
		x, y := t.point(v)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Fill), image.Point{})

	if !opts.NoRect {
		z.Reset(opts.Width, opts.Height)
		// Corners map to tile centres; cover the whole corner tiles.
		half := float32(t.scale / 2)
		x0, y0 := t.point(rect.Min)
		x1, y1 := t.point(rect.Max)
		x0, y0, x1, y1 = x0-half, y0-half, x1+half, y1+half
		// Keep degenerate rectangles visible.
		x1, y1 = max(x1, x0+1), max(y1, y0+1)
		box(z, x0, y0, x1, y1)
		z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Highlight), image.Point{})

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(opts.Marker),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(opts.Margin, opts.Height-opts.Margin/2),
		}
		d.DrawString(fmt.Sprintf("area %d  %v-%v", rect.Area(), rect.Min, rect.Max))
	}

	z.Reset(opts.Width, opts.Height)
	for _, v := range vertices {
		x, y := t.point(v)
		box(z, x-1.5, y-1.5, x+1.5, y+1.5)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Marker), image.Point{})

	return dst, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

func box(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

// transform maps polygon coordinates to pixels.
type transform struct {
	minX, minY uint64
	scale      float64
	offX, offY float64
}

func fit(b rectfit.Rectangle, opts Options) transform {
	w := float64(max(opts.Width-2*opts.Margin, 1))
	h := float64(max(opts.Height-2*opts.Margin, 1))
	s := min(w/float64(b.Width()), h/float64(b.Height()))
	return transform{
		minX:  b.Min.X,
		minY:  b.Min.Y,
		scale: s,
		offX:  float64(opts.Margin) + (w-s*float64(b.Width()))/2,
		offY:  float64(opts.Margin) + (h-s*float64(b.Height()))/2,
	}
}

func (t transform) point(v rectfit.Vertex) (float32, float32) {
	x := t.offX + (float64(v.X)-float64(t.minX)+0.5)*t.scale
	y := t.offY + (float64(v.Y)-float64(t.minY)+0.5)*t.scale
	return float32(x), float32(y)
}
