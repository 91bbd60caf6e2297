// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders scatterplot grids to PNG images.
//
// It mirrors the contract of package scatter but draws points
// directly instead of going through SVG, for callers that want a
// bitmap on disk.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"golang.org/x/image/draw"

	"github.com/saurus-project/saurus/scatter"
	"github.com/saurus-project/saurus/summary"
)

// Points are drawn on a canvas this many times larger than the
// output and scaled down, which antialiases them.
const super = 2

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	frameGray  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	pointBlue  = color.RGBA{0x46, 0x82, 0xb4, 0xff}
)

// Grid renders tabs as a 2x2 grid of scatterplots encoded as PNG.
//
// The contract matches scatter.Grid: exactly four tables, one panel
// per table in order; a panel whose table lacks the configured
// columns is left blank.
func Grid(w io.Writer, tabs []*table.Table, cfg scatter.Config) error {
	if len(tabs) != 4 {
		return fmt.Errorf("scatter grid requires exactly 4 tables; got %d", len(tabs))
	}
	cfg = cfg.WithDefaults()

	big := image.NewRGBA(image.Rect(0, 0, cfg.Width*super, cfg.Height*super))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	pw, ph := cfg.Width*super/2, cfg.Height*super/2
	for i, t := range tabs {
		panel := image.Rect((i%2)*pw, (i/2)*ph, (i%2+1)*pw, (i/2+1)*ph)
		drawPanel(big, panel.Inset(pw/20), t, cfg.XCol, cfg.YCol)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Over, nil)
	return png.Encode(w, dst)
}

func drawPanel(img *image.RGBA, r image.Rectangle, t *table.Table, xCol, yCol string) {
	frame(img, r)

	xs, errx := summary.NumericColumn(t, xCol)
	ys, erry := summary.NumericColumn(t, yCol)
	if errx != nil || erry != nil {
		return
	}
	x0, x1, okx := bounds(xs)
	y0, y1, oky := bounds(ys)
	if !okx || !oky {
		return
	}

	inner := r.Inset(4 * super)
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px := inner.Min.X + int(project(xs[i], x0, x1, float64(inner.Dx())))
		py := inner.Max.Y - int(project(ys[i], y0, y1, float64(inner.Dy())))
		dot(img, px, py)
	}
}

// project maps v from [lo, hi] to [0, size]. A degenerate domain maps
// to the center.
func project(v, lo, hi, size float64) float64 {
	if hi == lo {
		return size / 2
	}
	return (v - lo) / (hi - lo) * size
}

// bounds returns the min and max of the non-NaN values of xs. ok is
// false if there are none.
func bounds(xs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		lo, hi = math.Min(lo, x), math.Max(hi, x)
		ok = true
	}
	return
}

func dot(img *image.RGBA, x, y int) {
	const r = 2 * super
	rect := image.Rect(x-r, y-r, x+r, y+r).Intersect(img.Bounds())
	draw.Draw(img, rect, image.NewUniform(pointBlue), image.Point{}, draw.Src)
}

func frame(img *image.RGBA, r image.Rectangle) {
	u := image.NewUniform(frameGray)
	for _, edge := range []image.Rectangle{
		{r.Min, image.Pt(r.Max.X, r.Min.Y+super)},
		{image.Pt(r.Min.X, r.Max.Y-super), r.Max},
		{r.Min, image.Pt(r.Min.X+super, r.Max.Y)},
		{image.Pt(r.Max.X-super, r.Min.Y), r.Max},
	} {
		draw.Draw(img, edge, u, image.Point{}, draw.Src)
	}
}
