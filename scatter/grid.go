// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter renders grids of scatterplots from go-gg tables.
package scatter

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/saurus-project/saurus/summary"
)

// Config controls how a scatterplot grid is rendered. Every call
// receives its configuration explicitly; there is no process-global
// plot style.
type Config struct {
	// XCol and YCol name the columns plotted on the X and Y axes
	// of every panel. Empty values default to "x" and "y".
	XCol, YCol string

	// Width and Height give the size of the rendered grid in
	// pixels. Zero values default to 1000x1000.
	Width, Height int

	// Title is an optional title drawn above the grid.
	Title string
}

// WithDefaults returns c with zero fields replaced by the default
// column names and size.
func (c Config) WithDefaults() Config {
	if c.XCol == "" {
		c.XCol = "x"
	}
	if c.YCol == "" {
		c.YCol = "y"
	}
	if c.Width == 0 {
		c.Width = 1000
	}
	if c.Height == 0 {
		c.Height = 1000
	}
	return c
}

// Grid renders tabs as a 2x2 grid of scatterplots in SVG.
//
// tabs must contain exactly four tables. Each becomes one panel,
// labeled "Plot 1" through "Plot 4" in order. A panel whose table
// does not have both configured columns is rendered empty, with a
// "(columns not found)" suffix on its label, rather than failing the
// whole grid.
func Grid(w io.Writer, tabs []*table.Table, cfg Config) error {
	if len(tabs) != 4 {
		return fmt.Errorf("scatter grid requires exactly 4 tables; got %d", len(tabs))
	}
	cfg = cfg.WithDefaults()

	plot := gg.NewPlot(gridTable(tabs, cfg.XCol, cfg.YCol))
	plot.Add(gg.FacetWrap{Col: "panel", Cols: 2})
	plot.Add(gg.LayerPoints{X: cfg.XCol, Y: cfg.YCol})
	if cfg.Title != "" {
		plot.Add(gg.Title(cfg.Title))
	}
	return plot.WriteSVG(w, cfg.Width, cfg.Height)
}

// gridTable combines tabs into one table with float64 columns xCol
// and yCol and a "panel" label column. A table with no usable data
// contributes a single NaN row so its panel still appears, empty.
func gridTable(tabs []*table.Table, xCol, yCol string) *table.Table {
	var xs, ys []float64
	var panels []string
	empty := func(label string) {
		xs = append(xs, math.NaN())
		ys = append(ys, math.NaN())
		panels = append(panels, label)
	}
	for i, t := range tabs {
		label := fmt.Sprintf("Plot %d", i+1)
		px, errx := summary.NumericColumn(t, xCol)
		py, erry := summary.NumericColumn(t, yCol)
		if errx != nil || erry != nil {
			empty(label + " (columns not found)")
			continue
		}
		if len(px) == 0 {
			empty(label)
			continue
		}
		for j := range px {
			xs = append(xs, px[j])
			ys = append(ys, py[j])
			panels = append(panels, label)
		}
	}
	return new(table.Builder).
		Add(xCol, xs).
		Add(yCol, ys).
		Add("panel", panels).
		Done()
}
