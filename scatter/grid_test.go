// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func pointTable(xs, ys []float64) *table.Table {
	return new(table.Builder).Add("x", xs).Add("y", ys).Done()
}

func fourTables() []*table.Table {
	tabs := make([]*table.Table, 4)
	for i := range tabs {
		tabs[i] = pointTable([]float64{1, 2, 3}, []float64{3, 2, 1})
	}
	return tabs
}

func TestGridCount(t *testing.T) {
	var buf bytes.Buffer
	for _, n := range []int{0, 1, 3, 5} {
		tabs := make([]*table.Table, n)
		for i := range tabs {
			tabs[i] = pointTable([]float64{1}, []float64{1})
		}
		err := Grid(&buf, tabs, Config{})
		if err == nil || !strings.Contains(err.Error(), "exactly 4") {
			t.Errorf("%d tables: want grid size error; got %v", n, err)
		}
	}
}

func TestGridSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Grid(&buf, fourTables(), Config{Width: 400, Height: 400}); err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("output does not look like SVG: %.80q", out)
	}
	for _, label := range []string{"Plot 1", "Plot 2", "Plot 3", "Plot 4"} {
		if !strings.Contains(out, label) {
			t.Errorf("output is missing panel label %q", label)
		}
	}
}

func TestGridTable(t *testing.T) {
	tabs := fourTables()
	// Panel 2 is missing the y column; panel 3 has a non-numeric
	// y column. Both render empty.
	tabs[1] = new(table.Builder).Add("x", []float64{1, 2}).Done()
	tabs[2] = new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []string{"a", "b"}).
		Done()

	combined := gridTable(tabs, "x", "y")
	if want := []string{"x", "y", "panel"}; !reflect.DeepEqual(want, combined.Columns()) {
		t.Fatalf("columns should be %v; got %v", want, combined.Columns())
	}
	wantPanels := []string{
		"Plot 1", "Plot 1", "Plot 1",
		"Plot 2 (columns not found)",
		"Plot 3 (columns not found)",
		"Plot 4", "Plot 4", "Plot 4",
	}
	if got := combined.Column("panel"); !reflect.DeepEqual(wantPanels, got) {
		t.Errorf("panel labels should be %v; got %v", wantPanels, got)
	}
	xs := combined.Column("x").([]float64)
	if !math.IsNaN(xs[3]) || !math.IsNaN(xs[4]) {
		t.Errorf("empty panels should hold NaN placeholders; got %v", xs)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	want := Config{XCol: "x", YCol: "y", Width: 1000, Height: 1000}
	if cfg != want {
		t.Errorf("want %+v; got %+v", want, cfg)
	}

	cfg = Config{XCol: "a", Width: 640}.WithDefaults()
	want = Config{XCol: "a", YCol: "y", Width: 640, Height: 1000}
	if cfg != want {
		t.Errorf("want %+v; got %+v", want, cfg)
	}
}
