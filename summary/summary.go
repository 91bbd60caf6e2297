// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes fixed-shape statistical summaries of table
// columns.
package summary

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Errors distinguishing why a column cannot be summarized.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNonNumeric     = errors.New("non-numeric column")
)

var float64Type = reflect.TypeOf(float64(0))

// Stats returns a two-row table describing columns col1 and col2 of t.
//
// The result has a "column" column holding col1 and col2 in argument
// order, and float64 columns "Mean", "Std", and "Corr". Mean and Std
// are the arithmetic mean and sample standard deviation (denominator
// n-1) of each column, ignoring NaN values. Corr is the Pearson
// correlation coefficient between the two columns, computed once over
// rows where both values are present and repeated in both rows, since
// correlation is symmetric. Every value is rounded to one decimal.
//
// An empty column name defaults to "x" for col1 and "y" for col2.
// If either column has zero variance, Corr is NaN.
//
// Stats never modifies t.
func Stats(t *table.Table, col1, col2 string) (*table.Table, error) {
	if col1 == "" {
		col1 = "x"
	}
	if col2 == "" {
		col2 = "y"
	}

	xs, err := NumericColumn(t, col1)
	if err != nil {
		return nil, err
	}
	ys, err := NumericColumn(t, col2)
	if err != nil {
		return nil, err
	}

	corr := round1(pearson(xs, ys))
	return new(table.Builder).
		Add("column", []string{col1, col2}).
		Add("Mean", []float64{round1(mean(xs)), round1(mean(ys))}).
		Add("Std", []float64{round1(stdDev(xs)), round1(stdDev(ys))}).
		Add("Corr", []float64{corr, corr}).
		Done(), nil
}

// NumericColumn extracts column col of t as a []float64. Callers
// must not modify the returned slice, which may share storage with t.
//
// It fails with ErrColumnNotFound if t has no column col, and with
// ErrNonNumeric if the column's values cannot be converted to
// float64.
func NumericColumn(t *table.Table, col string) ([]float64, error) {
	seq := t.Column(col)
	if seq == nil {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, col)
	}
	if !reflect.TypeOf(seq).Elem().ConvertibleTo(float64Type) {
		return nil, fmt.Errorf("%w: %q", ErrNonNumeric, col)
	}
	var xs []float64
	slice.Convert(&xs, seq)
	return xs, nil
}

// valid returns the non-NaN values of xs as a Sample.
func valid(xs []float64) stats.Sample {
	vs := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vs = append(vs, x)
		}
	}
	return stats.Sample{Xs: vs}
}

func mean(xs []float64) float64 {
	return valid(xs).Mean()
}

func stdDev(xs []float64) float64 {
	return valid(xs).StdDev()
}

// pearson returns the Pearson correlation coefficient of xs and ys,
// computed over the pairwise complete observations. It is NaN when
// either side has zero variance over those observations.
func pearson(xs, ys []float64) float64 {
	var sx, sy float64
	n := 0
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		sx += xs[i]
		sy += ys[i]
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	mx, my := sx/float64(n), sy/float64(n)

	var sxy, sxx, syy float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	return sxy / math.Sqrt(sxx*syy)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
