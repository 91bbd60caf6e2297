// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urban

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/saurus-project/saurus/summary"
)

// A Distribution summarizes the distribution of one numeric column.
type Distribution struct {
	Col                      string
	N                        int
	Mean, Std                float64
	Min, Q1, Median, Q3, Max float64
}

// Describe summarizes the distribution of column col of t, ignoring
// NaN values.
func Describe(t *table.Table, col string) (*Distribution, error) {
	xs, err := summary.NumericColumn(t, col)
	if err != nil {
		return nil, err
	}
	var s stats.Sample
	for _, x := range xs {
		if !math.IsNaN(x) {
			s.Xs = append(s.Xs, x)
		}
	}
	s.Sort()
	return &Distribution{
		Col:    col,
		N:      len(s.Xs),
		Mean:   s.Mean(),
		Std:    s.StdDev(),
		Min:    s.Quantile(0),
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    s.Quantile(1),
	}, nil
}

func (d *Distribution) String() string {
	return fmt.Sprintf(
		"%s: N %d  mean %.6g  std dev %.6g\n  min %.6g  25%%ile %.6g  median %.6g  75%%ile %.6g  max %.6g",
		d.Col, d.N, d.Mean, d.Std, d.Min, d.Q1, d.Median, d.Q3, d.Max)
}
