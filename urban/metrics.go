// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urban

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/saurus-project/saurus/summary"
)

// WithMetrics returns t with derived planning metrics appended:
// population density, parks and schools per 10k residents, a 0-100
// min-max crime index, and a weighted livability score. t must have
// the numeric columns of Districts.
func WithMetrics(t *table.Table) (*table.Table, error) {
	cols := make(map[string][]float64)
	for _, col := range []string{
		"population", "area sq miles", "median income",
		"parks", "schools", "crime rate",
	} {
		xs, err := summary.NumericColumn(t, col)
		if err != nil {
			return nil, err
		}
		cols[col] = xs
	}

	n := t.Len()
	density := make([]float64, n)
	parks10k := make([]float64, n)
	schools10k := make([]float64, n)
	for i := 0; i < n; i++ {
		density[i] = cols["population"][i] / cols["area sq miles"][i]
		parks10k[i] = cols["parks"][i] / cols["population"][i] * 10000
		schools10k[i] = cols["schools"][i] / cols["population"][i] * 10000
	}

	crime := cols["crime rate"]
	crimeLo, crimeHi := stats.Sample{Xs: crime}.Bounds()
	crimeIndex := make([]float64, n)
	for i, c := range crime {
		crimeIndex[i] = 100 * (c - crimeLo) / (crimeHi - crimeLo)
	}

	// Livability weights income and safety at 30% each and
	// per-capita amenities at 20% each.
	_, incomeHi := stats.Sample{Xs: cols["median income"]}.Bounds()
	_, parksHi := stats.Sample{Xs: parks10k}.Bounds()
	_, schoolsHi := stats.Sample{Xs: schools10k}.Bounds()
	livability := make([]float64, n)
	for i := 0; i < n; i++ {
		livability[i] = cols["median income"][i]/incomeHi*30 +
			(crimeHi-crime[i])/crimeHi*30 +
			parks10k[i]/parksHi*20 +
			schools10k[i]/schoolsHi*20
	}

	return table.NewBuilder(t).
		Add("density", density).
		Add("parks per 10k", parks10k).
		Add("schools per 10k", schools10k).
		Add("crime index", crimeIndex).
		Add("livability", livability).
		Done(), nil
}

// ByIncomeBand groups districts into low, middle, and high income
// bands and reports the mean population and crime rate of each band.
func ByIncomeBand(t *table.Table) (table.Grouping, error) {
	income, err := summary.NumericColumn(t, "median income")
	if err != nil {
		return nil, err
	}
	bands := make([]string, len(income))
	for i, v := range income {
		switch {
		case v < 50000:
			bands[i] = "low"
		case v < 65000:
			bands[i] = "middle"
		default:
			bands[i] = "high"
		}
	}
	banded := table.NewBuilder(t).Add("income band", bands).Done()
	agg := ggstat.Agg("income band")(
		ggstat.AggMean("population"), ggstat.AggMean("crime rate"))
	return agg.F(banded), nil
}

// TopLivability returns the n districts with the highest livability
// scores, most livable first. t must have the district column and the
// livability column added by WithMetrics.
func TopLivability(t *table.Table, n int) (*table.Table, error) {
	scores, err := summary.NumericColumn(t, "livability")
	if err != nil {
		return nil, err
	}
	seq := t.Column("district")
	if seq == nil {
		return nil, fmt.Errorf("%w: %q", summary.ErrColumnNotFound, "district")
	}
	names := seq.([]string)

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if n > len(order) {
		n = len(order)
	}

	topNames := make([]string, n)
	topScores := make([]float64, n)
	for i, idx := range order[:n] {
		topNames[i] = names[idx]
		topScores[i] = scores[idx]
	}
	return new(table.Builder).
		Add("district", topNames).
		Add("livability", topScores).
		Done(), nil
}
