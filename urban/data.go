// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package urban carries a sample city-planning dataset and the
// derived metrics computed from it. It exists so the commands and
// plots have realistic tabular data to work on without talking to any
// external data service.
package urban

import "github.com/aclements/go-gg/table"

// Districts returns the sample dataset: one row per city district
// with its population, land area, median income, public amenities,
// and crime rate.
func Districts() *table.Table {
	return new(table.Builder).
		Add("district", []string{
			"Downtown", "North Side", "South Side", "East Side", "West Side",
			"Riverside", "Hillside", "Industrial", "Suburban", "Commercial",
		}).
		Add("population", []float64{
			25000, 18500, 22000, 15000, 19000,
			12000, 8500, 3000, 28000, 5000,
		}).
		Add("area sq miles", []float64{
			2.5, 4.2, 3.8, 5.1, 3.5,
			2.8, 6.2, 8.5, 12.0, 1.5,
		}).
		Add("median income", []float64{
			65000, 52000, 48000, 45000, 58000,
			70000, 55000, 42000, 72000, 85000,
		}).
		Add("parks", []float64{
			5, 8, 6, 4, 7,
			10, 15, 2, 20, 1,
		}).
		Add("schools", []float64{
			3, 5, 4, 3, 4,
			2, 3, 1, 8, 0,
		}).
		Add("crime rate", []float64{
			3.2, 2.8, 4.1, 3.5, 2.5,
			1.8, 1.2, 2.0, 1.5, 2.3,
		}).
		Done()
}
