// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtable loads CSV data into go-gg tables.
package csvtable

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
)

// Read parses CSV from r into a table. The first record names the
// columns. A column whose every value parses as a number is coerced
// to []int or []float64; everything else stays []string. The string
// "NaN" parses as a float64 missing value.
func Read(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV input")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// ReadFile reads the CSV file at path. The path "-" means stdin.
func ReadFile(path string) (*table.Table, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
