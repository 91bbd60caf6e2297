// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pairstat prints the mean, sample standard deviation, and
// Pearson correlation of two numeric columns of a CSV file.
//
// The input must have a header row naming its columns. With no
// argument, or with the argument "-", pairstat reads from stdin.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/saurus-project/saurus/internal/csvtable"
	"github.com/saurus-project/saurus/summary"
)

func main() {
	log.SetPrefix("pairstat: ")
	log.SetFlags(0)

	var (
		flagX   = flag.String("x", "x", "summarize `column` in the first row")
		flagY   = flag.String("y", "y", "summarize `column` in the second row")
		flagOut = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	tab, err := csvtable.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	sum, err := summary.Stats(tab, *flagX, *flagY)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		if f, err = os.Create(*flagOut); err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	table.Fprint(f, sum, "%s", "%.1f", "%.1f", "%.1f")
}
