// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command urbanstats prints the sample district dataset with its
// derived planning metrics, the distribution of a few key columns,
// and mean statistics per income band.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/saurus-project/saurus/urban"
)

func main() {
	log.SetPrefix("urbanstats: ")
	log.SetFlags(0)

	flagOut := flag.String("o", "", "write output to `file` (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		if f, err = os.Create(*flagOut); err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	tab, err := urban.WithMetrics(urban.Districts())
	if err != nil {
		log.Fatal(err)
	}
	table.Fprint(f, tab)

	fmt.Fprintln(f)
	for _, col := range []string{"population", "density", "median income"} {
		d, err := urban.Describe(tab, col)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(f, d)
	}

	fmt.Fprintln(f)
	bands, err := urban.ByIncomeBand(tab)
	if err != nil {
		log.Fatal(err)
	}
	table.Fprint(f, bands)

	fmt.Fprintln(f)
	top, err := urban.TopLivability(tab, 5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(f, "Most livable districts:")
	table.Fprint(f, top, "%s", "%.1f")
}
