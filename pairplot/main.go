// Copyright 2025 The Saurus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pairplot renders four CSV files as a 2x2 grid of
// scatterplots.
//
// Each input file becomes one panel, plotted using the -x and -y
// columns. Output is SVG by default, or PNG with -png. A panel whose
// input lacks the plotted columns is rendered empty rather than
// failing the grid.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/saurus-project/saurus/internal/csvtable"
	"github.com/saurus-project/saurus/raster"
	"github.com/saurus-project/saurus/scatter"
)

func main() {
	log.SetPrefix("pairplot: ")
	log.SetFlags(0)

	var (
		flagX     = flag.String("x", "x", "plot `column` on the X axis")
		flagY     = flag.String("y", "y", "plot `column` on the Y axis")
		flagW     = flag.Int("w", 1000, "output `width` in pixels")
		flagH     = flag.Int("h", 1000, "output `height` in pixels")
		flagPNG   = flag.Bool("png", false, "encode PNG instead of SVG")
		flagTitle = flag.String("title", "", "draw `title` above the grid")
		flagOut   = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] a.csv b.csv c.csv d.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(2)
	}

	tabs := make([]*table.Table, 0, 4)
	for _, path := range flag.Args() {
		tab, err := csvtable.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		tabs = append(tabs, tab)
	}

	cfg := scatter.Config{
		XCol:  *flagX,
		YCol:  *flagY,
		Width: *flagW, Height: *flagH,
		Title: *flagTitle,
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		if f, err = os.Create(*flagOut); err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	var err error
	if *flagPNG {
		err = raster.Grid(f, tabs, cfg)
	} else {
		err = scatter.Grid(f, tabs, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}
