// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chacoplot draws a demonstration contour plot as SVG or PNG.
//
// The plot shows the contours of a two-peaked field, a line through
// the field, and axes and grid lines for both dimensions. It exercises
// data ranges, mappers, tick generation and contour tracing end to
// end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	log.SetPrefix("chacoplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagWidth  = flag.Int("w", 640, "plot width in `pixels`")
		flagHeight = flag.Int("h", 480, "plot height in `pixels`")
		flagLog    = flag.Bool("log", false, "use a logarithmic x axis")
		flagLevels = flag.Int("levels", 8, "draw `n` contour levels")
		flagFilled = flag.Bool("filled", false, "fill the regions between contour levels")
		flagFormat = flag.String("format", "", "output `format`, svg or png (default: from -o, else svg)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagWidth < 2*margin || *flagHeight < 2*margin {
		log.Fatalf("plot must be at least %d×%d pixels", 2*margin, 2*margin)
	}

	format := *flagFormat
	if format == "" {
		format = "svg"
		if strings.EqualFold(filepath.Ext(*flagOut), ".png") {
			format = "png"
		}
	}

	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}

	err := writePlot(f, options{
		width:  *flagWidth,
		height: *flagHeight,
		logX:   *flagLog,
		levels: *flagLevels,
		filled: *flagFilled,
		format: format,
	})
	if err != nil {
		log.Fatal(err)
	}
	if *flagOut != "" {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
