/*
Splinegrad shows color gradients computed with natural cubic splines.

Usage:

	splinegrad [flags] [palette ...]

Without palette names all palettes are shown. Palettes are read from the
file given with -palettes; by default a set of built-in palettes is used.
Gradients are printed as true-color bars sized to the terminal, or as an
HTML fragment with -html.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splines/palette"
)

//go:embed palettes.yaml
var builtinPalettes string

func main() {
	paletteFile := flag.String("palettes", "", "YAML file with palette definitions (default: built-in palettes)")
	width := flag.Int("width", 0, "number of color cells (default: terminal width)")
	asHTML := flag.Bool("html", false, "write an HTML fragment instead of terminal output")
	list := flag.Bool("list", false, "list palette names and stops, then exit")
	noColor := flag.Bool("no-color", false, "disable color output")
	trace := flag.Bool("trace", false, "trace to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: splinegrad [flags] [palette ...]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *trace {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if *noColor {
		color.NoColor = true
	}
	palettes, err := loadPalettes(*paletteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splinegrad: %v\n", err)
		os.Exit(1)
	}
	selected, err := selectPalettes(palettes, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "splinegrad: %v\n", err)
		os.Exit(1)
	}
	switch {
	case *list:
		err = listPalettes(os.Stdout, selected)
	case *asHTML:
		if *width <= 0 {
			*width = 256
		}
		err = writeHTML(os.Stdout, selected, *width)
	default:
		if *width <= 0 {
			*width = terminalWidth()
		}
		err = printBars(os.Stdout, selected, *width)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "splinegrad: %v\n", err)
		os.Exit(1)
	}
}

func loadPalettes(name string) ([]*palette.Palette, error) {
	if name == "" {
		return palette.Load(strings.NewReader(builtinPalettes))
	}
	return palette.LoadFile(name)
}

func selectPalettes(palettes []*palette.Palette, names []string) ([]*palette.Palette, error) {
	if len(names) == 0 {
		return palettes, nil
	}
	selected := make([]*palette.Palette, 0, len(names))
	for _, name := range names {
		p := palette.Find(palettes, name)
		if p == nil {
			return nil, fmt.Errorf("no palette named %q", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}
