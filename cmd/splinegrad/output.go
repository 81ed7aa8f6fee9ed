package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/splines/palette"
	"golang.org/x/term"
)

// terminalWidth checks whether stdout is a terminal, and if so returns a bar
// width fitting into it.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 64
	}
	w, _, err := term.GetSize(fd)
	switch {
	case err != nil:
		return 64
	case w > 30:
		return w - 12
	case w > 10:
		return w
	}
	return 10
}

func printBars(w io.Writer, palettes []*palette.Palette, width int) error {
	label := color.New(color.Bold)
	for _, p := range palettes {
		if _, err := label.Fprintf(w, "%-10s ", p.Name); err != nil {
			return err
		}
		if err := printBar(w, p, width); err != nil {
			return err
		}
	}
	return nil
}

// printBar prints one line of width colored cells.
func printBar(w io.Writer, p *palette.Palette, width int) error {
	for _, c := range p.Colors(width) {
		r, g, b := c.RGB255()
		cell := color.BgRGB(int(r), int(g), int(b))
		if _, err := cell.Fprint(w, " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func listPalettes(w io.Writer, palettes []*palette.Palette) error {
	for _, p := range palettes {
		if _, err := fmt.Fprintf(w, "%s:", p.Name); err != nil {
			return err
		}
		for _, stop := range p.Stops() {
			if _, err := fmt.Fprintf(w, " %.4g=%s", stop.At, stop.Color.Hex()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeHTML(w io.Writer, palettes []*palette.Palette, width int) error {
	for _, p := range palettes {
		if err := palette.RenderHTML(w, p, width); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
