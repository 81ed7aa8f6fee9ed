package palette

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes an HTML fragment showing the palette as a strip of
// width color cells.
//
// The fragment is a <div> with one <span> per cell; each span carries its
// color as background and as data attribute.
func RenderHTML(w io.Writer, p *Palette, width int) error {
	if p == nil || width <= 0 {
		return fmt.Errorf("%w: nothing to render", ErrInvalidPalette)
	}
	div := element(atom.Div,
		html.Attribute{Key: "class", Val: "palette"},
		html.Attribute{Key: "title", Val: p.Name},
		html.Attribute{Key: "style", Val: "display:flex;height:2em"},
	)
	for _, c := range p.Colors(width) {
		hex := c.Hex()
		div.AppendChild(element(atom.Span,
			html.Attribute{Key: "data-color", Val: hex},
			html.Attribute{Key: "style", Val: "flex:1;background:" + hex},
		))
	}
	return html.Render(w, div)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// ColorsFromHTML extracts the cell colors from a fragment written by
// RenderHTML, in document order.
func ColorsFromHTML(r io.Reader) ([]colorful.Color, error) {
	nodes, err := html.ParseFragment(r, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, err
	}
	var colors []colorful.Color
	for _, n := range nodes {
		if err := collectColors(n, &colors); err != nil {
			return nil, err
		}
	}
	return colors, nil
}

func collectColors(n *html.Node, colors *[]colorful.Color) error {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key != "data-color" {
				continue
			}
			c, err := colorful.Hex(strings.TrimSpace(a.Val))
			if err != nil {
				return err
			}
			*colors = append(*colors, c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectColors(c, colors); err != nil {
			return err
		}
	}
	return nil
}
