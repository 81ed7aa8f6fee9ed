package palette

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/splines/vspace"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Load reads palette definitions in YAML format from r.
//
// The document holds a list "palettes", each entry with a name and a list of
// stops. A stop has a position "at" and a color in "#rrggbb" notation.
// Positions may be given as numbers or as numeric strings.
func Load(r io.Reader) ([]*Palette, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPalette)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	entries, err := cast.ToSliceE(doc["palettes"])
	if err != nil || len(entries) == 0 {
		return nil, fmt.Errorf("%w: no palettes found", ErrInvalidPalette)
	}
	palettes := make([]*Palette, 0, len(entries))
	for i, entry := range entries {
		p, err := decodePalette(entry)
		if err != nil {
			return nil, fmt.Errorf("palette #%d: %w", i+1, err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// LoadFile reads palette definitions from a YAML file.
func LoadFile(name string) ([]*Palette, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Find returns the palette called name, or nil.
func Find(palettes []*Palette, name string) *Palette {
	for _, p := range palettes {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func decodePalette(entry interface{}) (*Palette, error) {
	m, err := cast.ToStringMapE(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	name := cast.ToString(m["name"])
	rawStops, err := cast.ToSliceE(m["stops"])
	if err != nil {
		return nil, fmt.Errorf("%w: palette %q: stops must be a list", ErrInvalidPalette, name)
	}
	stops := make([]Stop, 0, len(rawStops))
	for _, raw := range rawStops {
		sm, err := cast.ToStringMapE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: palette %q: %v", ErrInvalidPalette, name, err)
		}
		if sm["at"] == nil {
			return nil, fmt.Errorf("%w: palette %q: stop without position", ErrInvalidPalette, name)
		}
		at, err := cast.ToFloat64E(sm["at"])
		if err != nil {
			return nil, fmt.Errorf("%w: palette %q: stop position: %v", ErrInvalidPalette, name, err)
		}
		lab, err := vspace.LabFromHex(cast.ToString(sm["color"]))
		if err != nil {
			return nil, fmt.Errorf("%w: palette %q: %v", ErrInvalidPalette, name, err)
		}
		stops = append(stops, Stop{At: at, Color: lab})
	}
	return New(name, stops...)
}
