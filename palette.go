// Package ankh loads palette files: named colors written in any supported
// unit, evaluated in source order and classified by tone.
package ankh

import (
	"fmt"

	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/parser"
)

// Palette is a fully-resolved palette file, ready for conversion and
// template rendering.
type Palette struct {
	Meta   Meta
	Colors *color.Node
}

// Meta holds palette metadata.
type Meta struct {
	Name   string
	Author string
	// Tone is the tone the author expects the palette to have, or Custom.
	Tone    color.Tone
	HasTone bool
}

// Load parses a palette file and returns a fully-resolved Palette.
func Load(path string) (*Palette, error) {
	raw, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return fromResult(raw), nil
}

// LoadSource parses palette file contents. filename is used in errors.
func LoadSource(src []byte, filename string) (*Palette, error) {
	raw, err := parser.ParseSource(src, filename)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return fromResult(raw), nil
}

func fromResult(raw *parser.ParseResult) *Palette {
	return &Palette{
		Meta: Meta{
			Name:    raw.Meta.Name,
			Author:  raw.Meta.Author,
			Tone:    raw.Tone,
			HasTone: raw.HasTone,
		},
		Colors: raw.Palette,
	}
}

// Tone classifies every color of the palette as one batch.
func (p *Palette) Tone() color.Tone {
	return p.Colors.Tone()
}

// CheckTone returns an error when meta.tone names a tone the colors do not
// have. Palettes without an expectation always pass.
func (p *Palette) CheckTone() error {
	if !p.Meta.HasTone {
		return nil
	}
	if got := p.Tone(); got != p.Meta.Tone {
		return fmt.Errorf("palette tone is %s, meta.tone expects %s", got, p.Meta.Tone)
	}
	return nil
}

// Lookup resolves a dotted palette path such as "moss.light".
func (p *Palette) Lookup(path string) (color.Value, error) {
	return p.Colors.LookupPath(path)
}
