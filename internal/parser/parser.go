package parser

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/palette"
)

// ParseResult holds the parsed palette file.
type ParseResult struct {
	Meta    Meta
	Palette *color.Node
	// Tone is the expected tone named by meta.tone, or color.Custom when absent.
	Tone    color.Tone
	HasTone bool
}

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
	Tone   string `hcl:"tone,optional"`
}

// PaletteBlock wraps a single palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig captures the palette block first (no EvalContext needed).
type RawConfig struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ResolvedConfig decodes blocks that may reference palette.
type ResolvedConfig struct {
	Meta   *Meta    `hcl:"meta,block"`
	Remain hcl.Body `hcl:",remain"`
}

// Loader handles two-pass HCL decoding with palette resolution.
type Loader struct {
	body    hcl.Body
	ctx     *hcl.EvalContext
	palette *color.Node
}

// NewLoader parses HCL source and evaluates its palette block.
func NewLoader(src []byte, filename string) (*Loader, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: extract the palette block.
	var raw RawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}
	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	body, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	root := &color.Node{Children: make(map[string]*color.Node)}
	var evalErr error
	palette.EvalBody(body, root, func(e palette.Entry) bool {
		if e.Err != nil {
			evalErr = fmt.Errorf("%s: %w", e.Path, e.Err)
			return false
		}
		return true
	})
	if evalErr != nil {
		return nil, fmt.Errorf("parsing palette: %w", evalErr)
	}

	scale, err := palette.FindScale(body)
	if err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	if scale != nil {
		root.ApplyScale(scale.Count, scale.Step)
	}

	return &Loader{
		body:    file.Body,
		ctx:     palette.BuildEvalContext(root),
		palette: root,
	}, nil
}

// Decode decodes a value using the palette context.
func (l *Loader) Decode(target any) error {
	if diags := gohcl.DecodeBody(l.body, l.ctx, target); diags.HasErrors() {
		return fmt.Errorf("decoding: %s", diags.Error())
	}
	return nil
}

// Palette returns the evaluated palette tree.
func (l *Loader) Palette() *color.Node {
	return l.palette
}

// Context returns the EvalContext holding the palette variable and functions.
func (l *Loader) Context() *hcl.EvalContext {
	return l.ctx
}

// Parse reads and parses a palette file.
func Parse(path string) (*ParseResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseSource(src, path)
}

// ParseSource parses palette file contents. filename is used in diagnostics.
func ParseSource(src []byte, filename string) (*ParseResult, error) {
	loader, err := NewLoader(src, filename)
	if err != nil {
		return nil, err
	}

	// Second pass: decode meta, which may reference palette.
	var resolved ResolvedConfig
	if err := loader.Decode(&resolved); err != nil {
		return nil, err
	}

	result := &ParseResult{
		Palette: loader.Palette(),
		Tone:    color.Custom,
	}
	if resolved.Meta != nil {
		result.Meta = *resolved.Meta
	}
	if result.Meta.Tone != "" {
		tone, err := color.ParseTone(result.Meta.Tone)
		if err != nil {
			return nil, fmt.Errorf("meta.tone: %w", err)
		}
		result.Tone, result.HasTone = tone, true
	}
	return result, nil
}
