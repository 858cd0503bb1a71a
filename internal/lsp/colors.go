package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/ankh/internal/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// presentationUnits are offered for every literal, after the literal's own unit.
var presentationUnits = []color.Unit{color.Hex, color.RGB, color.HSL, color.Lab, color.LCh, color.XYZ}

// colorToLSP converts a color.Value in any unit to a protocol.Color (float32 0.0-1.0).
// Out-of-gamut channels are clamped.
func colorToLSP(v color.Value) protocol.Color {
	c := v.Convert(color.RGB).Components()
	rgb := colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Clamped()

	alpha := float32(1.0)
	if a, ok := v.Alpha(); ok {
		alpha = float32(a)
	}
	return protocol.Color{
		Red:   float32(rgb.R),
		Green: float32(rgb.G),
		Blue:  float32(rgb.B),
		Alpha: alpha,
	}
}

// colorFromLSP converts a picked protocol.Color back into a Value. Opaque
// colors become hex; translucent ones become rgba.
func colorFromLSP(c protocol.Color) (color.Value, error) {
	rgb := colorful.Color{R: float64(c.Red), G: float64(c.Green), B: float64(c.Blue)}.Clamped()
	if c.Alpha >= 1 {
		return color.ParseHex(rgb.Hex())
	}
	r, g, b := rgb.RGB255()
	alpha := color.Round(float64(c.Alpha)*100, 2)
	return color.ParseRGBA(fmt.Sprintf("rgba(%d, %d, %d, %g%%)", r, g, b, alpha))
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Value),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// Only quoted color literals are rewritten: the picked color is offered in the
// literal's own unit first and then in every other unit. Palette references and
// function calls get no presentations so they are never replaced by literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	picked, err := colorFromLSP(params.Color)
	if err != nil {
		return []protocol.ColorPresentation{}
	}

	units := presentationUnits
	if _, hasAlpha := picked.Alpha(); hasAlpha {
		units = []color.Unit{color.RGBA, color.Hex}
	} else if own, err := color.DetectUnit(strings.Trim(text, "\"")); err == nil && own != color.RGBA {
		units = append([]color.Unit{own}, withoutUnit(presentationUnits, own)...)
	}

	presentations := make([]protocol.ColorPresentation, 0, len(units))
	for _, u := range units {
		label := picked.Convert(u).Rounded(2).String()
		presentations = append(presentations, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + label + "\"",
			},
		})
	}
	return presentations
}

func withoutUnit(units []color.Unit, skip color.Unit) []color.Unit {
	out := make([]color.Unit, 0, len(units))
	for _, u := range units {
		if u != skip {
			out = append(out, u)
		}
	}
	return out
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
