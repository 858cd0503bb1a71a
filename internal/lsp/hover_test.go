package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/ankh/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func hoverText(t *testing.T, h *protocol.Hover) string {
	t.Helper()
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}
	return mc.Value
}

func TestHover_PaletteReference(t *testing.T) {
	content := `palette {
  base    = "#191724"
  surface = palette.base
}
`
	result := Analyze("test.ankh", content)

	var refLoc *ColorLocation
	for i, cl := range result.Colors {
		if cl.IsRef {
			refLoc = &result.Colors[i]
			break
		}
	}
	if refLoc == nil {
		t.Fatal("expected to find a palette reference ColorLocation")
	}

	pos := protocol.Position{
		Line:      refLoc.Range.Start.Line,
		Character: refLoc.Range.Start.Character + 2, // somewhere inside "palette.base"
	}

	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover result for palette reference")
	}

	md := hoverText(t, h)
	for _, want := range []string{"**palette.base**", "#191724", "rgb(25, 23, 36)"} {
		if !strings.Contains(md, want) {
			t.Errorf("hover content should contain %q, got:\n%s", want, md)
		}
	}
}

func TestHover_Literal(t *testing.T) {
	content := `palette {
  red = "hsl(0, 100, 50)"
}
`
	result := Analyze("test.ankh", content)
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color location, got %d", len(result.Colors))
	}

	pos := protocol.Position{Line: 1, Character: 10}
	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected hover for literal")
	}

	md := hoverText(t, h)
	if strings.Contains(md, "**") {
		t.Errorf("literal hover should not have bold header, got:\n%s", md)
	}
	for _, want := range []string{"#ff0000", "rgb(255, 0, 0)", "- hsl: `hsl(0, 100, 50)`", "- lab: `lab(", "- lch: `lch(", "- xyz: `xyz(", "Tone: "} {
		if !strings.Contains(md, want) {
			t.Errorf("hover content should contain %q, got:\n%s", want, md)
		}
	}
}

func TestHoverMarkdown_Tone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#808080", "Tone: Shades"},
		{"hsl(30, 38, 50)", "Tone: Earth"},
		{"hsl(200, 90, 90)", "Tone: Fluorescent"},
		{"hsl(0, 50, 50)", "Tone: Custom"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := color.ParseString(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			md := hoverMarkdown(v)
			if !strings.HasSuffix(md, tt.want) {
				t.Errorf("hoverMarkdown(%q) should end with %q, got:\n%s", tt.input, tt.want, md)
			}
		})
	}
}

func TestHover_NoColor(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.ankh", content)

	// Position on "palette {" keyword, which is not a color location
	h := hover(result, content, protocol.Position{Line: 0, Character: 0})
	if h != nil {
		t.Errorf("expected nil hover for non-color position, got: %+v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 5, Character: 10},
		End:   protocol.Position{Line: 5, Character: 22},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"before range", protocol.Position{Line: 5, Character: 9}, false},
		{"at start", protocol.Position{Line: 5, Character: 10}, true},
		{"in middle", protocol.Position{Line: 5, Character: 15}, true},
		{"at end (exclusive)", protocol.Position{Line: 5, Character: 22}, false},
		{"after range", protocol.Position{Line: 5, Character: 23}, false},
		{"line before", protocol.Position{Line: 4, Character: 15}, false},
		{"line after", protocol.Position{Line: 6, Character: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := posInRange(tt.pos, r)
			if got != tt.want {
				t.Errorf("posInRange(%v, %v) = %v, want %v", tt.pos, r, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "line 0\n  rust = \"#b7410e\"\nline 2"
	tests := []struct {
		name string
		rng  protocol.Range
		want string
	}{
		{"single line", protocol.Range{
			Start: protocol.Position{Line: 1, Character: 9},
			End:   protocol.Position{Line: 1, Character: 18},
		}, `"#b7410e"`},
		{"multi line", protocol.Range{
			Start: protocol.Position{Line: 0, Character: 5},
			End:   protocol.Position{Line: 2, Character: 4},
		}, "0\n  rust = \"#b7410e\"\nline"},
		{"past end", protocol.Range{
			Start: protocol.Position{Line: 9, Character: 0},
			End:   protocol.Position{Line: 9, Character: 3},
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.rng); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHover_FunctionDirect(t *testing.T) {
	c, _ := color.ParseHex("#ff0000")
	result := &AnalysisResult{
		Colors: []ColorLocation{
			{
				Range: protocol.Range{
					Start: protocol.Position{Line: 2, Character: 5},
					End:   protocol.Position{Line: 2, Character: 16},
				},
				Value: c,
				IsRef: true,
			},
		},
	}

	content := "line 0\nline 1\n     palette.red is here\nline 3\n"

	h := hover(result, content, protocol.Position{Line: 2, Character: 10})
	if h == nil {
		t.Fatal("expected hover result")
	}
	md := hoverText(t, h)
	for _, want := range []string{"**palette.red**", "#ff0000", "rgb(255, 0, 0)"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in hover, got:\n%s", want, md)
		}
	}

	if h := hover(result, content, protocol.Position{Line: 0, Character: 0}); h != nil {
		t.Error("expected nil hover for position outside color range")
	}
}
