package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyEdits applies non-overlapping edits in order.
func applyEdits(content string, edits []protocol.TextEdit) string {
	for _, e := range edits {
		start := offsetOf(content, e.Range.Start)
		end := offsetOf(content, e.Range.End)
		content = content[:start] + e.NewText + content[end:]
	}
	return content
}

// offsetOf converts an LSP position into a byte offset in content.
func offsetOf(content string, pos protocol.Position) int {
	lines := splitLines(content)
	offset := 0
	for i := 0; i < int(pos.Line) && i < len(lines); i++ {
		offset += len(lines[i]) + 1
	}
	if int(pos.Line) < len(lines) {
		offset += min(int(pos.Character), len(lines[pos.Line]))
	}
	return min(offset, len(content))
}

func TestFormatEdits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `meta{name="Test"author="Author"}`,
			expected: `meta { name = "Test" author = "Author" }`,
		},
		{
			name:     "palette with nested blocks",
			input:    `palette{base="#191724"surface="#1f1d2e"highlight{low="#21202e"}}`,
			expected: `palette { base = "#191724" surface = "#1f1d2e" highlight { low = "#21202e" } }`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `meta   {   name   =   "Test"   }`,
			expected: `meta { name = "Test" }`,
		},
		{
			name: "color literals normalized",
			input: `palette {
  base = "#1A1B2C"
  sky  = "rgb(135,206,235)"
}
`,
			expected: `palette {
  base = "#1a1b2c"
  sky  = "rgb(135, 206, 235)"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, err := formatEdits(tt.input)
			if err != nil {
				t.Fatalf("formatEdits() error = %v", err)
			}
			if len(edits) != 1 {
				t.Fatalf("expected 1 edit, got %d", len(edits))
			}

			result := strings.TrimSuffix(applyEdits(tt.input, edits), "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")
			if result != expected {
				t.Errorf("formatted = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatEdits_AlreadyFormatted(t *testing.T) {
	input := `meta {
  name = "Test"
}
`
	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits for formatted content, got %+v", edits)
	}
}

func TestFormatEdits_RangeCoversDocument(t *testing.T) {
	input := "palette {\nbase=\"#000000\"\n}"
	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 2, Character: 1},
	}
	if edits[0].Range != want {
		t.Errorf("edit range = %+v, want %+v", edits[0].Range, want)
	}
}

func TestFormatEdits_InvalidHCL(t *testing.T) {
	// hclwrite.Format handles partial/invalid HCL gracefully
	if _, err := formatEdits(`meta { name = "Test"`); err != nil {
		t.Errorf("formatEdits() on incomplete HCL should not error, got: %v", err)
	}
}
