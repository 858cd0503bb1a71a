package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "already formatted stays same",
			input: `meta {
  name = "Test"
}
`,
			expected: `meta {
  name = "Test"
}
`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "indentation and alignment",
			input:    "palette {\nbase = \"#191724\"\nsurface = \"#1f1d2e\"\n}\n",
			expected: "palette {\n  base    = \"#191724\"\n  surface = \"#1f1d2e\"\n}\n",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "meta {\n  name = \"Test\"\n}\n\n\n\npalette {\n  base = \"#191724\"\n}\n",
			expected: "meta {\n  name = \"Test\"\n}\n\npalette {\n  base = \"#191724\"\n}\n",
		},
		{
			name:     "single blank line preserved",
			input:    "meta {\n  name = \"Test\"\n}\n\npalette {\n  base = \"#191724\"\n}\n",
			expected: "meta {\n  name = \"Test\"\n}\n\npalette {\n  base = \"#191724\"\n}\n",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  base = \"#191724\"\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  base = \"#191724\"\n\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "nested block blank lines removed",
			input:    "palette {\n\n  highlight {\n\n    low = \"#21202e\"\n\n  }\n\n}",
			expected: "palette {\n  highlight {\n    low = \"#21202e\"\n  }\n}",
		},
		{
			name:     "hex lowercased",
			input:    "palette {\n  base = \"#1A1B2C\"\n}",
			expected: "palette {\n  base = \"#1a1b2c\"\n}",
		},
		{
			name:     "component spacing normalized",
			input:    "palette {\n  rust = \"hsl(20,40,  50)\"\n  sky  = \"rgba( 1 ,2,3, 50%)\"\n}",
			expected: "palette {\n  rust = \"hsl(20, 40, 50)\"\n  sky  = \"rgba(1, 2, 3, 50%)\"\n}",
		},
		{
			name:     "function calls untouched",
			input:    "palette {\n  bark = darken(palette.rust, 0.1)\n}",
			expected: "palette {\n  bark = darken(palette.rust, 0.1)\n}",
		},
		{
			name:     "non-color strings untouched",
			input:    "meta {\n  name = \"#ABC Theme\"\n}",
			expected: "meta {\n  name = \"#ABC Theme\"\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	// hclwrite.Format should handle partial/invalid HCL gracefully
	input := `meta { name = "Test"`
	_, err := Format(input)
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
}
