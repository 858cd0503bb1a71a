package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// hexLiteral matches a quoted hex color; functionalLiteral a quoted
// unit(...) color.
var hexLiteral = regexp.MustCompile(`"#[0-9A-Fa-f]{3,8}"`)
var functionalLiteral = regexp.MustCompile(`"(rgba|rgb|hsl|lab|lch|xyz)\(([^"()]*)\)"`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. It uses hclwrite.Format which handles
// indentation, spacing, and newline normalization. Color literals are
// normalized too: hex digits are lowercased and unit(...) components are
// separated by ", ".
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) (string, error) {
	normalized := normalizeColors(content)
	formatted := hclwrite.Format([]byte(normalized))
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

func normalizeColors(content string) string {
	content = hexLiteral.ReplaceAllStringFunc(content, strings.ToLower)
	return functionalLiteral.ReplaceAllStringFunc(content, func(lit string) string {
		m := functionalLiteral.FindStringSubmatch(lit)
		parts := strings.Split(m[2], ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return `"` + m[1] + "(" + strings.Join(parts, ", ") + `)"`
	})
}
