package lsp

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot    blockContext = iota
	contextMeta                 // inside meta {}
	contextPalette              // inside palette {} or one of its groups
	contextScale                // inside palette { scale {} }
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"meta", "palette"}

// scaleAttributes are the attributes of a palette scale block.
var scaleAttributes = []string{"count", "step"}

var (
	toneValueRe   = regexp.MustCompile(`^\s*tone\s*=\s*"?[a-z]*$`)
	palettePathRe = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)
	convertUnitRe = regexp.MustCompile(`convert\([^,()]*(?:\([^()]*\))?[^,()]*,\s*"[a-z]*$`)
)

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if paletteItems := tryPaletteCompletion(result, textBeforeCursor); paletteItems != nil {
		return paletteItems
	}

	if convertUnitRe.MatchString(textBeforeCursor) {
		return unitCompletions()
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	if ctx == contextMeta && toneValueRe.MatchString(textBeforeCursor) {
		return toneCompletions(strings.Contains(textBeforeCursor, "\""))
	}

	if isValuePosition(textBeforeCursor) {
		if ctx == contextPalette {
			return valueCompletions()
		}
		return nil
	}

	switch ctx {
	case contextMeta:
		return attributeCompletions(metaAttributes, lines, int(pos.Line))
	case contextScale:
		return attributeCompletions(scaleAttributes, lines, int(pos.Line))
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a palette
// path prefix (e.g., "palette." or "palette.moss.") and returns completion
// items for the children at that node in the palette tree.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}

	pathStr := textBeforeCursor[idx+len("palette."):]
	if !palettePathRe.MatchString(pathStr) {
		return nil
	}

	// - "palette."          -> children of root
	// - "palette.moss."     -> children of "moss"
	// - "palette.mo"        -> children of root (client filters partial match)
	// - "palette.moss.li"   -> children of "moss" (client filters "li")
	var segments []string
	if before, ok := strings.CutSuffix(pathStr, "."); ok && before != "" {
		segments = strings.Split(before, ".")
	} else if strings.Contains(pathStr, ".") {
		parts := strings.Split(pathStr, ".")
		segments = parts[:len(parts)-1]
	}

	node := result.Palette
	for _, seg := range segments {
		if node.Children == nil {
			return []protocol.CompletionItem{}
		}
		child, ok := node.Children[seg]
		if !ok {
			return []protocol.CompletionItem{}
		}
		node = child
	}

	if node.Children == nil {
		return []protocol.CompletionItem{}
	}

	return nodeChildrenToCompletionItems(node)
}

// nodeChildrenToCompletionItems converts a node's children into completion
// items, sorted by name.
func nodeChildrenToCompletionItems(node *color.Node) []protocol.CompletionItem {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		child := node.Children[name]
		item := protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}

		if child.Color != nil {
			item.Detail = strPtr(child.Color.String())
		} else {
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			item.Detail = strPtr("color group")
		}

		items = append(items, item)
	}

	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a palette value position:
// one snippet per palette function plus a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	snippets := []struct {
		name    string
		detail  string
		snippet string
	}{
		{"brighten", "brighten(color, percentage)", "brighten(${1:color}, ${2:0.1})"},
		{"convert", "convert(color, unit)", "convert(${1:color}, \"${2:hex}\")"},
		{"darken", "darken(color, percentage)", "darken(${1:color}, ${2:0.1})"},
	}

	items := make([]protocol.CompletionItem, 0, len(snippets)+1)
	for _, s := range snippets {
		if _, ok := palette.Functions()[s.name]; !ok {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            s.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(s.detail),
			InsertText:       strPtr(s.snippet),
			InsertTextFormat: &snippetFormat,
		})
	}

	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: strPtr("palette."),
	})
	return items
}

// unitCompletions offers unit names for the second argument of convert.
func unitCompletions() []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(color.Units))
	for _, u := range color.Units {
		items = append(items, protocol.CompletionItem{
			Label: u.String(),
			Kind:  completionKindPtr(protocol.CompletionItemKindEnumMember),
		})
	}
	return items
}

// toneCompletions offers tone names for meta.tone. Names are quoted unless the
// opening quote is already typed.
func toneCompletions(quoted bool) []protocol.CompletionItem {
	tones := append(append([]color.Tone{}, color.NamedTones...), color.Custom)
	items := make([]protocol.CompletionItem, 0, len(tones))
	for _, t := range tones {
		insert := t.String()
		if !quoted {
			insert = "\"" + insert + "\""
		}
		item := protocol.CompletionItem{
			Label:      t.String(),
			Kind:       completionKindPtr(protocol.CompletionItemKindEnumMember),
			InsertText: strPtr(insert),
		}
		if r, ok := t.Range(); ok {
			item.Detail = strPtr(formatToneRange(r))
		}
		items = append(items, item)
	}
	return items
}

func formatToneRange(r color.ToneRange) string {
	return fmt.Sprintf("saturation %g-%g, lightness %g-%g",
		r.Saturation.Min, r.Saturation.Max, r.Lightness.Min, r.Lightness.Max)
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			if parts := strings.Fields(line); len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[0] {
	case "meta":
		return contextMeta
	case "palette":
		if len(stack) == 2 && stack[1] == palette.ScaleBlock {
			return contextScale
		}
		return contextPalette
	default:
		return contextRoot
	}
}

// attributeCompletions returns the given attribute names, excluding those
// already defined in the block surrounding the cursor.
func attributeCompletions(names []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to the matching closing brace) and returns attribute names
// already defined (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	depth = 0
	for i := startLine; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if i > startLine && depth == 1 {
			if eqIdx := strings.Index(line, "="); eqIdx > 0 {
				name := strings.TrimSpace(line[:eqIdx])
				if !strings.ContainsAny(name, " {") {
					defined[name] = true
				}
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 && i > startLine {
			break
		}
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       strPtr(name + " {\n  $0\n}"),
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	return complete(result, content, params.Position), nil
}
