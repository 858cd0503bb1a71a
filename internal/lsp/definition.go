package lsp

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// referenceAt returns the palette reference under col, cut after the segment
// the cursor is on: on "moss" in "palette.moss.light" it returns
// "palette.moss". The bare namespace only counts when a dot follows it.
func referenceAt(line string, col int) string {
	if col < 0 || col >= len(line) || !isRefChar(rune(line[col])) {
		return ""
	}
	start := strings.LastIndexFunc(line[:col], notRefChar) + 1
	end := len(line)
	if i := strings.IndexFunc(line[col:], notRefChar); i >= 0 {
		end = col + i
	}
	word := line[start:end]

	ref := word
	if dot := strings.IndexByte(word[col-start:], '.'); dot >= 0 {
		ref = word[:col-start+dot]
	}
	ns, _, hasPath := strings.Cut(ref, ".")
	if !BlockTypes[ns] {
		return ""
	}
	if !hasPath && ref == word {
		return ""
	}
	return ref
}

func isRefChar(c rune) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func notRefChar(c rune) bool { return !isRefChar(c) }

// recordShadeSymbols points every scale shade, e.g. "palette.rust.s2", at
// the scale block that generates it. colored lists the entries that existed
// before the scale was applied.
func (r *AnalysisResult) recordShadeSymbols(colored []color.Entry, count int, block *hclsyntax.Block) {
	rng := hclRangeToLSP(block.DefRange())
	for _, e := range colored {
		for i := 1; i <= count; i++ {
			r.Symbols[fmt.Sprintf("palette.%s.s%d", e.Path, i)] = rng
		}
	}
}

// definition resolves the palette reference at pos to where it is defined:
// the attribute for a color, the block header for a group and the scale
// block for a shade.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	ref := referenceAt(lines[pos.Line], int(pos.Character))
	rng, ok := result.Symbols[ref]
	if ref == "" || !ok {
		return nil
	}
	return &protocol.Location{URI: protocol.DocumentUri(uri), Range: rng}
}

func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return definition(s.getResult(uri), content, uri, params.Position), nil
}
