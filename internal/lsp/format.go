package lsp

import (
	"strings"

	"github.com/jsvensson/ankh/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits formats a whole document. It returns a single edit replacing
// the document, or no edits when the content is already formatted.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	lines := splitLines(content)
	last := len(lines) - 1
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
		},
		NewText: formatted,
	}}, nil
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	if strings.TrimSpace(content) == "" {
		return []protocol.TextEdit{}, nil
	}
	return formatEdits(content)
}
