package lsp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/jsvensson/ankh/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

const diagSource = "ankh"

// BlockTypes are the top-level blocks of a palette file. Only palette can be
// referenced from expressions.
var BlockTypes = map[string]bool{
	"meta":    false,
	"palette": true,
}

// metaAttributes are the attributes accepted inside meta.
var metaAttributes = []string{"name", "author", "tone"}

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *color.Node
	Symbols     map[string]protocol.Range // "palette.rust", "palette.moss.light" -> definition range
	Colors      []ColorLocation
	// Tone is the tone of all palette colors; ExpectedTone is meta.tone when set.
	Tone         color.Tone
	ExpectedTone *color.Tone
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Path  string
	Value color.Value
	IsRef bool // true if this is a palette reference (not a literal)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses HCL content from memory and produces diagnostics, a symbol table,
// and color locations. It collects ALL errors rather than short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
		Tone:    color.Custom,
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Diagnostics stop here, but the recovered body still yields a
		// palette for completion.
		if file != nil {
			if body, ok := file.Body.(*hclsyntax.Body); ok {
				result.Palette = partialPalette(body)
			}
		}
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBlock, metaBlock *hclsyntax.Block
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBlock = block
		case "meta":
			metaBlock = block
		default:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q (valid: meta, palette)", block.Type))
		}
	}
	for name, attr := range body.Attributes {
		result.addError(attr.SrcRange, fmt.Sprintf("unexpected attribute %q outside a block", name))
	}

	if paletteBlock == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	paletteOK := result.analyzePalette(paletteBlock.Body)

	if metaBlock != nil {
		result.analyzeMeta(metaBlock.Body, paletteOK)
	}

	return result
}

// analyzePalette evaluates the palette body in source order, recording every
// failure. It reports whether all entries evaluated.
func (r *AnalysisResult) analyzePalette(body *hclsyntax.Body) bool {
	root := &color.Node{Children: make(map[string]*color.Node)}
	r.recordGroupSymbols(body, "palette")

	ok := true
	palette.EvalBody(body, root, func(e palette.Entry) bool {
		if !e.GroupColor {
			r.Symbols[e.Path] = hclRangeToLSP(e.Attr.SrcRange)
		}
		if e.Err != nil {
			ok = false
			r.addError(e.Attr.SrcRange, fmt.Sprintf("%s: %s", e.Path, e.Err.Error()))
			return true
		}
		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(e.Attr.Expr.Range()),
			Path:  e.Path,
			Value: e.Value,
			IsRef: isReferenceExpr(e.Attr.Expr),
		})
		return true
	})

	scale, err := palette.FindScale(body)
	if err != nil {
		ok = false
		r.addError(scaleBlock(body).DefRange(), err.Error())
	} else if scale != nil {
		colored := root.Entries()
		root.ApplyScale(scale.Count, scale.Step)
		r.recordShadeSymbols(colored, scale.Count, scaleBlock(body))
	}

	r.Palette = root
	r.Tone = root.Tone()
	return ok
}

// scaleBlock returns the scale block of a palette body, or nil.
func scaleBlock(body *hclsyntax.Body) *hclsyntax.Block {
	for _, block := range body.Blocks {
		if block.Type == palette.ScaleBlock {
			return block
		}
	}
	return nil
}

// partialPalette evaluates whatever palette entries survive a syntax error,
// ignoring failures.
func partialPalette(body *hclsyntax.Body) *color.Node {
	for _, block := range body.Blocks {
		if block.Type != "palette" {
			continue
		}
		root := &color.Node{Children: make(map[string]*color.Node)}
		palette.EvalBody(block.Body, root, func(palette.Entry) bool { return true })
		return root
	}
	return nil
}

// recordGroupSymbols adds a symbol for every nested block so references to
// a group resolve to its header.
func (r *AnalysisResult) recordGroupSymbols(body *hclsyntax.Body, prefix string) {
	for _, block := range body.Blocks {
		if prefix == "palette" && block.Type == palette.ScaleBlock {
			continue
		}
		path := prefix + "." + block.Type
		r.Symbols[path] = hclRangeToLSP(block.DefRange())
		r.recordGroupSymbols(block.Body, path)
	}
}

// analyzeMeta validates meta attributes. A tone expectation that disagrees
// with the palette becomes a warning; it is only checked when the palette
// evaluated cleanly.
func (r *AnalysisResult) analyzeMeta(body *hclsyntax.Body, paletteOK bool) {
	for _, block := range body.Blocks {
		r.addWarning(block.DefRange(), fmt.Sprintf("unexpected block %q in meta", block.Type))
	}

	for name, attr := range body.Attributes {
		if !slices.Contains(metaAttributes, name) {
			r.addWarning(attr.SrcRange, fmt.Sprintf("unknown meta attribute %q (valid: %s)", name, strings.Join(metaAttributes, ", ")))
			continue
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("meta.%s: %s", name, diags.Error()))
			continue
		}
		if val.Type() != cty.String {
			r.addError(attr.SrcRange, fmt.Sprintf("meta.%s: expected string, got %s", name, val.Type().FriendlyName()))
			continue
		}
		if name != "tone" {
			continue
		}

		tone, err := color.ParseTone(val.AsString())
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("meta.tone: %s (valid: %s)", err.Error(), toneNameList()))
			continue
		}
		r.ExpectedTone = &tone
		if paletteOK && r.Tone != tone {
			r.addWarning(attr.SrcRange, fmt.Sprintf("palette tone is %s, meta.tone expects %s", r.Tone, tone))
		}
	}
}

func toneNameList() string {
	names := make([]string, 0, len(color.NamedTones)+1)
	for _, t := range color.NamedTones {
		names = append(names, t.String())
	}
	names = append(names, color.Custom.String())
	return strings.Join(names, ", ")
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.base) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
