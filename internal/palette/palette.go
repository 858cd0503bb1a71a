// Package palette bridges palette trees and HCL: it exposes a palette to
// expressions as the "palette" variable, provides the palette functions and
// evaluates palette blocks in source order.
package palette

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// ResolveColor extracts a color string from a cty.Value.
// If the value is a string, return it directly.
// If the value is an object, extract the "color" key.
func ResolveColor(val cty.Value) (string, error) {
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("object has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected string or object with color attribute, got %s", val.Type().FriendlyName())
}

// NodeToCty converts a color.Node to a cty.Value for HCL evaluation context.
// Leaf nodes become cty.StringVal holding the canonical color string.
// Nodes with children become cty.ObjectVal, with "color" as a sibling key if the node has its own color.
func NodeToCty(node *color.Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(node.Color.String())
		}
		// Empty group.
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)
	if node.Color != nil {
		vals["color"] = cty.StringVal(node.Color.String())
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}

// BuildEvalContext creates an HCL evaluation context with palette variables
// and the convert/brighten/darken functions.
func BuildEvalContext(root *color.Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": NodeToCty(root),
		},
		Functions: Functions(),
	}
}

// ScaleBlock is the reserved block inside palette that configures lightness
// scales instead of declaring a group.
const ScaleBlock = "scale"

// Scale holds the attributes of the scale block.
type Scale struct {
	Count int     `hcl:"count"`
	Step  float64 `hcl:"step,optional"`
}

// DefaultScaleStep is used when the scale block omits step.
const DefaultScaleStep = 10

// FindScale decodes the scale block of a palette body. It returns nil when
// the body has none.
func FindScale(body *hclsyntax.Body) (*Scale, error) {
	for _, block := range body.Blocks {
		if block.Type != ScaleBlock {
			continue
		}
		var s Scale
		if diags := gohcl.DecodeBody(block.Body, nil, &s); diags.HasErrors() {
			return nil, fmt.Errorf("decoding scale: %s", diags.Error())
		}
		if s.Count <= 0 {
			return nil, fmt.Errorf("scale count must be positive, got %d", s.Count)
		}
		if s.Step == 0 {
			s.Step = DefaultScaleStep
		}
		return &s, nil
	}
	return nil, nil
}

// Entry is one evaluated palette attribute.
type Entry struct {
	// Path is the dotted reference name, e.g. "palette.moss.light". A group's
	// own color attribute is reported under the group path.
	Path string
	// Attr is the attribute the entry came from.
	Attr *hclsyntax.Attribute
	// GroupColor is true for a group's "color" attribute.
	GroupColor bool
	Value      color.Value
	Err        error
}

// item is an attribute or block in source order.
type item struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// EvalBody evaluates a palette block body into root. Attributes and nested
// blocks are processed in source order, and each attribute is evaluated
// against everything defined before it. visit is called once per attribute;
// returning false stops the walk. The top-level scale block is skipped.
func EvalBody(body *hclsyntax.Body, root *color.Node, visit func(Entry) bool) {
	evalBody(body, root, root, "palette", visit)
}

func evalBody(body *hclsyntax.Body, root, node *color.Node, prefix string, visit func(Entry) bool) bool {
	items := make([]item, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, item{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, item{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})

	for _, it := range items {
		if it.block != nil {
			if node == root && it.block.Type == ScaleBlock {
				continue
			}
			child := childNode(node, it.block.Type)
			if child.Children == nil {
				// A block is always a group, even with only a color attribute.
				child.Children = make(map[string]*color.Node)
			}
			if !evalBody(it.block.Body, root, child, prefix+"."+it.block.Type, visit) {
				return false
			}
			continue
		}

		e := Entry{Attr: it.attr, Path: prefix + "." + it.attr.Name}
		if it.attr.Name == "color" {
			e.Path, e.GroupColor = prefix, true
		}

		e.Value, e.Err = evalAttr(it.attr, BuildEvalContext(root))
		if e.Err == nil {
			v := e.Value
			if e.GroupColor {
				node.Color = &v
			} else {
				childNode(node, it.attr.Name).Color = &v
			}
		}
		if !visit(e) {
			return false
		}
	}
	return true
}

// evalAttr evaluates attr to a color. Color literals written in the file are
// validated strictly; computed values (references and function results) are
// read back in canonical form without domain checks.
func evalAttr(attr *hclsyntax.Attribute, ctx *hcl.EvalContext) (color.Value, error) {
	if err := checkLiterals(attr.Expr); err != nil {
		return color.Value{}, err
	}
	val, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() {
		return color.Value{}, fmt.Errorf("%s", diags.Error())
	}
	s, err := ResolveColor(val)
	if err != nil {
		return color.Value{}, err
	}
	return color.ParseCanonical(s)
}

// checkLiterals runs ParseString on every string literal in expr that
// starts like a color, including function arguments.
func checkLiterals(expr hclsyntax.Expression) error {
	var err error
	hclsyntax.VisitAll(expr, func(n hclsyntax.Node) hcl.Diagnostics {
		tmpl, ok := n.(*hclsyntax.TemplateExpr)
		if err != nil || !ok || !tmpl.IsStringLiteral() {
			return nil
		}
		val, diags := tmpl.Value(nil)
		if diags.HasErrors() || val.Type() != cty.String {
			return nil
		}
		s := val.AsString()
		if _, derr := color.DetectUnit(s); derr != nil {
			return nil
		}
		_, err = color.ParseString(s)
		return nil
	})
	return err
}

func childNode(node *color.Node, name string) *color.Node {
	if node.Children == nil {
		node.Children = make(map[string]*color.Node)
	}
	child, ok := node.Children[name]
	if !ok {
		child = &color.Node{}
		node.Children[name] = child
	}
	return child
}
