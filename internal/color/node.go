package color

import (
	"fmt"
	"sort"
	"strings"
)

// Node represents a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color attribute).
// Children is nil for leaf nodes (flat color attributes).
type Node struct {
	Color    *Value
	Children map[string]*Node
}

// Entry is a named color from a flattened palette tree.
type Entry struct {
	Path  string
	Value Value
}

// Lookup resolves a dot-path (as segments) to a Value.
// Returns an error if the path is not found or the target node has no color.
func (n *Node) Lookup(path []string) (Value, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return Value{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return Value{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return Value{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// LookupPath is Lookup for a dotted path such as "moss.light".
func (n *Node) LookupPath(path string) (Value, error) {
	return n.Lookup(strings.Split(path, "."))
}

// Set stores v at path, creating intermediate groups as needed.
func (n *Node) Set(path []string, v Value) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			current.Children = make(map[string]*Node)
		}
		child, ok := current.Children[part]
		if !ok {
			child = &Node{}
			current.Children[part] = child
		}
		current = child
	}
	current.Color = &v
}

// Entries flattens the tree into dot-paths sorted lexically. A group's own
// color is listed under the group's path.
func (n *Node) Entries() []Entry {
	var out []Entry
	n.walk("", &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (n *Node) walk(prefix string, out *[]Entry) {
	if n.Color != nil && prefix != "" {
		*out = append(*out, Entry{Path: prefix, Value: *n.Color})
	}
	for name, child := range n.Children {
		p := name
		if prefix != "" {
			p = prefix + "." + name
		}
		child.walk(p, out)
	}
}

// Values returns every color in the tree in Entries order.
func (n *Node) Values() []Value {
	entries := n.Entries()
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Tone classifies every color in the tree as one batch.
func (n *Node) Tone() Tone {
	return ClassifyValues(n.Values())
}

// ApplyScale gives every colored node children s1..sN holding the
// LightnessScale of its color. Namespace-only groups are skipped. The node
// keeps its own color, so existing references still resolve.
func (n *Node) ApplyScale(count int, step float64) {
	var targets []*Node
	n.collectColored(&targets)
	for _, t := range targets {
		scale := LightnessScale(*t.Color, count, step)
		if t.Children == nil {
			t.Children = make(map[string]*Node, len(scale))
		}
		for i, v := range scale {
			t.Children[fmt.Sprintf("s%d", i+1)] = &Node{Color: &v}
		}
	}
}

func (n *Node) collectColored(out *[]*Node) {
	if n.Color != nil {
		*out = append(*out, n)
	}
	for _, child := range n.Children {
		child.collectColored(out)
	}
}
