// Package export turns trees into external shapes: tabular rows, nested
// maps, indented string notation, and Graphviz/Mermaid documents. It is
// the inverse of package construct where a round trip makes sense.
package export

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
	"github.com/arborlab/arbor/pkg/tree/traverse"
)

// Row is one tabular entry: a node's path, its parent's path (empty for
// the root), and its attribute bag.
type Row struct {
	Path       string
	ParentPath string
	Attrs      tree.Attrs
}

// Rows flattens a tree into pre-order (path, parent path, attrs) rows.
func Rows(root tree.Node) []Row {
	var out []Row
	for n := range traverse.PreOrder(root) {
		r := Row{Path: tree.PathName(n), Attrs: n.Attrs().Clone()}
		if p := n.Parent(); p != nil {
			r.ParentPath = tree.PathName(p)
		}
		out = append(out, r)
	}
	return out
}

// Nested converts a tree into the {name, attrs, children} map shape
// accepted by construct.FromMap. Empty attrs and children are omitted.
func Nested(root tree.Node) map[string]any {
	out := map[string]any{"name": root.Name()}
	if attrs := root.Attrs(); len(attrs) > 0 {
		out["attrs"] = map[string]any(attrs.Clone())
	}
	children := root.Children()
	if len(children) > 0 {
		list := make([]any, len(children))
		for i, c := range children {
			list[i] = Nested(c)
		}
		out["children"] = list
	}
	return out
}

// Style is the glyph set for [Sprint] notation.
type Style struct {
	Branch     string // child connector
	LastBranch string // connector of a parent's last child
	Stem       string // continuation below an open branch
	Blank      string // continuation below a closed branch
}

// The two built-in notation styles.
var (
	StyleUnicode = Style{Branch: "├── ", LastBranch: "└── ", Stem: "│   ", Blank: "    "}
	StyleASCII   = Style{Branch: "|-- ", LastBranch: "`-- ", Stem: "|   ", Blank: "    "}
)

// Sprint renders a tree as indented box-drawing notation:
//
//	a
//	├── b
//	│   └── d
//	└── c
func Sprint(root tree.Node) string {
	return SprintStyle(root, StyleUnicode)
}

// SprintStyle renders the notation with a custom glyph set.
func SprintStyle(root tree.Node, style Style) string {
	var sb strings.Builder
	sb.WriteString(root.Name())
	sb.WriteByte('\n')
	sprintChildren(&sb, root, "", style)
	return sb.String()
}

// Print writes the default notation to w.
func Print(w io.Writer, root tree.Node) error {
	_, err := io.WriteString(w, Sprint(root))
	return err
}

func sprintChildren(sb *strings.Builder, n tree.Node, prefix string, style Style) {
	children := n.Children()
	for i, c := range children {
		connector, cont := style.Branch, style.Stem
		if i == len(children)-1 {
			connector, cont = style.LastBranch, style.Blank
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(c.Name())
		sb.WriteByte('\n')
		sprintChildren(sb, c, prefix+cont, style)
	}
}

// ToDOT converts a tree or DAG into a Graphviz digraph. Nodes are keyed
// by path so duplicate DAG names stay distinct; attributes are listed in
// the label sorted by key.
func ToDOT(root tree.Node) string {
	var buf strings.Builder
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	// A DAG diamond reaches shared nodes once per parent; emit each node
	// and edge once.
	seen := map[tree.Node]bool{}
	for n := range traverse.PreOrder(root) {
		if seen[n] {
			continue
		}
		seen[n] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", tree.PathName(n), dotLabel(n))
	}
	buf.WriteString("\n")
	clear(seen)
	for n := range traverse.PreOrder(root) {
		if seen[n] {
			continue
		}
		seen[n] = true
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", tree.PathName(n), tree.PathName(c))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(n tree.Node) string {
	attrs := n.Attrs()
	if len(attrs) == 0 {
		return n.Name()
	}
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, attrs[k]))
	}
	return n.Name() + "\n" + strings.Join(parts, "\n")
}

// ToMermaid converts a tree into a Mermaid flowchart (top-down). Node
// identifiers are stable per path; labels carry the node name.
func ToMermaid(root tree.Node) string {
	var buf strings.Builder
	buf.WriteString("flowchart TD\n")
	ids := map[tree.Node]string{}
	for n := range traverse.PreOrder(root) {
		if _, ok := ids[n]; ok {
			continue
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		fmt.Fprintf(&buf, "  %s[%q]\n", id, n.Name())
	}
	emitted := map[tree.Node]bool{}
	for n := range traverse.PreOrder(root) {
		if emitted[n] {
			continue
		}
		emitted[n] = true
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s --> %s\n", ids[n], ids[c])
		}
	}
	return buf.String()
}
