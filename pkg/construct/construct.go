// Package construct builds trees and DAGs from external shapes: path
// lists, parent-child relations, tabular rows, nested maps, and TOML
// documents. Intermediate nodes are created on demand so inputs need not
// be ordered parent-first.
package construct

import (
	"fmt"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
)

// Row is one tabular entry: a full node path plus its attribute bag.
type Row struct {
	Path  string
	Attrs tree.Attrs
}

// FromPaths builds a tree from full path strings. All paths must share
// the same first component, which becomes the root. Listing a path twice
// is harmless; missing intermediate nodes are created without attributes.
func FromPaths(paths []string) (*tree.TreeNode, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths given: %w", tree.ErrMalformedPath)
	}
	var root *tree.TreeNode
	for _, p := range paths {
		parts, err := splitPath(p)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = tree.NewNode(parts[0], nil)
		}
		if parts[0] != root.Name() {
			return nil, fmt.Errorf("path %q does not start at root %q: %w", p, root.Name(), tree.ErrMalformedPath)
		}
		if _, err := ensure(root, parts[1:]); err != nil {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
	}
	return root, nil
}

// FromRelations builds a tree from (parent, child) name pairs. Node names
// must be unique across the tree. Exactly one name may appear only on the
// parent side; it becomes the root.
func FromRelations(relations [][2]string) (*tree.TreeNode, error) {
	if len(relations) == 0 {
		return nil, fmt.Errorf("no relations given: %w", tree.ErrMalformedPath)
	}
	nodes := map[string]*tree.TreeNode{}
	get := func(name string) *tree.TreeNode {
		if n, ok := nodes[name]; ok {
			return n
		}
		n := tree.NewNode(name, nil)
		nodes[name] = n
		return n
	}
	for _, rel := range relations {
		parent, child := get(rel[0]), get(rel[1])
		if err := child.SetParent(parent); err != nil {
			return nil, fmt.Errorf("relation %s -> %s: %w", rel[0], rel[1], err)
		}
	}

	var root *tree.TreeNode
	for _, n := range nodes {
		if !n.IsRoot() {
			continue
		}
		if root != nil {
			return nil, fmt.Errorf("multiple roots %q and %q: %w", root.Name(), n.Name(), tree.ErrMalformedPath)
		}
		root = n
	}
	if root == nil {
		return nil, fmt.Errorf("no root: %w", tree.ErrCycle)
	}
	return root, nil
}

// FromRows builds a tree from tabular (path, attrs) rows. Structure
// follows [FromPaths]; each row's attributes land on the node its path
// names. Intermediates created on demand stay attribute-less unless a
// later row names them.
func FromRows(rows []Row) (*tree.TreeNode, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows given: %w", tree.ErrMalformedPath)
	}
	var root *tree.TreeNode
	for _, row := range rows {
		parts, err := splitPath(row.Path)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = tree.NewNode(parts[0], nil)
		}
		if parts[0] != root.Name() {
			return nil, fmt.Errorf("path %q does not start at root %q: %w", row.Path, root.Name(), tree.ErrMalformedPath)
		}
		n, err := ensure(root, parts[1:])
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", row.Path, err)
		}
		n.Attrs().Merge(row.Attrs)
	}
	return root, nil
}

// FromMap builds a tree from a nested map of the shape
//
//	{"name": "a", "attrs": {...}, "children": [{...}, ...]}
//
// "name" is required at every level; "attrs" and "children" are optional.
func FromMap(m map[string]any) (*tree.TreeNode, error) {
	name, ok := m["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("node without a name: %w", tree.ErrInvalidName)
	}
	var attrs tree.Attrs
	if a, ok := m["attrs"].(map[string]any); ok {
		attrs = tree.Attrs(a).Clone()
	}
	n := tree.NewNode(name, attrs)

	children, _ := m["children"].([]any)
	for i, raw := range children {
		cm, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("child %d of %q is not a map: %w", i, name, tree.ErrMalformedPath)
		}
		c, err := FromMap(cm)
		if err != nil {
			return nil, err
		}
		if err := c.SetParent(n); err != nil {
			return nil, fmt.Errorf("child %q of %q: %w", c.Name(), name, err)
		}
	}
	return n, nil
}

// DAGFromRelations builds DAG nodes from (parent, child) name pairs and
// returns them keyed by name. A DAG can have several roots, so no single
// handle is singled out; pick one from the map.
func DAGFromRelations(relations [][2]string) (map[string]*tree.DAGNode, error) {
	if len(relations) == 0 {
		return nil, fmt.Errorf("no relations given: %w", tree.ErrMalformedPath)
	}
	nodes := map[string]*tree.DAGNode{}
	get := func(name string) *tree.DAGNode {
		if n, ok := nodes[name]; ok {
			return n
		}
		n := tree.NewDAGNode(name, nil)
		nodes[name] = n
		return n
	}
	for _, rel := range relations {
		parent, child := get(rel[0]), get(rel[1])
		if err := child.SetParent(parent); err != nil {
			return nil, fmt.Errorf("relation %s -> %s: %w", rel[0], rel[1], err)
		}
	}
	return nodes, nil
}

// ensure walks name components below root, creating missing children,
// and returns the final node.
func ensure(root *tree.TreeNode, names []string) (*tree.TreeNode, error) {
	cur := root
	for _, name := range names {
		var next *tree.TreeNode
		for _, c := range cur.Children() {
			if c.Name() == name {
				next = c.(*tree.TreeNode)
				break
			}
		}
		if next == nil {
			next = tree.NewNode(name, nil)
			if err := next.SetParent(cur); err != nil {
				return nil, err
			}
		}
		cur = next
	}
	return cur, nil
}

func splitPath(p string) ([]string, error) {
	trimmed := strings.Trim(p, tree.DefaultSep)
	if trimmed == "" {
		return nil, fmt.Errorf("empty path: %w", tree.ErrMalformedPath)
	}
	parts := strings.Split(trimmed, tree.DefaultSep)
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("path %q has an empty component: %w", p, tree.ErrMalformedPath)
		}
	}
	return parts, nil
}
