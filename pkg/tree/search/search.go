// Package search implements structural lookup over trees: by name, path
// pattern, attribute value, or arbitrary predicate.
//
// Single-result functions (Find, FindName, ...) fail with
// tree.ErrPathNotFound when nothing matches and tree.ErrPathAmbiguous when
// more than one node matches. Multi-result functions return all matches in
// pre-order, possibly none.
//
// The child-scoped functions (FindChild, FindChildren, FindChildByName)
// scan only the immediate child list in child-list order. They are a fast
// path, not equivalent to a full search when duplicate names exist deeper
// in the tree.
package search

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
	"github.com/arborlab/arbor/pkg/tree/traverse"
)

// Predicate decides whether a node matches.
type Predicate func(tree.Node) bool

// Find returns the unique node under root satisfying p.
func Find(root tree.Node, p Predicate, opts ...traverse.Option) (tree.Node, error) {
	return single(FindAll(root, p, opts...), "predicate")
}

// FindAll returns every node under root satisfying p, in pre-order.
func FindAll(root tree.Node, p Predicate, opts ...traverse.Option) []tree.Node {
	var out []tree.Node
	for n := range traverse.PreOrder(root, opts...) {
		if p(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindName returns the unique node under root with the given name.
func FindName(root tree.Node, name string, opts ...traverse.Option) (tree.Node, error) {
	return single(FindNames(root, []string{name}, opts...), name)
}

// FindNames returns every node whose name is in the given set, in
// pre-order.
func FindNames(root tree.Node, names []string, opts ...traverse.Option) []tree.Node {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return FindAll(root, func(n tree.Node) bool {
		_, ok := set[n.Name()]
		return ok
	}, opts...)
}

// FindPath returns the unique node whose full path matches pattern.
// Patterns follow [tree.Resolve]: full paths are walked from the root,
// anything else matches as a path suffix on a separator boundary.
func FindPath(root tree.Node, pattern string) (tree.Node, error) {
	return tree.Resolve(root, pattern)
}

// FindPaths returns every node matching pattern, in pre-order.
func FindPaths(root tree.Node, pattern string) []tree.Node {
	return tree.ResolveAll(root, pattern)
}

// FindRelativePath resolves a relative pattern (".", "..", "*", names)
// from n to a unique node.
func FindRelativePath(n tree.Node, pattern string) (tree.Node, error) {
	return tree.ResolveRelative(n, pattern)
}

// FindRelativePaths resolves a relative pattern from n to every match.
func FindRelativePaths(n tree.Node, pattern string) ([]tree.Node, error) {
	return tree.ResolveRelativeAll(n, pattern)
}

// FindAttr returns the unique node carrying the attribute key with a value
// equal to want.
func FindAttr(root tree.Node, key string, want any, opts ...traverse.Option) (tree.Node, error) {
	return single(FindAttrs(root, key, want, opts...), fmt.Sprintf("%s=%v", key, want))
}

// FindAttrs returns every node carrying the attribute key with a value
// equal to want, in pre-order. Values are compared with
// reflect.DeepEqual.
func FindAttrs(root tree.Node, key string, want any, opts ...traverse.Option) []tree.Node {
	return FindAll(root, func(n tree.Node) bool {
		got, ok := n.Get(key)
		return ok && reflect.DeepEqual(got, want)
	}, opts...)
}

// FindChild returns the unique direct child of n satisfying p.
func FindChild(n tree.Node, p Predicate) (tree.Node, error) {
	return single(FindChildren(n, p), "predicate")
}

// FindChildren returns the direct children of n satisfying p, in
// child-list order.
func FindChildren(n tree.Node, p Predicate) []tree.Node {
	var out []tree.Node
	for _, c := range n.Children() {
		if p(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindChildByName returns the direct child of n with the given name. For
// tree variants sibling names are unique, so at most one child can match.
func FindChildByName(n tree.Node, name string) (tree.Node, error) {
	return single(FindChildren(n, func(c tree.Node) bool {
		return c.Name() == name
	}), name)
}

func single(matches []tree.Node, what string) (tree.Node, error) {
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no match for %s: %w", what, tree.ErrPathNotFound)
	case 1:
		return matches[0], nil
	default:
		paths := make([]string, len(matches))
		for i, m := range matches {
			paths[i] = tree.PathName(m)
		}
		return nil, fmt.Errorf("%s matches %s: %w", what, strings.Join(paths, ", "), tree.ErrPathAmbiguous)
	}
}
