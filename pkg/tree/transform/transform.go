// Package transform provides helpers that derive new trees from existing
// ones: cloning across node variants, subtree extraction, pruning, and
// structural diffing. Every helper leaves its input untouched.
package transform

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
	"github.com/arborlab/arbor/pkg/tree/traverse"
)

// Constructor builds a node of the target variant for [Clone].
type Constructor func(name string, attrs tree.Attrs) tree.Node

// Clone walks root pre-order and rebuilds an isomorphic structure using
// construct, copying names and attribute bags but nothing else. The clone
// is structurally independent of the source. Cloning can fail when the
// target variant rejects the source's shape, for example a node with
// three children cloned into binary nodes.
func Clone(root tree.Node, construct Constructor) (tree.Node, error) {
	out := construct(root.Name(), root.Attrs().Clone())
	for _, c := range root.Children() {
		cc, err := Clone(c, construct)
		if err != nil {
			return nil, err
		}
		if err := cc.SetParent(out); err != nil {
			return nil, fmt.Errorf("clone %q: %w", tree.PathName(c), err)
		}
	}
	return out, nil
}

// Subtree resolves path under root and returns an independent clone
// rooted at the resolved node.
func Subtree(root *tree.TreeNode, path string) (*tree.TreeNode, error) {
	n, err := tree.Resolve(root, path)
	if err != nil {
		return nil, err
	}
	return cloneTree(n.(*tree.TreeNode)), nil
}

// PruneOptions selects what a pruned clone retains. At least one of
// Paths or MaxDepth must be set.
type PruneOptions struct {
	// Paths keeps the nodes on these paths together with their
	// ancestors. Descendants of a matched node are kept too unless Exact
	// is set.
	Paths []string

	// Exact drops the descendants of matched path targets.
	Exact bool

	// MaxDepth bounds the clone's depth: 1 keeps only the root, 2 the
	// root and its children, and so on. Zero or negative means no bound.
	MaxDepth int
}

// Prune returns a clone of root containing only the selected nodes.
// Unmatched branches are dropped entirely.
func Prune(root *tree.TreeNode, opts PruneOptions) (*tree.TreeNode, error) {
	if len(opts.Paths) == 0 && opts.MaxDepth <= 0 {
		return nil, fmt.Errorf("prune needs paths or a depth bound: %w", tree.ErrConfigConflict)
	}

	keep := map[tree.Node]bool{}
	if len(opts.Paths) == 0 {
		keep[root] = true
		for n := range root.Descendants() {
			keep[n] = true
		}
	}
	for _, p := range opts.Paths {
		matches := tree.ResolveAll(root, p)
		if len(matches) == 0 {
			return nil, fmt.Errorf("prune path %q: %w", p, tree.ErrPathNotFound)
		}
		for _, m := range matches {
			keep[m] = true
			for anc := range m.Ancestors() {
				keep[anc] = true
			}
			if !opts.Exact {
				for d := range m.Descendants() {
					keep[d] = true
				}
			}
		}
	}

	out := prunedClone(root, keep, opts.MaxDepth, 1)
	if out == nil {
		return nil, fmt.Errorf("nothing left after pruning: %w", tree.ErrPathNotFound)
	}
	return out, nil
}

func prunedClone(n *tree.TreeNode, keep map[tree.Node]bool, maxDepth, depth int) *tree.TreeNode {
	if !keep[n] || (maxDepth > 0 && depth > maxDepth) {
		return nil
	}
	out := tree.NewNode(n.Name(), n.Attrs().Clone())
	for _, c := range n.Children() {
		if cc := prunedClone(c.(*tree.TreeNode), keep, maxDepth, depth+1); cc != nil {
			// Both sides are clones of a valid tree, attaching cannot
			// fail.
			_ = cc.SetParent(out)
		}
	}
	return out
}

// DiffOptions controls what [Diff] reports.
type DiffOptions struct {
	// Attrs lists attribute keys to compare on paths present in both
	// trees; differing values put the path in Changed. Empty means
	// structure only.
	Attrs []string

	// AggregatePerParent collapses added/removed reporting to the
	// shallowest path of each added or removed branch instead of listing
	// every descendant.
	AggregatePerParent bool

	// DetectMoves pairs a removed path with an added path carrying the
	// same final name component and reports them as one move instead of
	// an independent add and remove.
	DetectMoves bool
}

// Move records a subtree reported at a new location by [Diff].
type Move struct {
	From string
	To   string
}

// DiffResult holds the difference between two trees as path sets. Paths
// are relative to each tree's root ("/b/d" for a node d under child b),
// so trees whose roots are named differently still compare. All slices
// come back sorted.
type DiffResult struct {
	Added   []string // present in the second tree only
	Removed []string // present in the first tree only
	Changed []string // present in both with differing attribute values
	Moved   []Move
}

// Diff computes the structural difference from a to b.
func Diff(a, b *tree.TreeNode, opts DiffOptions) *DiffResult {
	left := relPaths(a)
	right := relPaths(b)

	res := &DiffResult{}
	for p := range left {
		if _, ok := right[p]; !ok {
			res.Removed = append(res.Removed, p)
		}
	}
	for p, rn := range right {
		ln, ok := left[p]
		if !ok {
			res.Added = append(res.Added, p)
			continue
		}
		for _, key := range opts.Attrs {
			lv, _ := ln.Get(key)
			rv, _ := rn.Get(key)
			if !reflect.DeepEqual(lv, rv) {
				res.Changed = append(res.Changed, p)
				break
			}
		}
	}

	sep := a.Sep()
	if opts.AggregatePerParent {
		res.Added = aggregate(res.Added, sep)
		res.Removed = aggregate(res.Removed, sep)
	}
	if opts.DetectMoves {
		res.Moved = detectMoves(res, sep)
	}
	sort.Strings(res.Added)
	sort.Strings(res.Removed)
	sort.Strings(res.Changed)
	sort.Slice(res.Moved, func(i, j int) bool { return res.Moved[i].From < res.Moved[j].From })
	return res
}

// relPaths maps each descendant's root-relative path to its node.
func relPaths(root *tree.TreeNode) map[string]*tree.TreeNode {
	prefix := tree.PathName(root)
	out := map[string]*tree.TreeNode{}
	for n := range traverse.PreOrder(root) {
		if n == tree.Node(root) {
			continue
		}
		out[strings.TrimPrefix(tree.PathName(n), prefix)] = n.(*tree.TreeNode)
	}
	return out
}

// aggregate drops every path whose parent path is in the same set,
// keeping only the shallowest entry of each branch.
func aggregate(paths []string, sep string) []string {
	in := map[string]bool{}
	for _, p := range paths {
		in[p] = true
	}
	var out []string
	for _, p := range paths {
		parent := p[:strings.LastIndex(p, sep)]
		if !in[parent] {
			out = append(out, p)
		}
	}
	return out
}

// detectMoves pairs removed and added paths sharing a unique final name
// component, rewriting the result in place.
func detectMoves(res *DiffResult, sep string) []Move {
	byName := func(paths []string) map[string][]string {
		m := map[string][]string{}
		for _, p := range paths {
			name := p[strings.LastIndex(p, sep)+1:]
			m[name] = append(m[name], p)
		}
		return m
	}
	removed := byName(res.Removed)
	added := byName(res.Added)

	var moves []Move
	matched := map[string]bool{}
	for name, froms := range removed {
		tos, ok := added[name]
		if !ok || len(froms) != 1 || len(tos) != 1 {
			continue
		}
		moves = append(moves, Move{From: froms[0], To: tos[0]})
		matched[froms[0]] = true
		matched[tos[0]] = true
	}

	keep := func(paths []string) []string {
		var out []string
		for _, p := range paths {
			if !matched[p] {
				out = append(out, p)
			}
		}
		return out
	}
	res.Removed = keep(res.Removed)
	res.Added = keep(res.Added)
	return moves
}

func cloneTree(n *tree.TreeNode) *tree.TreeNode {
	out := tree.NewNode(n.Name(), n.Attrs().Clone())
	for _, c := range n.Children() {
		_ = cloneTree(c.(*tree.TreeNode)).SetParent(out)
	}
	return out
}
