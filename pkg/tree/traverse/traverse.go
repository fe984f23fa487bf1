// Package traverse provides lazy traversal orders over tree and DAG
// nodes: pre-order, post-order, level-order (flat and grouped by depth),
// zigzag, and in-order for binary trees.
//
// All traversals return iter.Seq values. Sequences are lazy and
// restartable: each range re-derives the walk from current structure.
// Mutating the tree mid-iteration has undefined results.
//
// A [MaxDepth] bound truncates the walk early - branches beyond the bound
// are never descended into, which matters on deep trees.
package traverse

import (
	"iter"

	"github.com/arborlab/arbor/pkg/tree"
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	maxDepth int // 0 = unbounded
}

// MaxDepth bounds the walk to n levels below the starting node. The
// starting node is at depth 0, so MaxDepth(1) yields the node and its
// children. n <= 0 means unbounded.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func apply(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PreOrder yields root, then each child subtree left to right.
func PreOrder(root tree.Node, opts ...Option) iter.Seq[tree.Node] {
	o := apply(opts)
	return func(yield func(tree.Node) bool) {
		var walk func(n tree.Node, depth int) bool
		walk = func(n tree.Node, depth int) bool {
			if !yield(n) {
				return false
			}
			if o.maxDepth > 0 && depth >= o.maxDepth {
				return true
			}
			for _, c := range n.Children() {
				if !walk(c, depth+1) {
					return false
				}
			}
			return true
		}
		walk(root, 0)
	}
}

// PostOrder yields each child subtree left to right, then root.
func PostOrder(root tree.Node, opts ...Option) iter.Seq[tree.Node] {
	o := apply(opts)
	return func(yield func(tree.Node) bool) {
		var walk func(n tree.Node, depth int) bool
		walk = func(n tree.Node, depth int) bool {
			if o.maxDepth <= 0 || depth < o.maxDepth {
				for _, c := range n.Children() {
					if !walk(c, depth+1) {
						return false
					}
				}
			}
			return yield(n)
		}
		walk(root, 0)
	}
}

// LevelOrder yields nodes breadth-first, shallowest level first, left to
// right within a level.
func LevelOrder(root tree.Node, opts ...Option) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		for level := range LevelOrderGroup(root, opts...) {
			for _, n := range level {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// LevelOrderGroup yields one slice of nodes per depth level, shallowest
// first.
func LevelOrderGroup(root tree.Node, opts ...Option) iter.Seq[[]tree.Node] {
	o := apply(opts)
	return func(yield func([]tree.Node) bool) {
		level := []tree.Node{root}
		for depth := 0; len(level) > 0; depth++ {
			if !yield(level) {
				return
			}
			if o.maxDepth > 0 && depth >= o.maxDepth {
				return
			}
			var next []tree.Node
			for _, n := range level {
				next = append(next, n.Children()...)
			}
			level = next
		}
	}
}

// ZigZag yields nodes level by level, alternating direction: the first
// level runs left to right, the next right to left, and so on.
func ZigZag(root tree.Node, opts ...Option) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		for level := range ZigZagGroup(root, opts...) {
			for _, n := range level {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// ZigZagGroup yields one slice per depth level with alternating order,
// like [ZigZag].
func ZigZagGroup(root tree.Node, opts ...Option) iter.Seq[[]tree.Node] {
	return func(yield func([]tree.Node) bool) {
		reverse := false
		for level := range LevelOrderGroup(root, opts...) {
			out := level
			if reverse {
				out = make([]tree.Node, len(level))
				for i, n := range level {
					out[len(level)-1-i] = n
				}
			}
			if !yield(out) {
				return
			}
			reverse = !reverse
		}
	}
}

// InOrder yields a binary tree in left-node-right order. Empty slots are
// skipped.
func InOrder(root *tree.BinaryNode, opts ...Option) iter.Seq[tree.Node] {
	o := apply(opts)
	return func(yield func(tree.Node) bool) {
		var walk func(n *tree.BinaryNode, depth int) bool
		walk = func(n *tree.BinaryNode, depth int) bool {
			if n == nil {
				return true
			}
			descend := o.maxDepth <= 0 || depth < o.maxDepth
			if descend && !walk(n.Left(), depth+1) {
				return false
			}
			if !yield(n) {
				return false
			}
			if descend && !walk(n.Right(), depth+1) {
				return false
			}
			return true
		}
		walk(root, 0)
	}
}
