// Package layout computes drawing coordinates for trees. It knows
// nothing about pixels, fonts, or colors; it assigns each node a depth
// and an abstract horizontal position that rendering backends scale as
// they see fit.
package layout

import (
	"math"

	"github.com/arborlab/arbor/pkg/tree"
)

// Placement is one node's computed position. Depth counts from 0 at the
// root; X is in sibling-gap units with the leftmost node at 0.
type Placement struct {
	Node  tree.Node
	Depth int
	X     float64
}

// Options tunes the tidy layout.
type Options struct {
	// SiblingGap is the minimum horizontal distance between adjacent
	// subtree contours. Zero means 1.
	SiblingGap float64
}

// Tidy lays out a tree in the Reingold-Tilford style: parents centered
// over their children, subtrees packed as closely as their contours
// allow, and isomorphic subtrees shaped identically. Placements come
// back in pre-order.
func Tidy(root tree.Node, opts Options) []Placement {
	gap := opts.SiblingGap
	if gap <= 0 {
		gap = 1
	}

	xs := map[tree.Node]float64{}
	layout(root, gap, xs)

	minX := math.Inf(1)
	for _, x := range xs {
		minX = math.Min(minX, x)
	}

	var out []Placement
	var walk func(n tree.Node, depth int)
	walk = func(n tree.Node, depth int) {
		out = append(out, Placement{Node: n, Depth: depth, X: xs[n] - minX})
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return out
}

// layout positions n's subtree with n at x 0 relative to itself, records
// absolute positions in xs once offsets resolve, and returns the
// subtree's left and right contours indexed by relative depth.
func layout(n tree.Node, gap float64, xs map[tree.Node]float64) (left, right []float64) {
	children := n.Children()
	if len(children) == 0 {
		xs[n] = 0
		return []float64{0}, []float64{0}
	}

	// Pack each child subtree against the accumulated contour of its
	// left siblings.
	offsets := make([]float64, len(children))
	var accLeft, accRight []float64
	for i, c := range children {
		cl, cr := layout(c, gap, xs)
		if i == 0 {
			accLeft, accRight = cl, cr
			continue
		}
		// Smallest offset whose left contour clears the accumulated
		// right contour at every shared depth.
		shift := math.Inf(-1)
		for d := 0; d < len(accRight) && d < len(cl); d++ {
			shift = math.Max(shift, accRight[d]-cl[d]+gap)
		}
		offsets[i] = shift
		accLeft = mergeContour(accLeft, cl, offsets[i], math.Min)
		accRight = mergeContour(accRight, cr, offsets[i], math.Max)
	}

	// Center the parent over its outermost children, then rebase every
	// offset so the parent sits at 0.
	center := (offsets[0] + offsets[len(offsets)-1]) / 2
	for i, c := range children {
		shiftSubtree(c, offsets[i]-center, xs)
	}
	for i := range accLeft {
		accLeft[i] -= center
	}
	for i := range accRight {
		accRight[i] -= center
	}
	xs[n] = 0
	return append([]float64{0}, accLeft...), append([]float64{0}, accRight...)
}

// mergeContour combines an accumulated contour with a new subtree's
// contour placed at offset, preferring pick (min for left, max for
// right) on shared depths.
func mergeContour(acc, next []float64, offset float64, pick func(a, b float64) float64) []float64 {
	out := make([]float64, 0, max(len(acc), len(next)))
	for d := 0; d < len(acc) || d < len(next); d++ {
		switch {
		case d >= len(acc):
			out = append(out, next[d]+offset)
		case d >= len(next):
			out = append(out, acc[d])
		default:
			out = append(out, pick(acc[d], next[d]+offset))
		}
	}
	return out
}

// shiftSubtree moves every recorded position under n (inclusive) by dx.
func shiftSubtree(n tree.Node, dx float64, xs map[tree.Node]float64) {
	xs[n] += dx
	for d := range n.Descendants() {
		xs[d] += dx
	}
}
