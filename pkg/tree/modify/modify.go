// Package modify implements the shift/copy engine: relocating, copying,
// merging, and deleting subtrees addressed by path, within one tree or
// across two trees.
//
// Every (from, to) pair is one atomic unit. All validation for a pair -
// source resolution, flag conflicts, destination clashes, cycle checks -
// runs before the pair mutates anything, so a failing pair leaves the
// tree exactly as it was. Across a batch the engine is deliberately not
// transactional: pairs that already succeeded stay applied, and the error
// names the pair that stopped the batch. Callers that need whole-batch
// atomicity must snapshot the tree themselves.
package modify

import (
	"fmt"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
)

// Options is the clash-resolution flag set for shift and copy operations.
// Overriding and MergeAttribute are mutually exclusive, as are
// MergeChildren and MergeLeaves; violating either fails the whole call
// before any mutation.
type Options struct {
	// Skippable tolerates from-paths that resolve to nothing; the pair is
	// silently skipped instead of failing with ErrMissingSource.
	Skippable bool

	// Overriding replaces an existing destination node wholesale.
	Overriding bool

	// MergeAttribute keeps the destination node and overlays the source
	// node's attributes onto it (source wins on key collision), recursing
	// over descendant paths present on both sides. Source descendants
	// with no counterpart are spliced in; destination children without a
	// source counterpart are untouched.
	MergeAttribute bool

	// MergeChildren splices the source node's children into the existing
	// destination node and discards the source node itself.
	MergeChildren bool

	// MergeLeaves splices only the source node's leaf descendants into
	// the destination node, discarding all intermediate source structure.
	MergeLeaves bool

	// DeleteChildren places the node alone, without its subtree. On a
	// shift the subtree is discarded; on a copy it stays at the source.
	DeleteChildren bool
}

// Shift moves the node at from to the path to, removing it from its
// origin. An empty to deletes the source subtree.
func Shift(root *tree.TreeNode, from, to string, opts Options) error {
	return ShiftAll(root, []string{from}, []string{to}, opts)
}

// Copy places a copy of the node at from at the path to, leaving the
// source in place.
func Copy(root *tree.TreeNode, from, to string, opts Options) error {
	return CopyAll(root, []string{from}, []string{to}, opts)
}

// ShiftAll moves a batch of nodes, pair by pair in the order given.
func ShiftAll(root *tree.TreeNode, from, to []string, opts Options) error {
	return run(root, root, from, to, opts, false)
}

// CopyAll copies a batch of nodes, pair by pair in the order given.
func CopyAll(root *tree.TreeNode, from, to []string, opts Options) error {
	return run(root, root, from, to, opts, true)
}

// ShiftBetween moves nodes from one tree into another. Both trees must
// use the same path separator.
func ShiftBetween(src, dst *tree.TreeNode, from, to []string, opts Options) error {
	return run(src, dst, from, to, opts, false)
}

// CopyBetween copies nodes from one tree into another. Both trees must
// use the same path separator.
func CopyBetween(src, dst *tree.TreeNode, from, to []string, opts Options) error {
	return run(src, dst, from, to, opts, true)
}

func run(src, dst *tree.TreeNode, from, to []string, opts Options, copyMode bool) error {
	if len(from) != len(to) {
		return fmt.Errorf("%d from-paths but %d to-paths: %w", len(from), len(to), tree.ErrConfigConflict)
	}
	if opts.Overriding && opts.MergeAttribute {
		return fmt.Errorf("overriding and merge-attribute: %w", tree.ErrConfigConflict)
	}
	if opts.MergeChildren && opts.MergeLeaves {
		return fmt.Errorf("merge-children and merge-leaves: %w", tree.ErrConfigConflict)
	}
	if src.Sep() != dst.Sep() {
		return fmt.Errorf("%q vs %q: %w", src.Sep(), dst.Sep(), tree.ErrSepMismatch)
	}
	for i := range from {
		if err := pair(src, dst, from[i], to[i], opts, copyMode); err != nil {
			return fmt.Errorf("pair %d (%s): %w", i, from[i], err)
		}
	}
	return nil
}

// pair applies one (from, to) unit. All validation happens before the
// first mutation.
func pair(src, dst *tree.TreeNode, from, to string, opts Options, copyMode bool) error {
	matches := tree.ResolveAll(src, from)
	switch {
	case len(matches) == 0:
		if opts.Skippable {
			return nil
		}
		return fmt.Errorf("%q: %w", from, tree.ErrMissingSource)
	case len(matches) > 1:
		return fmt.Errorf("%q resolves to %d nodes: %w", from, len(matches), tree.ErrPathAmbiguous)
	}
	node := matches[0].(*tree.TreeNode)

	if to == "" {
		if copyMode {
			return fmt.Errorf("empty destination on a copy: %w", tree.ErrConfigConflict)
		}
		node.Detach()
		return nil
	}

	sep := dst.Sep()
	parts := strings.Split(strings.TrimLeft(strings.TrimRight(to, sep), sep), sep)
	if parts[0] != dst.Name() {
		return fmt.Errorf("destination %q does not start at root %q: %w", to, dst.Name(), tree.ErrMalformedPath)
	}

	// Walk to the destination parent, creating attribute-less
	// intermediates. Created nodes are rolled back if the pair fails.
	var created []*tree.TreeNode
	rollback := func() {
		for i := len(created) - 1; i >= 0; i-- {
			created[i].Detach()
		}
	}
	cur := dst
	for _, name := range parts[1 : max(len(parts)-1, 1)] {
		next := childByName(cur, name)
		if next == nil {
			next = tree.NewNode(name, nil)
			if err := next.SetParent(cur); err != nil {
				rollback()
				return err
			}
			created = append(created, next)
		}
		cur = next
	}

	var destParent, destNode *tree.TreeNode
	if len(parts) == 1 {
		destNode = dst // destination is the tree root itself
	} else {
		destParent = cur
		destNode = childByName(destParent, parts[len(parts)-1])
	}
	leafName := parts[len(parts)-1]

	if destNode == node {
		rollback()
		return fmt.Errorf("%q is already at %q: %w", from, to, tree.ErrDuplicatePath)
	}

	// discardSource marks merge modes where the source wrapper (and, for
	// merge-leaves, its intermediate structure) is dropped once its
	// content has been spliced into the destination.
	var discardSource bool
	var err error
	switch {
	case opts.MergeChildren || opts.MergeLeaves:
		if destNode == nil {
			destNode = tree.NewNode(leafName, nil)
			if err := destNode.SetParent(destParent); err != nil {
				rollback()
				return err
			}
			created = append(created, destNode)
		}
		err = mergeInto(node, destNode, opts, copyMode)
		discardSource = true
	case destNode == nil:
		err = placeAt(node, destParent, leafName, nil, opts, copyMode)
	case opts.MergeAttribute:
		err = mergeAttributes(node, destNode, opts, copyMode)
		discardSource = true
	case opts.Overriding:
		if destParent == nil {
			err = fmt.Errorf("cannot override the tree root: %w", tree.ErrMalformedPath)
		} else {
			err = placeAt(node, destParent, leafName, destNode, opts, copyMode)
		}
	default:
		err = fmt.Errorf("destination %q occupied (no clash flag set): %w", to, tree.ErrDuplicatePath)
	}
	if err != nil {
		rollback()
		return err
	}

	if !copyMode && discardSource {
		node.Detach()
	}
	return nil
}

// placeAt puts node (or its clone in copy mode) under destParent with the
// given name, optionally replacing an existing occupant. The placement is
// pre-validated so the commit cannot fail halfway.
func placeAt(node, destParent *tree.TreeNode, name string, replace *tree.TreeNode, opts Options, copyMode bool) error {
	if err := canPlace(node, destParent, name, replace); err != nil {
		return err
	}

	placed := node
	if copyMode {
		placed = cloneSubtree(node, opts.DeleteChildren)
	}
	if replace != nil {
		replace.Detach()
	}
	if !copyMode && opts.DeleteChildren {
		for _, c := range placed.Children() {
			c.Detach()
		}
	}
	if placed.Name() != name {
		placed.Detach() // rename must not trip over old siblings
		if err := placed.SetName(name); err != nil {
			return err
		}
	}
	return placed.SetParent(destParent)
}

// mergeInto splices content of node into destNode: its children for
// MergeChildren, its leaf descendants for MergeLeaves. Name clashes with
// existing destination children follow Overriding/MergeAttribute when
// set and fail the pair otherwise.
func mergeInto(node, destNode *tree.TreeNode, opts Options, copyMode bool) error {
	var incoming []*tree.TreeNode
	if opts.MergeChildren {
		for _, c := range node.Children() {
			incoming = append(incoming, c.(*tree.TreeNode))
		}
	} else {
		for l := range node.Leaves() {
			incoming = append(incoming, l.(*tree.TreeNode))
		}
	}

	// Plan first: every splice and recursive merge is validated before
	// the first mutation.
	type splice struct {
		src     *tree.TreeNode
		replace *tree.TreeNode
	}
	var splices []splice
	var attrMerges [][2]*tree.TreeNode
	taken := map[string]struct{}{}
	for _, in := range incoming {
		if _, dup := taken[in.Name()]; dup {
			return fmt.Errorf("two spliced nodes named %q: %w", in.Name(), tree.ErrDuplicateName)
		}
		taken[in.Name()] = struct{}{}

		existing := childByName(destNode, in.Name())
		switch {
		case existing == nil:
			if err := canPlace(in, destNode, in.Name(), nil); err != nil {
				return err
			}
			splices = append(splices, splice{src: in})
		case opts.Overriding:
			if err := canPlace(in, destNode, in.Name(), existing); err != nil {
				return err
			}
			splices = append(splices, splice{src: in, replace: existing})
		case opts.MergeAttribute:
			attrMerges = append(attrMerges, [2]*tree.TreeNode{in, existing})
		default:
			return fmt.Errorf("destination already has a child %q: %w", in.Name(), tree.ErrDuplicateName)
		}
	}

	for _, s := range splices {
		if err := placeAt(s.src, destNode, s.src.Name(), s.replace, opts, copyMode); err != nil {
			return err
		}
	}
	for _, m := range attrMerges {
		if err := mergeAttributes(m[0], m[1], opts, copyMode); err != nil {
			return err
		}
	}
	return nil
}

// mergeAttributes overlays the attributes of node onto destNode and
// recurses over descendants present on both sides. Source descendants
// with no destination counterpart are spliced in.
func mergeAttributes(node, destNode *tree.TreeNode, opts Options, copyMode bool) error {
	// Plan the recursion before mutating.
	var overlays [][2]*tree.TreeNode
	var splices [][2]*tree.TreeNode // src child, destination parent
	var walk func(s, d *tree.TreeNode) error
	walk = func(s, d *tree.TreeNode) error {
		overlays = append(overlays, [2]*tree.TreeNode{s, d})
		for _, cn := range s.Children() {
			c := cn.(*tree.TreeNode)
			if existing := childByName(d, c.Name()); existing != nil {
				if err := walk(c, existing); err != nil {
					return err
				}
				continue
			}
			if err := canPlace(c, d, c.Name(), nil); err != nil {
				return err
			}
			splices = append(splices, [2]*tree.TreeNode{c, d})
		}
		return nil
	}
	if err := walk(node, destNode); err != nil {
		return err
	}

	for _, o := range overlays {
		o[1].Attrs().Merge(o[0].Attrs().Clone())
	}
	for _, s := range splices {
		if err := placeAt(s[0], s[1], s[0].Name(), nil, opts, copyMode); err != nil {
			return err
		}
	}
	return nil
}

// canPlace checks that attaching node under destParent with the given
// name will succeed, without mutating anything. replace names an occupant
// that will be detached before the attachment.
func canPlace(node, destParent *tree.TreeNode, name string, replace *tree.TreeNode) error {
	sep := destParent.Sep()
	if name == "" || strings.Contains(name, sep) {
		return fmt.Errorf("name %q: %w", name, tree.ErrInvalidName)
	}
	if tree.Node(destParent) == tree.Node(node) {
		return fmt.Errorf("%q cannot become a descendant of itself: %w", name, tree.ErrCycle)
	}
	for anc := range destParent.Ancestors() {
		if anc == tree.Node(node) {
			return fmt.Errorf("%q cannot become a descendant of itself: %w", name, tree.ErrCycle)
		}
	}
	for _, sib := range destParent.Children() {
		if sib == tree.Node(node) || sib == tree.Node(replace) {
			continue
		}
		if sib.Name() == name {
			return fmt.Errorf("destination already has a child %q: %w", name, tree.ErrDuplicatePath)
		}
	}
	return nil
}

// cloneSubtree deep-copies a node with cloned attribute bags. nodeOnly
// drops the subtree.
func cloneSubtree(n *tree.TreeNode, nodeOnly bool) *tree.TreeNode {
	out := tree.NewNode(n.Name(), n.Attrs().Clone())
	if nodeOnly {
		return out
	}
	for _, c := range n.Children() {
		child := cloneSubtree(c.(*tree.TreeNode), false)
		if err := child.SetParent(out); err != nil {
			// The source tree already satisfies every invariant the
			// clone re-checks.
			panic(fmt.Sprintf("clone: %v", err))
		}
	}
	return out
}

func childByName(n *tree.TreeNode, name string) *tree.TreeNode {
	for _, c := range n.Children() {
		if c.Name() == name {
			return c.(*tree.TreeNode)
		}
	}
	return nil
}
