package tree

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DefaultSep is the path separator used when a root has no explicit one.
const DefaultSep = "/"

// Config controls integrity checking for a tree. It is set on the root at
// construction time and consulted for every mutation inside that tree.
//
// Disabling checks trades safety for speed during bulk construction from
// trusted input. With SkipChecks set, cycle detection, variant type checks,
// and name/path uniqueness checks are all skipped and behavior on violation
// is undefined. The binary two-child capacity check is never skipped.
type Config struct {
	SkipChecks bool
}

// Hooks are user-supplied validation callbacks invoked before a mutation
// commits. They run in addition to the engine's own checks and can veto a
// mutation by returning an error. Either field may be nil.
type Hooks struct {
	// ValidateNewParent is called on the child with the prospective parent.
	ValidateNewParent func(n, parent Node) error

	// ValidateNewChildren is called on the parent with the prospective
	// children (the full batch for SetChildren/Extend).
	ValidateNewChildren func(n Node, children []Node) error
}

// Node is the structural abstraction shared by [TreeNode], [DAGNode], and
// [BinaryNode]. It covers identity, the attribute bag, parent/children
// navigation, rollback-safe mutation, and lazy relationship sequences.
//
// The interface is closed: only the three variants in this package
// implement it. Behavior is extended through [Hooks], not new
// implementations.
type Node interface {
	// Name returns the node's name. Tree and binary variants enforce
	// sibling name uniqueness; DAG names may repeat.
	Name() string

	// SetName renames the node. It fails with ErrInvalidName for an empty
	// name or one containing the separator, and with ErrDuplicateName if a
	// sibling already carries the name.
	SetName(name string) error

	// Sep returns the path separator of the tree this node belongs to.
	// The separator is stored on the root and inherited downward.
	Sep() string

	// SetSep sets the separator on this node. Only meaningful on roots.
	SetSep(sep string)

	// Attrs returns the node's attribute bag. Never nil. The returned map
	// is the live bag; modifications are visible to the node.
	Attrs() Attrs

	// Set stores an attribute value.
	Set(key string, value any)

	// Get reads an attribute value, reporting whether the key exists.
	Get(key string) (any, bool)

	// Parent returns the first parent, or nil for a root. For DAG nodes
	// with several parents this is the earliest-attached one.
	Parent() Node

	// Parents returns a copy of all parent references. Tree and binary
	// nodes have at most one.
	Parents() []Node

	// Children returns a copy of the ordered child list. Empty binary
	// slots are omitted.
	Children() []Node

	// SetParent moves the node under parent. For tree and binary variants
	// any existing parent link is replaced; for DAG variants the parent is
	// added. A nil parent detaches. On validation failure no state
	// changes.
	SetParent(parent Node) error

	// SetChildren replaces the node's children with the given batch. The
	// whole batch is validated first; on failure nothing is attached or
	// detached.
	SetChildren(children []Node) error

	// Append attaches one child after the existing ones.
	Append(child Node) error

	// Extend attaches a batch of children after the existing ones,
	// validating the batch as a whole before committing.
	Extend(children []Node) error

	// Detach removes the node (and its subtree) from all parents.
	Detach()

	// Root walks parent references to the top of the tree.
	Root() Node

	// Depth returns the number of edges between the node and its root.
	// A root has depth 0.
	Depth() int

	// IsRoot reports whether the node has no parents.
	IsRoot() bool

	// IsLeaf reports whether the node has no children.
	IsLeaf() bool

	// Ancestors yields parents upward to the root, excluding the node
	// itself. For DAG nodes all distinct ancestors are yielded. The
	// sequence is lazy and re-derived from current structure each time it
	// is ranged over.
	Ancestors() iter.Seq[Node]

	// Descendants yields the subtree below the node in pre-order,
	// excluding the node itself.
	Descendants() iter.Seq[Node]

	// Siblings yields the other children of the node's parents.
	Siblings() iter.Seq[Node]

	// Leaves yields the descendants that have no children.
	Leaves() iter.Seq[Node]

	// Config returns the integrity-check configuration of this node's
	// tree (read from the root).
	Config() Config

	// SetConfig sets the configuration on this node. Only meaningful on
	// roots.
	SetConfig(cfg Config)

	// SetHooks installs user validation hooks on this node.
	SetHooks(h Hooks)

	// validateNewParent checks whether parent may become this node's
	// parent (replace semantics for tree/binary, additive for DAG).
	validateNewParent(parent Node) error

	// validateNewChildren checks whether children may replace this node's
	// child list wholesale.
	validateNewChildren(children []Node) error

	// linkChild inserts child into the child list. at < 0 means append
	// (or first free slot for binary); otherwise it addresses a binary
	// slot. The caller has already validated.
	linkChild(child Node, at int)

	// unlinkChild removes child from the child list.
	unlinkChild(child Node)

	base() *baseNode
}

// baseNode carries the state and shared behavior of all variants. The
// zero value is not usable: constructors set the self reference that lets
// shared methods dispatch back through the interface.
type baseNode struct {
	name     string
	sep      string
	attrs    Attrs
	parents  []Node
	children []Node // binary variant may hold nil placeholder slots
	cfg      Config
	hooks    Hooks
	self     Node
}

func (b *baseNode) init(self Node, name string, attrs Attrs) {
	if attrs == nil {
		attrs = Attrs{}
	}
	b.self = self
	b.name = name
	b.attrs = attrs
}

func (b *baseNode) base() *baseNode { return b }

func (b *baseNode) Name() string { return b.name }

func (b *baseNode) SetName(name string) error {
	if err := checkName(name, b.self.Sep()); err != nil {
		return err
	}
	for _, p := range b.parents {
		for _, sib := range p.Children() {
			if sib != b.self && sib.Name() == name {
				return fmt.Errorf("rename %q to %q: %w", b.name, name, ErrDuplicateName)
			}
		}
	}
	b.name = name
	return nil
}

func (b *baseNode) Sep() string {
	sep := b.self.Root().base().sep
	if sep == "" {
		return DefaultSep
	}
	return sep
}

func (b *baseNode) SetSep(sep string) { b.sep = sep }

func (b *baseNode) Attrs() Attrs { return b.attrs }

func (b *baseNode) Set(key string, value any) { b.attrs[key] = value }

func (b *baseNode) Get(key string) (any, bool) {
	v, ok := b.attrs[key]
	return v, ok
}

func (b *baseNode) Parent() Node {
	if len(b.parents) == 0 {
		return nil
	}
	return b.parents[0]
}

func (b *baseNode) Parents() []Node { return slices.Clone(b.parents) }

func (b *baseNode) Children() []Node {
	out := make([]Node, 0, len(b.children))
	for _, c := range b.children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (b *baseNode) SetChildren(children []Node) error {
	return setChildren(b.self, children)
}

func (b *baseNode) Append(child Node) error {
	return extendChildren(b.self, []Node{child})
}

func (b *baseNode) Extend(children []Node) error {
	return extendChildren(b.self, children)
}

func (b *baseNode) Detach() {
	for _, p := range slices.Clone(b.parents) {
		p.unlinkChild(b.self)
	}
	b.parents = nil
}

func (b *baseNode) Root() Node {
	n := b.self
	for {
		p := n.Parent()
		if p == nil {
			return n
		}
		n = p
	}
}

func (b *baseNode) Depth() int {
	depth := 0
	for p := b.self.Parent(); p != nil; p = p.Parent() {
		depth++
	}
	return depth
}

func (b *baseNode) IsRoot() bool { return len(b.parents) == 0 }

func (b *baseNode) IsLeaf() bool { return len(b.self.Children()) == 0 }

func (b *baseNode) Ancestors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		seen := map[Node]struct{}{}
		queue := slices.Clone(b.parents)
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			if !yield(n) {
				return
			}
			queue = append(queue, n.Parents()...)
		}
	}
}

func (b *baseNode) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var walk func(n Node) bool
		walk = func(n Node) bool {
			for _, c := range n.Children() {
				if !yield(c) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(b.self)
	}
}

func (b *baseNode) Siblings() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		seen := map[Node]struct{}{}
		for _, p := range b.parents {
			for _, c := range p.Children() {
				if c == b.self {
					continue
				}
				if _, dup := seen[c]; dup {
					continue
				}
				seen[c] = struct{}{}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (b *baseNode) Leaves() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n := range b.self.Descendants() {
			if n.IsLeaf() {
				if !yield(n) {
					return
				}
			}
		}
	}
}

func (b *baseNode) Config() Config { return b.self.Root().base().cfg }

func (b *baseNode) SetConfig(cfg Config) { b.cfg = cfg }

func (b *baseNode) SetHooks(h Hooks) { b.hooks = h }

// baseNode default child linkage: ordered append-only list.

func (b *baseNode) linkChild(child Node, at int) {
	_ = at // positional slots exist only on the binary variant
	b.children = append(b.children, child)
}

func (b *baseNode) unlinkChild(child Node) {
	for i, c := range b.children {
		if c == child {
			b.children = slices.Delete(b.children, i, i+1)
			return
		}
	}
}

// removeParent drops a single parent back-reference.
func (b *baseNode) removeParent(p Node) {
	for i, cur := range b.parents {
		if cur == p {
			b.parents = slices.Delete(b.parents, i, i+1)
			return
		}
	}
}

// checkName validates a node name against a separator.
func checkName(name, sep string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidName)
	}
	if strings.Contains(name, sep) {
		return fmt.Errorf("name %q contains separator %q: %w", name, sep, ErrInvalidName)
	}
	return nil
}

// isAncestor reports whether a is b or an ancestor of b.
func isAncestor(a, b Node) bool {
	if a == b {
		return true
	}
	for anc := range b.Ancestors() {
		if anc == a {
			return true
		}
	}
	return false
}
