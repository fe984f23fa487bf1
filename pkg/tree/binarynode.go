package tree

import "fmt"

// BinaryNode is a tree node capped at two children. The left and right
// positions map onto the first two generic child slots, so positional and
// child-list access stay consistent. A slot can be empty while the other
// is occupied; empty slots are omitted from [Node.Children].
//
// The capacity invariant is always enforced, even when [Config.SkipChecks]
// is set.
//
// The zero value is not usable - use [NewBinaryNode].
type BinaryNode struct {
	baseNode
}

// NewBinaryNode creates a standalone binary node with the given name and
// attributes. attrs may be nil.
func NewBinaryNode(name string, attrs Attrs) *BinaryNode {
	n := &BinaryNode{}
	n.init(n, name, attrs)
	return n
}

// SetParent moves the node under parent into its first free slot,
// replacing any existing parent link. Passing nil detaches the node.
func (n *BinaryNode) SetParent(parent Node) error {
	return setParent(n, parent, false)
}

// Left returns the occupant of the left slot, or nil.
func (n *BinaryNode) Left() *BinaryNode { return n.slot(0) }

// Right returns the occupant of the right slot, or nil.
func (n *BinaryNode) Right() *BinaryNode { return n.slot(1) }

// SetLeft places child in the left slot. A current occupant is detached
// first; the occupant's subtree stays intact and becomes a standalone
// tree. Passing nil clears the slot.
func (n *BinaryNode) SetLeft(child *BinaryNode) error { return n.setSlot(child, 0) }

// SetRight places child in the right slot, like [BinaryNode.SetLeft].
func (n *BinaryNode) SetRight(child *BinaryNode) error { return n.setSlot(child, 1) }

func (n *BinaryNode) slot(at int) *BinaryNode {
	if at >= len(n.children) || n.children[at] == nil {
		return nil
	}
	return n.children[at].(*BinaryNode)
}

func (n *BinaryNode) setSlot(child *BinaryNode, at int) error {
	cur := n.slot(at)
	if child != nil && Node(child) != Node(cur) {
		if !n.Config().SkipChecks {
			if err := checkName(child.Name(), n.Sep()); err != nil {
				return err
			}
			if isAncestor(Node(child), Node(n)) {
				return fmt.Errorf("%q cannot become a descendant of itself: %w", child.Name(), ErrCycle)
			}
			if other := n.slot(1 - at); other != nil && other.Name() == child.Name() && Node(other) != Node(child) {
				return fmt.Errorf("%q already has a child %q: %w", n.name, child.Name(), ErrDuplicateName)
			}
		}
		if h := child.hooks.ValidateNewParent; h != nil {
			if err := h(child, n); err != nil {
				return err
			}
		}
	}
	if cur != nil && Node(cur) != Node(child) {
		cur.Detach()
	}
	if child == nil {
		return nil
	}
	child.Detach()
	n.linkChild(child, at)
	child.parents = append(child.parents, Node(n))
	return nil
}

func (n *BinaryNode) validateNewParent(parent Node) error {
	pb, ok := parent.(*BinaryNode)
	if !ok {
		if parent.Config().SkipChecks {
			return nil
		}
		return fmt.Errorf("parent of %q is %T: %w", n.name, parent, ErrWrongNodeType)
	}
	occupied := 0
	for _, c := range pb.children {
		if c != nil && c != Node(n) {
			occupied++
		}
	}
	if occupied >= 2 {
		return fmt.Errorf("%q: %w", parent.Name(), ErrBinaryCapacity)
	}
	if parent.Config().SkipChecks {
		return nil
	}
	if err := checkName(n.name, parent.Sep()); err != nil {
		return err
	}
	if isAncestor(Node(n), parent) {
		return fmt.Errorf("%q cannot become a descendant of itself: %w", n.name, ErrCycle)
	}
	for _, sib := range parent.Children() {
		if sib != Node(n) && sib.Name() == n.name {
			return fmt.Errorf("parent %q already has a child %q: %w", parent.Name(), n.name, ErrDuplicateName)
		}
	}
	return nil
}

func (n *BinaryNode) validateNewChildren(children []Node) error {
	if len(children) > 2 {
		return fmt.Errorf("%d children for %q: %w", len(children), n.name, ErrBinaryCapacity)
	}
	skip := n.Config().SkipChecks
	names := make(map[string]struct{}, len(children))
	for _, c := range children {
		if c == nil { // empty slot placeholder
			continue
		}
		if _, ok := c.(*BinaryNode); !ok {
			if skip {
				continue
			}
			return fmt.Errorf("child of %q is %T: %w", n.name, c, ErrWrongNodeType)
		}
		if skip {
			continue
		}
		if err := checkName(c.Name(), n.Sep()); err != nil {
			return err
		}
		if isAncestor(c, Node(n)) {
			return fmt.Errorf("%q cannot become a descendant of itself: %w", c.Name(), ErrCycle)
		}
		if _, dup := names[c.Name()]; dup {
			return fmt.Errorf("two children named %q: %w", c.Name(), ErrDuplicateName)
		}
		names[c.Name()] = struct{}{}
	}
	return nil
}

// linkChild places child at the given slot, or into the first free slot
// when at is negative. The slice is padded with nil placeholders so slot
// positions stay stable.
func (n *BinaryNode) linkChild(child Node, at int) {
	if at < 0 {
		for i, c := range n.children {
			if c == nil {
				n.children[i] = child
				return
			}
		}
		n.children = append(n.children, child)
		return
	}
	for len(n.children) <= at {
		n.children = append(n.children, nil)
	}
	n.children[at] = child
}

// unlinkChild empties the child's slot, keeping the other slot in place.
func (n *BinaryNode) unlinkChild(child Node) {
	for i, c := range n.children {
		if c == child {
			n.children[i] = nil
			break
		}
	}
	for len(n.children) > 0 && n.children[len(n.children)-1] == nil {
		n.children = n.children[:len(n.children)-1]
	}
}
