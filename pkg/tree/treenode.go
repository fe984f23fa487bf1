package tree

import "fmt"

// TreeNode is the single-parent, name-addressed node variant. Children of
// one parent must carry distinct names, which makes every node in the tree
// reachable through a unique path (see [PathName]).
//
// The zero value is not usable - use [NewNode].
type TreeNode struct {
	baseNode
}

// NewNode creates a standalone tree node with the given name and
// attributes. attrs may be nil.
func NewNode(name string, attrs Attrs) *TreeNode {
	n := &TreeNode{}
	n.init(n, name, attrs)
	return n
}

// SetParent moves the node (and its subtree) under parent, replacing any
// existing parent link. Passing nil detaches the node.
func (n *TreeNode) SetParent(parent Node) error {
	return setParent(n, parent, false)
}

func (n *TreeNode) validateNewParent(parent Node) error {
	if parent.Config().SkipChecks {
		return nil
	}
	if _, ok := parent.(*TreeNode); !ok {
		return fmt.Errorf("parent of %q is %T: %w", n.name, parent, ErrWrongNodeType)
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

func (n *TreeNode) validateNewChildren(children []Node) error {
	skip := n.Config().SkipChecks
	names := make(map[string]struct{}, len(children))
	for _, c := range children {
		if c == nil {
			return fmt.Errorf("nil child: %w", ErrWrongNodeType)
		}
		if skip {
			continue
		}
		if _, ok := c.(*TreeNode); !ok {
			return fmt.Errorf("child of %q is %T: %w", n.name, c, ErrWrongNodeType)
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
