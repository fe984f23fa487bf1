package tree

import "fmt"

// DAGNode is the multi-parent node variant. A DAG node may be attached
// under any number of parents, names need not be unique, and only
// acyclicity is enforced.
//
// The zero value is not usable - use [NewDAGNode].
type DAGNode struct {
	baseNode
}

// NewDAGNode creates a standalone DAG node with the given name and
// attributes. attrs may be nil.
func NewDAGNode(name string, attrs Attrs) *DAGNode {
	n := &DAGNode{}
	n.init(n, name, attrs)
	return n
}

// SetParent adds parent to the node's parent set; existing parents are
// kept. Passing nil detaches the node from all parents.
func (n *DAGNode) SetParent(parent Node) error {
	return setParent(n, parent, true)
}

// AddParents attaches the node under each given parent, validating the
// batch before committing any edge.
func (n *DAGNode) AddParents(parents []Node) error {
	for _, p := range parents {
		if p == nil {
			return fmt.Errorf("nil parent: %w", ErrWrongNodeType)
		}
		if err := n.validateNewParent(p); err != nil {
			return err
		}
	}
	seen := make(map[Node]struct{}, len(parents))
	for _, p := range parents {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("parent %q listed twice: %w", p.Name(), ErrDuplicateEdge)
		}
		seen[p] = struct{}{}
	}
	for _, p := range parents {
		p.linkChild(n, -1)
		n.parents = append(n.parents, p)
	}
	return nil
}

func (n *DAGNode) validateNewParent(parent Node) error {
	if parent.Config().SkipChecks {
		return nil
	}
	if _, ok := parent.(*DAGNode); !ok {
		return fmt.Errorf("parent of %q is %T: %w", n.name, parent, ErrWrongNodeType)
	}
	if err := checkName(n.name, parent.Sep()); err != nil {
		return err
	}
	if isAncestor(Node(n), parent) {
		return fmt.Errorf("%q cannot become a descendant of itself: %w", n.name, ErrCycle)
	}
	for _, p := range n.parents {
		if p == parent {
			return fmt.Errorf("%q is already a parent of %q: %w", parent.Name(), n.name, ErrDuplicateEdge)
		}
	}
	return nil
}

func (n *DAGNode) validateNewChildren(children []Node) error {
	skip := n.Config().SkipChecks
	seen := make(map[Node]struct{}, len(children))
	for _, c := range children {
		if c == nil {
			return fmt.Errorf("nil child: %w", ErrWrongNodeType)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("child %q listed twice: %w", c.Name(), ErrDuplicateEdge)
		}
		seen[c] = struct{}{}
		if skip {
			continue
		}
		if _, ok := c.(*DAGNode); !ok {
			return fmt.Errorf("child of %q is %T: %w", n.name, c, ErrWrongNodeType)
		}
		if isAncestor(c, Node(n)) {
			return fmt.Errorf("%q cannot become a descendant of itself: %w", c.Name(), ErrCycle)
		}
	}
	return nil
}
