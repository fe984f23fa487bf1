package tree

import "fmt"

// The mutation engine commits structural changes in two phases: every
// check (variant validation, then user hooks) runs against the untouched
// structure, and only a fully validated operation reaches the link/unlink
// phase, which cannot fail. A rejected mutation therefore leaves no
// partial state behind.

// setParent reparents child under parent. additive keeps existing parent
// links (DAG variant); otherwise the previous parent is replaced.
func setParent(child Node, parent Node, additive bool) error {
	if parent == nil {
		child.Detach()
		return nil
	}
	if err := child.validateNewParent(parent); err != nil {
		return err
	}
	cb := child.base()
	if h := cb.hooks.ValidateNewParent; h != nil {
		if err := h(child, parent); err != nil {
			return err
		}
	}
	if h := parent.base().hooks.ValidateNewChildren; h != nil {
		if err := h(parent, []Node{child}); err != nil {
			return err
		}
	}

	if !additive {
		child.Detach()
	}
	parent.linkChild(child, -1)
	cb.parents = append(cb.parents, parent)
	return nil
}

// setChildren replaces parent's child list with the given batch. Nil
// entries are legal only for the binary variant, where they mark an empty
// slot.
func setChildren(parent Node, children []Node) error {
	if err := parent.validateNewChildren(children); err != nil {
		return err
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if h := c.base().hooks.ValidateNewParent; h != nil {
			if err := h(c, parent); err != nil {
				return err
			}
		}
	}
	if h := parent.base().hooks.ValidateNewChildren; h != nil {
		if err := h(parent, children); err != nil {
			return err
		}
	}

	pb := parent.base()
	for _, old := range pb.children {
		if old != nil {
			old.base().removeParent(parent)
		}
	}
	pb.children = nil
	for i, c := range children {
		if c == nil {
			parent.linkChild(nil, i)
			continue
		}
		detachForAttach(c)
		parent.linkChild(c, i)
		c.base().parents = append(c.base().parents, parent)
	}
	return nil
}

// extendChildren appends a batch of children after the existing ones.
func extendChildren(parent Node, children []Node) error {
	for _, c := range children {
		if c == nil {
			return fmt.Errorf("nil child: %w", ErrWrongNodeType)
		}
		if err := c.validateNewParent(parent); err != nil {
			return err
		}
	}
	if err := validateBatch(parent, children); err != nil {
		return err
	}
	for _, c := range children {
		if h := c.base().hooks.ValidateNewParent; h != nil {
			if err := h(c, parent); err != nil {
				return err
			}
		}
	}
	if h := parent.base().hooks.ValidateNewChildren; h != nil {
		if err := h(parent, children); err != nil {
			return err
		}
	}

	for _, c := range children {
		detachForAttach(c)
		parent.linkChild(c, -1)
		c.base().parents = append(c.base().parents, parent)
	}
	return nil
}

// validateBatch covers the checks that only make sense across a whole
// extend batch: name collisions inside the batch, binary capacity against
// existing occupancy, and repeated DAG edges.
func validateBatch(parent Node, children []Node) error {
	switch parent.(type) {
	case *TreeNode, *BinaryNode:
		if !parent.Config().SkipChecks {
			names := make(map[string]struct{}, len(children))
			for _, c := range children {
				if _, dup := names[c.Name()]; dup {
					return fmt.Errorf("two children named %q: %w", c.Name(), ErrDuplicateName)
				}
				names[c.Name()] = struct{}{}
			}
		}
	case *DAGNode:
		seen := make(map[Node]struct{}, len(children))
		for _, c := range children {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("child %q listed twice: %w", c.Name(), ErrDuplicateEdge)
			}
			seen[c] = struct{}{}
		}
	}
	if bp, ok := parent.(*BinaryNode); ok {
		occupied := 0
		for _, c := range bp.children {
			if c != nil && !containsNode(children, c) {
				occupied++
			}
		}
		if occupied+len(children) > 2 {
			return fmt.Errorf("%q: %w", parent.Name(), ErrBinaryCapacity)
		}
	}
	return nil
}

// detachForAttach clears the links that a fresh attachment replaces. DAG
// nodes keep their other parents; single-parent variants are detached
// entirely.
func detachForAttach(c Node) {
	if _, isDAG := c.(*DAGNode); isDAG {
		return
	}
	c.Detach()
}

func containsNode(nodes []Node, n Node) bool {
	for _, cur := range nodes {
		if cur == n {
			return true
		}
	}
	return false
}
