package tree

import (
	"errors"
	"testing"
)

func TestDAGMultipleParents(t *testing.T) {
	a := NewDAGNode("a", nil)
	b := NewDAGNode("b", nil)
	c := NewDAGNode("c", nil)

	// Diamond: a and b both parent c.
	if err := c.SetParent(a); err != nil {
		t.Fatal(err)
	}
	if err := c.SetParent(b); err != nil {
		t.Fatal(err)
	}

	if got := len(c.Parents()); got != 2 {
		t.Errorf("parents = %d, want 2", got)
	}
	if len(a.Children()) != 1 || len(b.Children()) != 1 {
		t.Error("child links missing on one parent")
	}
}

func TestDAGDuplicateEdge(t *testing.T) {
	a := NewDAGNode("a", nil)
	c := NewDAGNode("c", nil)
	if err := c.SetParent(a); err != nil {
		t.Fatal(err)
	}
	if err := c.SetParent(a); !errors.Is(err, ErrDuplicateEdge) {
		t.Fatalf("repeated edge: %v, want ErrDuplicateEdge", err)
	}
}

func TestDAGCycle(t *testing.T) {
	a := NewDAGNode("a", nil)
	b := NewDAGNode("b", nil)
	c := NewDAGNode("c", nil)
	if err := b.SetParent(a); err != nil {
		t.Fatal(err)
	}
	if err := c.SetParent(b); err != nil {
		t.Fatal(err)
	}

	if err := a.SetParent(c); !errors.Is(err, ErrCycle) {
		t.Fatalf("cycle: %v, want ErrCycle", err)
	}
	// Cycle through a second parent chain.
	d := NewDAGNode("d", nil)
	if err := c.SetParent(d); err != nil {
		t.Fatal(err)
	}
	if err := d.SetParent(c); !errors.Is(err, ErrCycle) {
		t.Fatalf("cycle via second parent: %v, want ErrCycle", err)
	}
}

func TestDAGDuplicateNamesAllowed(t *testing.T) {
	a := NewDAGNode("a", nil)
	for range 2 {
		if err := NewDAGNode("x", nil).SetParent(a); err != nil {
			t.Fatalf("duplicate DAG name rejected: %v", err)
		}
	}
	if len(a.Children()) != 2 {
		t.Errorf("children = %d, want 2", len(a.Children()))
	}
}

func TestDAGAddParents(t *testing.T) {
	a := NewDAGNode("a", nil)
	b := NewDAGNode("b", nil)
	c := NewDAGNode("c", nil)

	if err := c.AddParents([]Node{a, b}); err != nil {
		t.Fatal(err)
	}
	if got := len(c.Parents()); got != 2 {
		t.Errorf("parents = %d, want 2", got)
	}

	err := c.AddParents([]Node{a})
	if !errors.Is(err, ErrDuplicateEdge) {
		t.Fatalf("re-adding parent: %v, want ErrDuplicateEdge", err)
	}
}

func TestDAGDetach(t *testing.T) {
	a := NewDAGNode("a", nil)
	b := NewDAGNode("b", nil)
	c := NewDAGNode("c", nil)
	if err := c.AddParents([]Node{a, b}); err != nil {
		t.Fatal(err)
	}

	c.Detach()
	if !c.IsRoot() {
		t.Error("c still has parents")
	}
	if len(a.Children()) != 0 || len(b.Children()) != 0 {
		t.Error("stale child links after detach")
	}
}

func TestDAGAncestorsDeduplicated(t *testing.T) {
	// Diamond: root -> {l, r} -> leaf. root must appear once.
	root := NewDAGNode("root", nil)
	l := NewDAGNode("l", nil)
	r := NewDAGNode("r", nil)
	leaf := NewDAGNode("leaf", nil)
	if err := l.SetParent(root); err != nil {
		t.Fatal(err)
	}
	if err := r.SetParent(root); err != nil {
		t.Fatal(err)
	}
	if err := leaf.AddParents([]Node{l, r}); err != nil {
		t.Fatal(err)
	}

	count := 0
	for n := range leaf.Ancestors() {
		if n == Node(root) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("root yielded %d times, want 1", count)
	}
}
