package tree

import (
	"errors"
	"testing"
)

func TestBinaryCapacity(t *testing.T) {
	root := NewBinaryNode("root", nil)
	l := NewBinaryNode("l", nil)
	r := NewBinaryNode("r", nil)
	x := NewBinaryNode("x", nil)

	if err := l.SetParent(root); err != nil {
		t.Fatal(err)
	}
	if err := r.SetParent(root); err != nil {
		t.Fatal(err)
	}
	if err := x.SetParent(root); !errors.Is(err, ErrBinaryCapacity) {
		t.Fatalf("third child: %v, want ErrBinaryCapacity", err)
	}
	if len(root.Children()) != 2 {
		t.Errorf("children = %d, want 2", len(root.Children()))
	}
}

func TestBinaryCapacityEnforcedWithSkipChecks(t *testing.T) {
	root := NewBinaryNode("root", nil)
	root.SetConfig(Config{SkipChecks: true})

	for _, name := range []string{"a", "b"} {
		if err := NewBinaryNode(name, nil).SetParent(root); err != nil {
			t.Fatal(err)
		}
	}
	err := NewBinaryNode("c", nil).SetParent(root)
	if !errors.Is(err, ErrBinaryCapacity) {
		t.Fatalf("capacity with SkipChecks: %v, want ErrBinaryCapacity", err)
	}
}

func TestBinarySlots(t *testing.T) {
	root := NewBinaryNode("root", nil)
	l := NewBinaryNode("l", nil)
	r := NewBinaryNode("r", nil)

	if err := root.SetRight(r); err != nil {
		t.Fatal(err)
	}
	if root.Left() != nil {
		t.Error("left slot occupied after SetRight")
	}
	if root.Right() != r {
		t.Error("right slot does not hold r")
	}
	// Only the right slot is occupied; the generic child list skips the
	// empty left slot.
	if got := root.Children(); len(got) != 1 || got[0] != Node(r) {
		t.Errorf("Children() = %v", names(got))
	}

	if err := root.SetLeft(l); err != nil {
		t.Fatal(err)
	}
	if got := root.Children(); len(got) != 2 || got[0] != Node(l) || got[1] != Node(r) {
		t.Errorf("Children() = %v, want [l r]", names(got))
	}
}

func TestBinarySlotReplace(t *testing.T) {
	root := NewBinaryNode("root", nil)
	old := NewBinaryNode("old", nil)
	repl := NewBinaryNode("new", nil)

	if err := root.SetLeft(old); err != nil {
		t.Fatal(err)
	}
	if err := root.SetLeft(repl); err != nil {
		t.Fatal(err)
	}
	if root.Left() != repl {
		t.Error("left slot was not replaced")
	}
	if !old.IsRoot() {
		t.Error("replaced occupant still attached")
	}

	if err := root.SetLeft(nil); err != nil {
		t.Fatal(err)
	}
	if root.Left() != nil {
		t.Error("slot not cleared")
	}
	if !repl.IsRoot() {
		t.Error("cleared occupant still attached")
	}
}

func TestBinarySlotCycle(t *testing.T) {
	root := NewBinaryNode("root", nil)
	l := NewBinaryNode("l", nil)
	if err := root.SetLeft(l); err != nil {
		t.Fatal(err)
	}
	if err := l.SetRight(root); !errors.Is(err, ErrCycle) {
		t.Fatalf("cycle via slot: %v, want ErrCycle", err)
	}
}

func TestBinarySetChildrenWithPlaceholder(t *testing.T) {
	root := NewBinaryNode("root", nil)
	r := NewBinaryNode("r", nil)

	// nil marks an empty left slot.
	if err := root.SetChildren([]Node{nil, r}); err != nil {
		t.Fatal(err)
	}
	if root.Left() != nil || root.Right() != r {
		t.Errorf("slots = (%v, %v), want (nil, r)", root.Left(), root.Right())
	}

	err := root.SetChildren([]Node{r, NewBinaryNode("a", nil), NewBinaryNode("b", nil)})
	if !errors.Is(err, ErrBinaryCapacity) {
		t.Fatalf("three children: %v, want ErrBinaryCapacity", err)
	}
	// Rollback: previous slots intact.
	if root.Right() != r {
		t.Error("slots changed despite failed SetChildren")
	}
}

func TestBinaryVariantMixRejected(t *testing.T) {
	b := NewBinaryNode("b", nil)
	n := NewNode("n", nil)
	if err := n.SetParent(b); !errors.Is(err, ErrWrongNodeType) {
		t.Fatalf("tree node under binary: %v, want ErrWrongNodeType", err)
	}
}
