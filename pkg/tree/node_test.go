package tree

import (
	"errors"
	"testing"
)

// chain builds root -> a -> b -> ... and returns all nodes in order.
func chain(t *testing.T, names ...string) []*TreeNode {
	t.Helper()
	nodes := make([]*TreeNode, len(names))
	for i, name := range names {
		nodes[i] = NewNode(name, nil)
		if i > 0 {
			if err := nodes[i].SetParent(nodes[i-1]); err != nil {
				t.Fatalf("SetParent(%s -> %s): %v", name, names[i-1], err)
			}
		}
	}
	return nodes
}

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestSetParent(t *testing.T) {
	tests := []struct {
		name    string
		run     func(t *testing.T) error
		wantErr error
	}{
		{
			name: "Simple",
			run: func(t *testing.T) error {
				a := NewNode("a", nil)
				b := NewNode("b", nil)
				return b.SetParent(a)
			},
		},
		{
			name: "SelfParent",
			run: func(t *testing.T) error {
				a := NewNode("a", nil)
				return a.SetParent(a)
			},
			wantErr: ErrCycle,
		},
		{
			name: "AncestorAsChild",
			run: func(t *testing.T) error {
				nodes := chain(t, "a", "b", "c")
				return nodes[0].SetParent(nodes[2])
			},
			wantErr: ErrCycle,
		},
		{
			name: "SiblingNameClash",
			run: func(t *testing.T) error {
				nodes := chain(t, "a", "b")
				dup := NewNode("b", nil)
				return dup.SetParent(nodes[0])
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "WrongVariant",
			run: func(t *testing.T) error {
				a := NewNode("a", nil)
				d := NewDAGNode("d", nil)
				return d.SetParent(a)
			},
			wantErr: ErrWrongNodeType,
		},
		{
			name: "EmptyName",
			run: func(t *testing.T) error {
				a := NewNode("a", nil)
				anon := NewNode("", nil)
				return anon.SetParent(a)
			},
			wantErr: ErrInvalidName,
		},
		{
			name: "NameContainsSeparator",
			run: func(t *testing.T) error {
				a := NewNode("a", nil)
				bad := NewNode("b/c", nil)
				return bad.SetParent(a)
			},
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(t)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetParentReplacesPrevious(t *testing.T) {
	a := NewNode("a", nil)
	b := NewNode("b", nil)
	c := NewNode("c", nil)
	if err := c.SetParent(a); err != nil {
		t.Fatal(err)
	}
	if err := c.SetParent(b); err != nil {
		t.Fatal(err)
	}

	if len(a.Children()) != 0 {
		t.Errorf("a still has %d children", len(a.Children()))
	}
	if got := c.Parent(); got != Node(b) {
		t.Errorf("parent = %v, want b", got)
	}
	if got := b.Children(); len(got) != 1 || got[0] != Node(c) {
		t.Errorf("b.Children() = %v", names(got))
	}
}

func TestSetParentRollback(t *testing.T) {
	// A failed reparent must leave the previous attachment untouched.
	nodes := chain(t, "a", "b", "c")
	a, b, c := nodes[0], nodes[1], nodes[2]

	if err := a.SetParent(c); !errors.Is(err, ErrCycle) {
		t.Fatalf("error = %v, want ErrCycle", err)
	}

	if b.Parent() != Node(a) {
		t.Errorf("b.Parent() changed to %v", b.Parent())
	}
	if c.Parent() != Node(b) {
		t.Errorf("c.Parent() changed to %v", c.Parent())
	}
	if !a.IsRoot() {
		t.Error("a is no longer a root")
	}
}

func TestSetChildren(t *testing.T) {
	t.Run("Replaces", func(t *testing.T) {
		a := NewNode("a", nil)
		old := NewNode("old", nil)
		if err := a.Append(old); err != nil {
			t.Fatal(err)
		}

		b, c := NewNode("b", nil), NewNode("c", nil)
		if err := a.SetChildren([]Node{b, c}); err != nil {
			t.Fatal(err)
		}

		if got := names(a.Children()); len(got) != 2 || got[0] != "b" || got[1] != "c" {
			t.Errorf("children = %v, want [b c]", got)
		}
		if !old.IsRoot() {
			t.Error("replaced child still has a parent")
		}
	})

	t.Run("BatchRollback", func(t *testing.T) {
		// The third child clashes; the first two must not be attached.
		a := NewNode("a", nil)
		existing := NewNode("keep", nil)
		if err := a.Append(existing); err != nil {
			t.Fatal(err)
		}

		b := NewNode("b", nil)
		c := NewNode("c", nil)
		dup := NewNode("b", nil)
		err := a.SetChildren([]Node{b, c, dup})
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("error = %v, want ErrDuplicateName", err)
		}

		if got := names(a.Children()); len(got) != 1 || got[0] != "keep" {
			t.Errorf("children = %v, want [keep]", got)
		}
		for _, n := range []*TreeNode{b, c, dup} {
			if !n.IsRoot() {
				t.Errorf("%s was attached despite batch failure", n.Name())
			}
		}
	})

	t.Run("ExtendKeepsExisting", func(t *testing.T) {
		nodes := chain(t, "a", "b")
		a := nodes[0]
		c, d := NewNode("c", nil), NewNode("d", nil)
		if err := a.Extend([]Node{c, d}); err != nil {
			t.Fatal(err)
		}
		if got := names(a.Children()); len(got) != 3 || got[0] != "b" {
			t.Errorf("children = %v, want [b c d]", got)
		}
	})

	t.Run("ExtendRollback", func(t *testing.T) {
		nodes := chain(t, "a", "b")
		a := nodes[0]
		c := NewNode("c", nil)
		dup := NewNode("b", nil)
		err := a.Extend([]Node{c, dup})
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("error = %v, want ErrDuplicateName", err)
		}
		if got := names(a.Children()); len(got) != 1 || got[0] != "b" {
			t.Errorf("children = %v, want [b]", got)
		}
		if !c.IsRoot() {
			t.Error("c was attached despite batch failure")
		}
	})
}

func TestBidirectionalConsistency(t *testing.T) {
	nodes := chain(t, "a", "b", "c")
	b := nodes[1]
	d := NewNode("d", nil)
	if err := d.SetParent(b); err != nil {
		t.Fatal(err)
	}

	var check func(n Node)
	check = func(n Node) {
		for _, c := range n.Children() {
			found := false
			for _, p := range c.Parents() {
				if p == n {
					found = true
				}
			}
			if !found {
				t.Errorf("%s not back-linked to parent %s", c.Name(), n.Name())
			}
			check(c)
		}
	}
	check(nodes[0])
}

func TestLazyAccessors(t *testing.T) {
	// a -> {b -> {d, e}, c}
	a := NewNode("a", nil)
	b := NewNode("b", nil)
	c := NewNode("c", nil)
	d := NewNode("d", nil)
	e := NewNode("e", nil)
	for _, pair := range [][2]*TreeNode{{b, a}, {c, a}, {d, b}, {e, b}} {
		if err := pair[0].SetParent(pair[1]); err != nil {
			t.Fatal(err)
		}
	}

	collect := func(seq func(func(Node) bool)) []string {
		var out []string
		seq(func(n Node) bool {
			out = append(out, n.Name())
			return true
		})
		return out
	}

	if got := collect(d.Ancestors()); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("ancestors of d = %v, want [b a]", got)
	}
	if got := collect(a.Descendants()); len(got) != 4 || got[0] != "b" || got[3] != "c" {
		t.Errorf("descendants of a = %v, want [b d e c]", got)
	}
	if got := collect(b.Siblings()); len(got) != 1 || got[0] != "c" {
		t.Errorf("siblings of b = %v, want [c]", got)
	}
	if got := collect(a.Leaves()); len(got) != 3 {
		t.Errorf("leaves of a = %v, want [d e c]", got)
	}

	// Restartable: a second consumption reflects current structure.
	if err := e.SetParent(c); err != nil {
		t.Fatal(err)
	}
	if got := collect(a.Descendants()); len(got) != 4 || got[3] != "e" {
		t.Errorf("descendants after move = %v, want [b d c e]", got)
	}
}

func TestHooksVeto(t *testing.T) {
	veto := errors.New("vetoed")
	a := NewNode("a", nil)
	b := NewNode("b", nil)
	b.SetHooks(Hooks{
		ValidateNewParent: func(n, parent Node) error { return veto },
	})

	if err := b.SetParent(a); !errors.Is(err, veto) {
		t.Fatalf("error = %v, want veto", err)
	}
	if !b.IsRoot() {
		t.Error("b was attached despite hook veto")
	}
}

func TestSkipChecks(t *testing.T) {
	a := NewNode("a", nil)
	a.SetConfig(Config{SkipChecks: true})

	// Duplicate sibling names are not detected when checks are off.
	for range 2 {
		dup := NewNode("x", nil)
		if err := dup.SetParent(a); err != nil {
			t.Fatalf("SetParent with SkipChecks: %v", err)
		}
	}
	if len(a.Children()) != 2 {
		t.Errorf("children = %d, want 2", len(a.Children()))
	}

	if err := CheckPathUnique(a); !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("CheckPathUnique = %v, want ErrDuplicatePath", err)
	}
}

func TestAttrs(t *testing.T) {
	n := NewNode("n", Attrs{"x": 1})
	n.Set("y", "two")

	if v, ok := n.Get("x"); !ok || v != 1 {
		t.Errorf("Get(x) = %v, %v", v, ok)
	}
	if v, ok := n.Get("y"); !ok || v != "two" {
		t.Errorf("Get(y) = %v, %v", v, ok)
	}
	if _, ok := n.Get("absent"); ok {
		t.Error("Get(absent) reported a value")
	}

	clone := n.Attrs().Clone()
	clone["x"] = 99
	if v, _ := n.Get("x"); v != 1 {
		t.Error("Clone is not independent")
	}
}

func TestSetName(t *testing.T) {
	nodes := chain(t, "a", "b")
	c := NewNode("c", nil)
	if err := c.SetParent(nodes[0]); err != nil {
		t.Fatal(err)
	}

	if err := c.SetName("b"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("rename to sibling name: %v, want ErrDuplicateName", err)
	}
	if err := c.SetName(""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("rename to empty: %v, want ErrInvalidName", err)
	}
	if err := c.SetName("renamed"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if c.Name() != "renamed" {
		t.Errorf("name = %q", c.Name())
	}
}

func TestDepthAndRoot(t *testing.T) {
	nodes := chain(t, "a", "b", "c")
	if got := nodes[2].Depth(); got != 2 {
		t.Errorf("depth of c = %d, want 2", got)
	}
	if got := nodes[2].Root(); got != Node(nodes[0]) {
		t.Errorf("root of c = %v, want a", got)
	}
	if !nodes[0].IsRoot() || nodes[1].IsRoot() {
		t.Error("IsRoot misreported")
	}
	if !nodes[2].IsLeaf() || nodes[1].IsLeaf() {
		t.Error("IsLeaf misreported")
	}
}
