package tree

import (
	"errors"
	"testing"
)

// buildTree constructs:
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
//	    └── d
func buildTree(t *testing.T) *TreeNode {
	t.Helper()
	a := NewNode("a", nil)
	b := NewNode("b", nil)
	c := NewNode("c", nil)
	d1 := NewNode("d", nil)
	e := NewNode("e", nil)
	d2 := NewNode("d", nil)
	for _, pair := range []struct {
		child, parent *TreeNode
	}{{b, a}, {c, a}, {d1, b}, {e, b}, {d2, c}} {
		if err := pair.child.SetParent(pair.parent); err != nil {
			t.Fatal(err)
		}
	}
	return a
}

func TestPathName(t *testing.T) {
	a := buildTree(t)
	d, err := Resolve(a, "/a/b/d")
	if err != nil {
		t.Fatal(err)
	}
	if got := PathName(d); got != "/a/b/d" {
		t.Errorf("PathName = %q, want /a/b/d", got)
	}
	if got := PathName(a); got != "/a" {
		t.Errorf("PathName(root) = %q, want /a", got)
	}
}

func TestPathNameCustomSep(t *testing.T) {
	a := NewNode("a", nil)
	a.SetSep(".")
	b := NewNode("b", nil)
	if err := b.SetParent(a); err != nil {
		t.Fatal(err)
	}
	if got := PathName(b); got != ".a.b" {
		t.Errorf("PathName = %q, want .a.b", got)
	}
}

func TestResolve(t *testing.T) {
	root := buildTree(t)

	tests := []struct {
		name    string
		path    string
		want    string // expected full path of the match
		wantErr error
	}{
		{name: "FullPath", path: "/a/b/d", want: "/a/b/d"},
		{name: "FullPathNoLeadingSep", path: "a/b/e", want: "/a/b/e"},
		{name: "TrailingSep", path: "/a/b/", want: "/a/b"},
		{name: "PartialUnique", path: "b/e", want: "/a/b/e"},
		{name: "PartialAmbiguous", path: "d", wantErr: ErrPathAmbiguous},
		{name: "Missing", path: "/a/x", wantErr: ErrPathNotFound},
		{name: "MissingPartial", path: "x/y", wantErr: ErrPathNotFound},
		{name: "Root", path: "/a", want: "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(root, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := PathName(n); got != tt.want {
				t.Errorf("resolved %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveAllPartial(t *testing.T) {
	root := buildTree(t)
	matches := ResolveAll(root, "d")
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	// Pre-order: /a/b/d before /a/c/d.
	if PathName(matches[0]) != "/a/b/d" || PathName(matches[1]) != "/a/c/d" {
		t.Errorf("matches = [%s %s]", PathName(matches[0]), PathName(matches[1]))
	}
}

func TestResolveSuffixBoundary(t *testing.T) {
	a := NewNode("a", nil)
	ab := NewNode("ab", nil)
	c1 := NewNode("c", nil)
	b := NewNode("b", nil)
	c2 := NewNode("c", nil)
	for _, pair := range []struct{ child, parent *TreeNode }{
		{ab, a}, {c1, ab}, {b, a}, {c2, b},
	} {
		if err := pair.child.SetParent(pair.parent); err != nil {
			t.Fatal(err)
		}
	}

	// "b/c" must match /a/b/c only, not /a/ab/c.
	n, err := Resolve(a, "b/c")
	if err != nil {
		t.Fatal(err)
	}
	if got := PathName(n); got != "/a/b/c" {
		t.Errorf("resolved %q, want /a/b/c", got)
	}
}

func TestResolveRelative(t *testing.T) {
	root := buildTree(t)
	e, err := Resolve(root, "/a/b/e")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		start   Node
		path    string
		want    string
		wantErr error
	}{
		{name: "Parent", start: e, path: "..", want: "/a/b"},
		{name: "Sibling", start: e, path: "../d", want: "/a/b/d"},
		{name: "UpTwiceDown", start: e, path: "../../c/d", want: "/a/c/d"},
		{name: "Dot", start: e, path: ".", want: "/a/b/e"},
		{name: "AboveRoot", start: e, path: "../../../..", wantErr: ErrMalformedPath},
		{name: "WildcardAmbiguous", start: e, path: "../*", wantErr: ErrPathAmbiguous},
		{name: "WildcardNarrowed", start: e, path: "../../c/*", want: "/a/c/d"},
		{name: "Missing", start: e, path: "../x", wantErr: ErrPathNotFound},
		{name: "AbsoluteRejected", start: e, path: "/a/b", wantErr: ErrMalformedPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ResolveRelative(tt.start, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := PathName(n); got != tt.want {
				t.Errorf("resolved %q, want %q", got, tt.want)
			}
		})
	}
}
