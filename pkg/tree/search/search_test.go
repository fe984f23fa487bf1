package search

import (
	"errors"
	"testing"

	"github.com/arborlab/arbor/pkg/tree"
	"github.com/arborlab/arbor/pkg/tree/traverse"
)

// build constructs:
//
//	a
//	├── b        {size: 2}
//	│   ├── d    {size: 1}
//	│   └── e
//	└── c
//	    └── d    {size: 1}
func build(t *testing.T) *tree.TreeNode {
	t.Helper()
	a := tree.NewNode("a", nil)
	b := tree.NewNode("b", tree.Attrs{"size": 2})
	c := tree.NewNode("c", nil)
	d1 := tree.NewNode("d", tree.Attrs{"size": 1})
	e := tree.NewNode("e", nil)
	d2 := tree.NewNode("d", tree.Attrs{"size": 1})
	for _, pair := range []struct{ child, parent *tree.TreeNode }{
		{b, a}, {c, a}, {d1, b}, {e, b}, {d2, c},
	} {
		if err := pair.child.SetParent(pair.parent); err != nil {
			t.Fatal(err)
		}
	}
	return a
}

func TestFindName(t *testing.T) {
	root := build(t)

	n, err := FindName(root, "e")
	if err != nil {
		t.Fatal(err)
	}
	if tree.PathName(n) != "/a/b/e" {
		t.Errorf("found %s", tree.PathName(n))
	}

	if _, err := FindName(root, "d"); !errors.Is(err, tree.ErrPathAmbiguous) {
		t.Errorf("duplicate name: %v, want ErrPathAmbiguous", err)
	}
	if _, err := FindName(root, "zz"); !errors.Is(err, tree.ErrPathNotFound) {
		t.Errorf("missing name: %v, want ErrPathNotFound", err)
	}
}

func TestFindNames(t *testing.T) {
	root := build(t)
	got := FindNames(root, []string{"d", "c"})
	want := []string{"/a/b/d", "/a/c", "/a/c/d"}
	if len(got) != len(want) {
		t.Fatalf("matches = %d, want %d", len(got), len(want))
	}
	for i, n := range got {
		if tree.PathName(n) != want[i] {
			t.Errorf("match %d = %s, want %s", i, tree.PathName(n), want[i])
		}
	}
}

func TestFindMatchesPreOrderFilter(t *testing.T) {
	// FindAll(name == x) must equal a pre-order filter by name.
	root := build(t)
	byFind := FindNames(root, []string{"d"})

	var byFilter []tree.Node
	for n := range traverse.PreOrder(root) {
		if n.Name() == "d" {
			byFilter = append(byFilter, n)
		}
	}

	if len(byFind) != len(byFilter) {
		t.Fatalf("find = %d matches, filter = %d", len(byFind), len(byFilter))
	}
	for i := range byFind {
		if byFind[i] != byFilter[i] {
			t.Errorf("match %d differs", i)
		}
	}
}

func TestFindAttr(t *testing.T) {
	root := build(t)

	n, err := FindAttr(root, "size", 2)
	if err != nil {
		t.Fatal(err)
	}
	if n.Name() != "b" {
		t.Errorf("found %s, want b", n.Name())
	}

	if got := FindAttrs(root, "size", 1); len(got) != 2 {
		t.Errorf("FindAttrs(size=1) = %d matches, want 2", len(got))
	}
	if _, err := FindAttr(root, "size", 1); !errors.Is(err, tree.ErrPathAmbiguous) {
		t.Errorf("ambiguous attr: %v, want ErrPathAmbiguous", err)
	}
}

func TestFindPredicate(t *testing.T) {
	root := build(t)
	leaves := FindAll(root, func(n tree.Node) bool { return n.IsLeaf() })
	if len(leaves) != 3 {
		t.Errorf("leaves = %d, want 3", len(leaves))
	}

	// Depth bound cuts the search space before matching.
	shallow := FindAll(root, func(n tree.Node) bool { return n.IsLeaf() }, traverse.MaxDepth(1))
	if len(shallow) != 1 || shallow[0].Name() != "c" {
		t.Errorf("shallow leaves = %v", shallow)
	}
}

func TestFindChildScoped(t *testing.T) {
	root := build(t)

	// Child-scoped search sees only direct children: the deeper "d"
	// nodes are invisible.
	if _, err := FindChildByName(root, "d"); !errors.Is(err, tree.ErrPathNotFound) {
		t.Errorf("FindChildByName(root, d): %v, want ErrPathNotFound", err)
	}

	b, err := FindChildByName(root, "b")
	if err != nil {
		t.Fatal(err)
	}
	d, err := FindChildByName(b, "d")
	if err != nil {
		t.Fatal(err)
	}
	if tree.PathName(d) != "/a/b/d" {
		t.Errorf("found %s", tree.PathName(d))
	}

	kids := FindChildren(root, func(n tree.Node) bool { return true })
	if len(kids) != 2 || kids[0].Name() != "b" || kids[1].Name() != "c" {
		t.Errorf("children order wrong: %v", kids)
	}
}

func TestFindPath(t *testing.T) {
	root := build(t)

	n, err := FindPath(root, "b/e")
	if err != nil {
		t.Fatal(err)
	}
	if tree.PathName(n) != "/a/b/e" {
		t.Errorf("found %s", tree.PathName(n))
	}

	if got := FindPaths(root, "d"); len(got) != 2 {
		t.Errorf("FindPaths(d) = %d matches, want 2", len(got))
	}
}

func TestFindRelativePath(t *testing.T) {
	root := build(t)
	e, err := FindPath(root, "/a/b/e")
	if err != nil {
		t.Fatal(err)
	}

	n, err := FindRelativePath(e, "../d")
	if err != nil {
		t.Fatal(err)
	}
	if tree.PathName(n) != "/a/b/d" {
		t.Errorf("found %s", tree.PathName(n))
	}

	all, err := FindRelativePaths(e, "../*")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("matches = %d, want 2", len(all))
	}
}
