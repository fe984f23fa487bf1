package layout

import (
	"math"
	"testing"

	"github.com/arborlab/arbor/pkg/construct"
	"github.com/arborlab/arbor/pkg/tree"
)

func place(t *testing.T, paths []string) map[string]Placement {
	t.Helper()
	root, err := construct.FromPaths(paths)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	out := map[string]Placement{}
	for _, p := range Tidy(root, Options{}) {
		out[tree.PathName(p.Node)] = p
	}
	return out
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTidyParentCentered(t *testing.T) {
	got := place(t, []string{"/a/b", "/a/c", "/a/d"})
	if got["/a/b"].X != 0 || !approx(got["/a/c"].X, 1) || !approx(got["/a/d"].X, 2) {
		t.Errorf("children at %v %v %v, want 0 1 2", got["/a/b"].X, got["/a/c"].X, got["/a/d"].X)
	}
	if !approx(got["/a"].X, 1) {
		t.Errorf("parent at %v, want centered at 1", got["/a"].X)
	}
}

func TestTidyDepths(t *testing.T) {
	got := place(t, []string{"/a/b/d", "/a/c"})
	for path, depth := range map[string]int{"/a": 0, "/a/b": 1, "/a/c": 1, "/a/b/d": 2} {
		if got[path].Depth != depth {
			t.Errorf("%s depth = %d, want %d", path, got[path].Depth, depth)
		}
	}
}

func TestTidySubtreesDoNotOverlap(t *testing.T) {
	// Two wide subtrees under one root: every pair of nodes on the same
	// depth must keep at least the sibling gap.
	got := place(t, []string{
		"/a/b/1", "/a/b/2", "/a/b/3",
		"/a/c/4", "/a/c/5", "/a/c/6",
	})
	byDepth := map[int][]float64{}
	for _, p := range got {
		byDepth[p.Depth] = append(byDepth[p.Depth], p.X)
	}
	for depth, xs := range byDepth {
		for i := range xs {
			for j := i + 1; j < len(xs); j++ {
				if math.Abs(xs[i]-xs[j]) < 1-1e-9 {
					t.Errorf("depth %d: nodes at %v and %v closer than the gap", depth, xs[i], xs[j])
				}
			}
		}
	}
}

func TestTidyLeftmostAtZero(t *testing.T) {
	got := place(t, []string{"/a/b/c/d", "/a/e"})
	minX := math.Inf(1)
	for _, p := range got {
		minX = math.Min(minX, p.X)
	}
	if !approx(minX, 0) {
		t.Errorf("leftmost X = %v, want 0", minX)
	}
}

func TestTidyIsomorphicSubtreesSameShape(t *testing.T) {
	got := place(t, []string{
		"/a/b/1", "/a/b/2",
		"/a/c/3", "/a/c/4",
	})
	bSpan := got["/a/b/2"].X - got["/a/b/1"].X
	cSpan := got["/a/c/4"].X - got["/a/c/3"].X
	if !approx(bSpan, cSpan) {
		t.Errorf("isomorphic subtrees have spans %v and %v", bSpan, cSpan)
	}
	if !approx(got["/a/b"].X, (got["/a/b/1"].X+got["/a/b/2"].X)/2) {
		t.Errorf("subtree root not centered over its children")
	}
}

func TestTidySiblingGap(t *testing.T) {
	root, err := construct.FromPaths([]string{"/a/b", "/a/c"})
	if err != nil {
		t.Fatal(err)
	}
	placements := Tidy(root, Options{SiblingGap: 2.5})
	var b, c float64
	for _, p := range placements {
		switch p.Node.Name() {
		case "b":
			b = p.X
		case "c":
			c = p.X
		}
	}
	if !approx(c-b, 2.5) {
		t.Errorf("sibling distance = %v, want 2.5", c-b)
	}
}

func TestTidySingleNode(t *testing.T) {
	root := tree.NewNode("only", nil)
	placements := Tidy(root, Options{})
	if len(placements) != 1 || placements[0].X != 0 || placements[0].Depth != 0 {
		t.Errorf("Tidy() = %+v, want single placement at origin", placements)
	}
}
