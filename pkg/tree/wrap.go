package tree

// Tree is a non-owning handle around the root of a tree of [TreeNode].
// It scopes the free functions of this package to one tree and adds no
// invariants of its own.
type Tree struct {
	root *TreeNode
}

// NewTree wraps root. The root's own separator and configuration apply.
func NewTree(root *TreeNode) *Tree { return &Tree{root: root} }

// Root returns the wrapped root node.
func (t *Tree) Root() *TreeNode { return t.root }

// Resolve resolves a full or partial path inside this tree.
func (t *Tree) Resolve(path string) (Node, error) { return Resolve(t.root, path) }

// ResolveAll resolves a path inside this tree, returning every match.
func (t *Tree) ResolveAll(path string) []Node { return ResolveAll(t.root, path) }

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int { return size(t.root) }

// Height returns the number of edges on the longest root-to-leaf chain.
func (t *Tree) Height() int { return height(t.root) }

// DAG is a non-owning handle around one root of a DAG of [DAGNode].
type DAG struct {
	root *DAGNode
}

// NewDAG wraps root.
func NewDAG(root *DAGNode) *DAG { return &DAG{root: root} }

// Root returns the wrapped root node.
func (d *DAG) Root() *DAGNode { return d.root }

// Size returns the number of distinct nodes reachable from the root.
func (d *DAG) Size() int {
	seen := map[Node]struct{}{Node(d.root): {}}
	for n := range d.root.Descendants() {
		seen[n] = struct{}{}
	}
	return len(seen)
}

// BinaryTree is a non-owning handle around the root of a tree of
// [BinaryNode].
type BinaryTree struct {
	root *BinaryNode
}

// NewBinaryTree wraps root.
func NewBinaryTree(root *BinaryNode) *BinaryTree { return &BinaryTree{root: root} }

// Root returns the wrapped root node.
func (t *BinaryTree) Root() *BinaryNode { return t.root }

// Resolve resolves a full or partial path inside this tree.
func (t *BinaryTree) Resolve(path string) (Node, error) { return Resolve(t.root, path) }

// Size returns the number of nodes in the tree.
func (t *BinaryTree) Size() int { return size(t.root) }

// Height returns the number of edges on the longest root-to-leaf chain.
func (t *BinaryTree) Height() int { return height(t.root) }

func size(root Node) int {
	count := 1
	for range root.Descendants() {
		count++
	}
	return count
}

func height(root Node) int {
	max := 0
	for n := range root.Descendants() {
		if d := n.Depth() - root.Depth(); d > max {
			max = d
		}
	}
	return max
}
