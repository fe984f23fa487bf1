package tree

import "errors"

var (
	// ErrCycle is returned when a mutation would make a node its own
	// ancestor. The check walks the prospective parent's ancestor chain
	// before anything is attached.
	ErrCycle = errors.New("operation would create a cycle")

	// ErrWrongNodeType is returned when a parent or child of an
	// incompatible variant is assigned (e.g. a DAGNode parented to a
	// TreeNode).
	ErrWrongNodeType = errors.New("incompatible node variant")

	// ErrBinaryCapacity is returned when attaching a third child to a
	// BinaryNode. This check cannot be disabled via [Config].
	ErrBinaryCapacity = errors.New("binary node already has two children")

	// ErrInvalidName is returned for an empty node name, or a name that
	// contains the tree's path separator.
	ErrInvalidName = errors.New("invalid node name")

	// ErrDuplicateName is returned when a mutation would give two children
	// of the same parent the same name.
	ErrDuplicateName = errors.New("duplicate name among siblings")

	// ErrDuplicatePath is returned when a mutation would make two distinct
	// nodes resolve to the same full path.
	ErrDuplicatePath = errors.New("duplicate path in tree")

	// ErrDuplicateEdge is returned when a DAG mutation would repeat an
	// existing parent-child edge.
	ErrDuplicateEdge = errors.New("edge already exists")

	// ErrPathNotFound is returned by single-result path lookups that match
	// nothing.
	ErrPathNotFound = errors.New("path not found")

	// ErrPathAmbiguous is returned by single-result path lookups that match
	// more than one node (partial paths may share a suffix).
	ErrPathAmbiguous = errors.New("ambiguous path")

	// ErrMalformedPath is returned for relative-path syntax errors, such as
	// navigating above the root with "..".
	ErrMalformedPath = errors.New("malformed path")

	// ErrConfigConflict is returned when mutually exclusive options are
	// combined, or when two trees with different separators take part in
	// one operation.
	ErrConfigConflict = errors.New("conflicting configuration")

	// ErrSepMismatch is returned when a cross-tree operation involves trees
	// with different path separators.
	ErrSepMismatch = errors.New("mismatched path separators")

	// ErrMissingSource is returned when a source path of a modification
	// does not resolve and the operation is not skippable.
	ErrMissingSource = errors.New("source path not found")
)

// IsStructural reports whether err is one of the structural-violation
// kinds: cycle creation, incompatible variant, or binary capacity.
func IsStructural(err error) bool {
	return errors.Is(err, ErrCycle) ||
		errors.Is(err, ErrWrongNodeType) ||
		errors.Is(err, ErrBinaryCapacity)
}

// IsDuplicate reports whether err is an identity collision: a sibling name
// clash or a duplicate full path.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrDuplicatePath) ||
		errors.Is(err, ErrDuplicateEdge)
}

// IsPathResolution reports whether err came from path lookup: no match for
// a required lookup, an ambiguous match, or malformed path syntax.
func IsPathResolution(err error) bool {
	return errors.Is(err, ErrPathNotFound) ||
		errors.Is(err, ErrPathAmbiguous) ||
		errors.Is(err, ErrMalformedPath)
}
