package tree

import "maps"

// Attrs stores arbitrary key-value pairs attached to a node. The engine
// never interprets attribute values; they exist purely for callers.
// Attrs maps are never nil on a constructed node.
type Attrs map[string]any

// Clone returns a shallow copy of the attribute map.
// Returns an empty map for a nil receiver.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)
	return out
}

// Merge overlays other onto a, with other winning on key collisions.
func (a Attrs) Merge(other Attrs) {
	maps.Copy(a, other)
}
