// Package io provides JSON import and export for trees.
//
// # JSON Format
//
// A tree serializes as one nested object per node:
//
//	{
//	  "name": "a",
//	  "attrs": {"size": 1},
//	  "children": [
//	    {"name": "b", "children": [{"name": "d"}]},
//	    {"name": "c"}
//	  ]
//	}
//
// "name" is required; "attrs" and "children" are omitted when empty.
// Attribute values round-trip through encoding/json, so numbers come
// back as float64.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to
// read from any io.Reader. Both rebuild the tree through the regular
// attachment path, so a document with duplicate sibling names or other
// structural violations fails with the corresponding tree error, wrapped
// with the offending node's name.
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to
// any io.Writer. Export and re-import produce an isomorphic tree.
package io
