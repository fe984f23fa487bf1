package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arborlab/arbor/pkg/tree"
)

// node is the wire shape of one tree node.
type node struct {
	Name     string         `json:"name"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Children []node         `json:"children,omitempty"`
}

// WriteJSON encodes a tree as nested JSON and writes it to w. The output
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(root tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(root tree.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(root, f)
}

func toWire(n tree.Node) node {
	out := node{Name: n.Name()}
	if attrs := n.Attrs(); len(attrs) > 0 {
		out.Attrs = map[string]any(attrs.Clone())
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, toWire(c))
	}
	return out
}
