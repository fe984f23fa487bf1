package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arborlab/arbor/pkg/tree"
)

// ReadJSON decodes a nested JSON tree from r.
//
// Each object must have a "name" field; "attrs" and "children" are
// optional. ReadJSON returns an error if the JSON is malformed, a name
// is missing, or attaching a child violates a tree invariant (for
// example two siblings sharing a name). Errors are wrapped with the
// offending node's name; use errors.Is to check for specific tree
// errors.
//
// The returned tree is independent of r and can be modified freely.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.TreeNode, error) {
	var data node
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromWire(data)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*tree.TreeNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func fromWire(wn node) (*tree.TreeNode, error) {
	if wn.Name == "" {
		return nil, fmt.Errorf("node without a name: %w", tree.ErrInvalidName)
	}
	n := tree.NewNode(wn.Name, tree.Attrs(wn.Attrs).Clone())
	for _, wc := range wn.Children {
		c, err := fromWire(wc)
		if err != nil {
			return nil, err
		}
		if err := c.SetParent(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", wn.Name, err)
		}
	}
	return n, nil
}
