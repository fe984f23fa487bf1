package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arborlab/arbor/pkg/construct"
	"github.com/arborlab/arbor/pkg/httputil"
	treeio "github.com/arborlab/arbor/pkg/io"
	"github.com/arborlab/arbor/pkg/tree"
)

// loadTree reads a tree document from a local file or an http(s) URL,
// dispatching on extension: .toml decodes the nested-table form,
// everything else is treated as nested JSON.
func loadTree(ctx context.Context, path string) (*tree.TreeNode, error) {
	data, err := readDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		root, err := construct.FromTOML(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return root, nil
	}
	root, err := treeio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

func readDocument(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return httputil.Fetch(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// countNodes reports the subtree size including the root.
func countNodes(root tree.Node) int {
	n := 1
	for range root.Descendants() {
		n++
	}
	return n
}
