package construct

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/arborlab/arbor/pkg/tree"
)

// tomlNode mirrors the nested-table TOML form:
//
//	name = "a"
//	[attrs]
//	size = 1
//	[[children]]
//	name = "b"
type tomlNode struct {
	Name     string         `toml:"name"`
	Attrs    map[string]any `toml:"attrs"`
	Children []tomlNode     `toml:"children"`
}

// FromTOML builds a tree from a nested-table TOML document.
func FromTOML(r io.Reader) (*tree.TreeNode, error) {
	var doc tomlNode
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return buildTOML(doc)
}

func buildTOML(tn tomlNode) (*tree.TreeNode, error) {
	if tn.Name == "" {
		return nil, fmt.Errorf("node without a name: %w", tree.ErrInvalidName)
	}
	var attrs tree.Attrs
	if len(tn.Attrs) > 0 {
		attrs = tree.Attrs(tn.Attrs).Clone()
	}
	n := tree.NewNode(tn.Name, attrs)
	for _, ct := range tn.Children {
		c, err := buildTOML(ct)
		if err != nil {
			return nil, err
		}
		if err := c.SetParent(n); err != nil {
			return nil, fmt.Errorf("child %q of %q: %w", c.Name(), tn.Name, err)
		}
	}
	return n, nil
}
