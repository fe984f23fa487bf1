// Package pkg provides the core libraries for arbor, an in-memory
// tree and DAG toolkit.
//
// # Overview
//
// The pkg directory is organized around the node engine and the
// adapters that feed and drain it:
//
//  1. [tree] - Node variants (tree, DAG, binary), paths, traversal,
//     search, structural modification, and transforms
//  2. [construct] / [export] / [io] - Build trees from paths,
//     relations, maps, TOML, and JSON; serialize them back out
//  3. [layout] / [render] - Tidy coordinate assignment and Graphviz
//     image rendering
//  4. [pipeline] - The load → export → render sequence shared by the
//     CLI and the HTTP facade, with artifact caching
//  5. [cache] / [observability] / [errors] / [httputil] - Supporting
//     infrastructure
//
// # Quick Start
//
// Build a tree and render it:
//
//	import (
//	    "context"
//	    "github.com/arborlab/arbor/pkg/construct"
//	    "github.com/arborlab/arbor/pkg/pipeline"
//	)
//
//	root, _ := construct.FromPaths([]string{"a/b/d", "a/c"})
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(context.Background(), root, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
//
// [tree]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/tree
// [construct]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/construct
// [export]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/export
// [io]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/io
// [layout]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/layout
// [render]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/cache
// [observability]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/observability
// [errors]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/arborlab/arbor/pkg/httputil
package pkg
