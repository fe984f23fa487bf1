package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/pkg/cache"
	"github.com/arborlab/arbor/pkg/pipeline"
)

// renderTTL bounds how long rendered artifacts stay in the file cache.
const renderTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path, empty for stdout
	format  string // svg, png, dot, or mermaid
	noCache bool   // bypass the artifact cache
}

// newRenderCmd creates the render command for generating visualizations
// from a tree file.
func newRenderCmd(cfg Config) *cobra.Command {
	opts := renderOpts{format: cfg.Format}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree to SVG, PNG, DOT, or Mermaid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot, mermaid")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

func validateFormat(format string) error {
	if !pipeline.ValidFormat(format) {
		return fmt.Errorf("unknown format %q (svg, png, dot, mermaid)", format)
	}
	return nil
}

func runRender(ctx context.Context, cfg Config, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := loadTree(ctx, path)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", "file", path, "nodes", countNodes(root))

	store, err := openCache(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, nil, logger)
	res, err := runner.Execute(ctx, root, pipeline.Options{
		Formats: []string{opts.format},
		TTL:     renderTTL,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(opts.output, res.Artifacts[opts.format]); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d nodes to %s", res.Nodes, opts.format))
	return nil
}

// openCache returns the artifact cache, or a null cache when caching
// is disabled.
func openCache(cfg Config, disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
