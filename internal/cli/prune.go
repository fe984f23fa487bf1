package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	treeio "github.com/arborlab/arbor/pkg/io"
	"github.com/arborlab/arbor/pkg/tree/transform"
)

// pruneOpts holds the command-line flags for the prune command.
type pruneOpts struct {
	paths    []string // paths to keep
	exact    bool     // drop descendants of kept paths
	maxDepth int      // depth bound, 0 for none
	output   string   // output file, empty for stdout
}

// newPruneCmd creates the prune command writing a reduced copy of a
// tree file.
func newPruneCmd() *cobra.Command {
	var opts pruneOpts

	cmd := &cobra.Command{
		Use:   "prune [file]",
		Short: "Keep only selected paths or depths of a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			before := countNodes(root)

			pruned, err := transform.Prune(root, transform.PruneOptions{
				Paths:    opts.paths,
				Exact:    opts.exact,
				MaxDepth: opts.maxDepth,
			})
			if err != nil {
				return fmt.Errorf("prune: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("pruned tree",
				"before", before, "after", countNodes(pruned))

			var buf bytes.Buffer
			if err := treeio.WriteJSON(pruned, &buf); err != nil {
				return err
			}
			return writeOutput(opts.output, buf.Bytes())
		},
	}

	cmd.Flags().StringSliceVar(&opts.paths, "path", nil, "path to keep (repeatable)")
	cmd.Flags().BoolVar(&opts.exact, "exact", false, "drop descendants of kept paths")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "keep only nodes within this depth (0 = unbounded)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
