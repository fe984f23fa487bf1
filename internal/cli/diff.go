package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/pkg/tree/transform"
)

// diffOpts holds the command-line flags for the diff command.
type diffOpts struct {
	attrs     []string // attribute keys to compare
	aggregate bool     // collapse reporting to the shallowest changed path
	moves     bool     // report matching remove/add pairs as moves
	output    string   // output file, empty for stdout
}

// newDiffCmd creates the diff command comparing two tree files.
func newDiffCmd() *cobra.Command {
	var opts diffOpts

	cmd := &cobra.Command{
		Use:   "diff [left] [right]",
		Short: "Compare two trees and report added, removed, and changed paths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			right, err := loadTree(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			res := transform.Diff(left, right, transform.DiffOptions{
				Attrs:              opts.attrs,
				AggregatePerParent: opts.aggregate,
				DetectMoves:        opts.moves,
			})
			loggerFromContext(cmd.Context()).Debug("diff computed",
				"added", len(res.Added), "removed", len(res.Removed),
				"changed", len(res.Changed), "moved", len(res.Moved))

			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return writeOutput(opts.output, append(data, '\n'))
		},
	}

	cmd.Flags().StringSliceVar(&opts.attrs, "attrs", nil, "attribute keys to compare (comma-separated)")
	cmd.Flags().BoolVar(&opts.aggregate, "aggregate", false, "report only the shallowest path of each branch")
	cmd.Flags().BoolVar(&opts.moves, "moves", false, "detect moved subtrees")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
