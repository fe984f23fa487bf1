package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/pkg/export"
	treeio "github.com/arborlab/arbor/pkg/io"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	to     string // target format: json, dot, mermaid, text
	style  string // notation style for text output: unicode, ascii
	output string // output file, empty for stdout
}

// newConvertCmd creates the convert command translating a tree file
// into another representation.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{to: "text", style: "unicode"}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a tree file to JSON, DOT, Mermaid, or notation text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch opts.to {
			case "json":
				var buf bytes.Buffer
				if err := treeio.WriteJSON(root, &buf); err != nil {
					return err
				}
				data = buf.Bytes()
			case "dot":
				data = []byte(export.ToDOT(root))
			case "mermaid":
				data = []byte(export.ToMermaid(root))
			case "text":
				style := export.StyleUnicode
				if opts.style == "ascii" {
					style = export.StyleASCII
				}
				data = []byte(export.SprintStyle(root, style))
			default:
				return fmt.Errorf("unknown target format %q (json, dot, mermaid, text)", opts.to)
			}
			return writeOutput(opts.output, data)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", opts.to, "target format: text (default), json, dot, mermaid")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "notation style for text: unicode (default), ascii")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
