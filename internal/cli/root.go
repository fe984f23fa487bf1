package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/pkg/buildinfo"
)

// Execute runs the arbor CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads
// the config file, configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, cfgErr := loadConfig()

	root := &cobra.Command{
		Use:          "arbor",
		Short:        "Arbor builds, transforms, and renders trees",
		Long:         `Arbor is a CLI for tree structures: construct them from paths or files, diff and prune them, explore them in the terminal, and render them with Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
			return cfgErr
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newDiffCmd())
	root.AddCommand(newPruneCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newCacheCmd(cfg))

	return root.ExecuteContext(ctx)
}
