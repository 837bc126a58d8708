// Package commands implements the CLI commands for the novelpack tool.
package commands

import (
	"context"

	"github.com/novelreader/novelpack/internal/app"
	"github.com/novelreader/novelpack/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for novelpack.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "novelpack",
		Short:         "Package the novel reader into a standalone executable",
		Long:          "novelpack checks the Python environment, installs missing dependencies,\ncleans previous build output, runs PyInstaller, and stages a portable\ndistribution folder.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.PersistentFlags().StringP("config", "c", "novelpack.yaml", "Path to an optional spec override file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// The zero-argument invocation runs the full pipeline.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Run(cmd.Context(), c.configPath(cmd))
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
