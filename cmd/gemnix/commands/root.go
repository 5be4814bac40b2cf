// Package commands implements the CLI commands for gemnix.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gemnix/internal/app"
	"go.trai.ch/gemnix/internal/build"
)

// CLI represents the command line interface for gemnix.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "gemnix",
		Short: "Convert a Gemfile.lock into a gemset.nix",
		Long: "gemnix reads a Bundler lockfile, resolves a Nix hash for every locked gem " +
			"and writes the result as a gemset.nix expression.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runConvert,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.String("gemfile", "", "Gemfile whose groups and platforms are propagated (default \"Gemfile\")")
	flags.StringP("lockfile", "l", "", "Gemfile.lock to convert (default \"Gemfile.lock\")")
	flags.StringP("gemset", "o", "", "gemset to write (default \"gemset.nix\")")
	flags.StringP("platform", "p", "", "target platform, e.g. x86_64-linux (default \"ruby\")")
	flags.StringSlice("platforms", nil, "convert for several platforms, writing gemset.<platform>.nix for each")
	flags.IntP("jobs", "j", 0, "number of platforms converted concurrently (default 1)")
	flags.BoolP("quiet", "q", false, "only print warnings and errors")
	flags.Bool("log-json", false, "write log output as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("platform", "platforms")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runConvert(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	gemfile, _ := flags.GetString("gemfile")
	lockfile, _ := flags.GetString("lockfile")
	gemset, _ := flags.GetString("gemset")
	platform, _ := flags.GetString("platform")
	platforms, _ := flags.GetStringSlice("platforms")
	jobs, _ := flags.GetInt("jobs")
	quiet, _ := flags.GetBool("quiet")
	logJSON, _ := flags.GetBool("log-json")

	return c.app.Convert(cmd.Context(), app.Options{
		Gemfile:   gemfile,
		Lockfile:  lockfile,
		Gemset:    gemset,
		Platform:  platform,
		Platforms: platforms,
		Jobs:      jobs,
		Quiet:     quiet,
		LogJSON:   logJSON,
	})
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

// SetOutput redirects command output, including help and version text. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
