// Package commands implements the CLI commands for the builder tool.
package commands

import (
	"context"
	"io"

	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/build"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/spf13/cobra"
)

// Application is the part of the app layer the CLI drives.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	BuildAll(ctx context.Context, opts app.BuildOptions) error
	Watch(ctx context.Context, opts app.BuildOptions) error
	Configurations(opts app.BuildOptions) (*domain.ConfigurationSet, error)
	Duplicate(opts app.BuildOptions, id string) (*domain.Configuration, error)
	SetOption(opts app.BuildOptions, id, key, value string) error
}

// CLI represents the command line interface for builder.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "builder",
		Short:         "Configure and build autotools projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", app.DefaultConfigFile, "Configuration file, relative to the project directory")
	flags.StringP("config", "c", "", "Configuration id (defaults to the file's default configuration)")
	flags.StringP("directory", "C", ".", "Project directory")
	flags.String("builddir", "", "Build directory (defaults to the user cache directory)")
	flags.Bool("force", false, "Rerun autogen.sh and configure")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newBootstrapCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// buildOptions reads the persistent flags.
func buildOptions(cmd *cobra.Command) app.BuildOptions {
	file, _ := cmd.Flags().GetString("file")
	config, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("directory")
	buildDir, _ := cmd.Flags().GetString("builddir")
	force, _ := cmd.Flags().GetBool("force")

	return app.BuildOptions{
		ProjectDir:    dir,
		ConfigFile:    file,
		Configuration: config,
		BuildDir:      buildDir,
		Force:         force,
	}
}
