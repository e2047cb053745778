package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Configure the project if needed and run make",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)
			opts.Targets = args

			if all, _ := cmd.Flags().GetBool("all"); all {
				return c.app.BuildAll(cmd.Context(), opts)
			}
			return c.app.Build(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Build every configuration, each in its own build directory")
	return cmd
}

func (c *CLI) newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Run autogen.sh and configure without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := buildOptions(cmd)
			opts.BootstrapOnly = true
			opts.Force = true
			return c.app.Build(cmd.Context(), opts)
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Run make clean in the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := buildOptions(cmd)
			opts.Targets = []string{"clean"}
			return c.app.Build(cmd.Context(), opts)
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [targets...]",
		Short: "Build, then rebuild whenever project files change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd)
			opts.Targets = args
			return c.app.Watch(cmd.Context(), opts)
		},
	}
}
