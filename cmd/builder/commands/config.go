package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit build configurations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the configurations of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := c.app.Configurations(buildOptions(cmd))
			if err != nil {
				return err
			}
			return printConfigurations(cmd.OutOrStdout(), set)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show every option of a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.app.Configurations(buildOptions(cmd))
			if err != nil {
				return err
			}
			cfg, err := set.Lookup(args[0])
			if err != nil {
				return err
			}
			printConfiguration(cmd.OutOrStdout(), cfg)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a configuration under a new id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dup, err := c.app.Duplicate(buildOptions(cmd), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dup.ID())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <id> <key> <value>",
		Short: "Change an option of a configuration",
		Long:  "Change an option of a configuration.\n\nKeys: " + strings.Join(app.OptionKeys(), ", "),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SetOption(buildOptions(cmd), args[0], args[1], args[2])
		},
	})

	return cmd
}

func printConfigurations(w io.Writer, set *domain.ConfigurationSet) error {
	defaultID := ""
	if cfg, err := set.Lookup(""); err == nil {
		defaultID = cfg.ID()
	}

	r := newRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(colorMuted)).
		Headers("", "ID", "NAME", "RUNTIME", "DEVICE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, cfg := range set.All() {
		marker := ""
		if cfg.ID() == defaultID {
			marker = DefaultMarker
		}
		t.Row(marker, cfg.ID(), cfg.DisplayName(), cfg.RuntimeID(), cfg.DeviceID())
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func printConfiguration(w io.Writer, cfg *domain.Configuration) {
	s := cfg.Snapshot()
	label := newRenderer(w).NewStyle().Foreground(colorAccent).Width(14)

	field := func(name string, value any) {
		_, _ = fmt.Fprintf(w, "%s%v\n", label.Render(name+":"), value)
	}

	field("id", s.ID)
	field("name", s.DisplayName)
	field("device", s.DeviceID)
	field("runtime", s.RuntimeID)
	field("prefix", s.Prefix)
	field("parallelism", s.Parallelism)
	field("debug", s.Debug)
	field("config-opts", s.ConfigOpts)
	if pairs := s.Environment.Pairs(); len(pairs) > 0 {
		_, _ = fmt.Fprintln(w, label.Render("environment:"))
		for _, p := range pairs {
			_, _ = fmt.Fprintf(w, "  %s\n", p)
		}
	}
	printQueue(w, label.Render("prebuild:"), s.Prebuild)
	printQueue(w, label.Render("postbuild:"), s.Postbuild)
	if s.Flatpak != nil {
		_, _ = fmt.Fprintln(w, label.Render("flatpak:"))
		_, _ = fmt.Fprintf(w, "  manifest:       %s\n", s.Flatpak.Manifest)
		_, _ = fmt.Fprintf(w, "  primary-module: %s\n", s.Flatpak.PrimaryModule)
		_, _ = fmt.Fprintf(w, "  repo-dir:       %s\n", s.Flatpak.RepoDir)
		_, _ = fmt.Fprintf(w, "  repo-name:      %s\n", s.Flatpak.RepoName)
	}
}

func printQueue(w io.Writer, heading string, q *domain.CommandQueue) {
	commands := q.Commands()
	if len(commands) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, heading)
	for _, command := range commands {
		_, _ = fmt.Fprintf(w, "  - %s\n", command)
	}
}
