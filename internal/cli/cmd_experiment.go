package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) experimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Create and list per-experiment override files",
	}

	save := &cobra.Command{
		Use:   "save NAME [section.key=value ...]",
		Short: "Write a standalone experiment override file",
		Long: "Writes exactly the given parameters to <overrides>/NAME.toml. The\n" +
			"artifact is independent of the global override layer; parameters not\n" +
			"listed are simply absent, with no default-filling.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseAssignments(c.app.Schema(), args[1:])
			if err != nil {
				return err
			}
			path, saved, err := c.app.Builder().Save(cmd.Context(), args[0], edits)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !saved {
				fmt.Fprintln(out, "No parameters configured. Experiment not saved.")
				return nil
			}
			fmt.Fprintf(out, "Experiment %q created: %s\n", args[0], path)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, paths, err := c.app.Builder().List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No experiments found.")
				return nil
			}
			for i, name := range names {
				fmt.Fprintf(out, "%s\t%s\n", name, paths[i])
			}
			return nil
		},
	}

	cmd.AddCommand(save, list)
	return cmd
}
