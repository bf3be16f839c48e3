package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Delfictus/Prism-Tuning/internal/config"
)

func (c *CLI) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the layered configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the merged active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := c.app.Store().LoadActive(cmd.Context())
			if err != nil {
				return err
			}
			c.renderActive(cmd.OutOrStdout(), active)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set section.key=value ...",
		Short: "Apply parameter edits to the global override layer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseAssignments(c.app.Schema(), args)
			if err != nil {
				return err
			}
			if err := c.app.Store().ApplyEdits(cmd.Context(), edits); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", c.app.Cfg().OverridePath)
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

// renderActive prints the catalog's parameters with their effective
// values, grouped by display category. Parameters missing from both
// layers show their catalog default.
func (c *CLI) renderActive(w io.Writer, active config.Layer) {
	for _, cat := range c.app.Schema().Categories() {
		fmt.Fprintf(w, "[%s]\n", cat.Name)
		for _, p := range cat.Params {
			v, ok := active.Get(p.Section, p.Name)
			if !ok {
				v = p.Default
			}
			fmt.Fprintf(w, "  %-28s %-12s %s\n", p.Name, v, p.Desc)
		}
		fmt.Fprintln(w)
	}
}
