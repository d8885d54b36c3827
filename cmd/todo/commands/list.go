package commands

import "github.com/spf13/cobra"

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the tasks matching a filter",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			return c.app.List(cmd.Context(), c.opts, filter)
		},
	}

	cmd.Flags().StringP("filter", "F", "", "Filter: all, active or completed (default from config)")

	return cmd
}
