package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <name...>",
		Short:   "Add an active task",
		Example: "  todo add buy milk",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Add(cmd.Context(), c.opts, strings.Join(args, " "))
		},
	}
}
