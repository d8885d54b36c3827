package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <id> <name...>",
		Aliases: []string{"mv"},
		Short:   "Change the name of a task",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Rename(cmd.Context(), c.opts, args[0], strings.Join(args[1:], " "))
		},
	}
}
