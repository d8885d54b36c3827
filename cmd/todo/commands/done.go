package commands

import "github.com/spf13/cobra"

func (c *CLI) newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Long:  "Mark a task completed. The id may be any unique prefix of the task id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Complete(cmd.Context(), c.opts, args[0], true)
		},
	}
}

func (c *CLI) newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark a task active again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Complete(cmd.Context(), c.opts, args[0], false)
		},
	}
}
