// Package commands implements the CLI commands for the todo task manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/todo/internal/app"
	"go.trai.ch/todo/internal/build"
)

// CLI represents the command line interface for todo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Init(ctx context.Context, opts app.Options) error
	Add(ctx context.Context, opts app.Options, name string) error
	Complete(ctx context.Context, opts app.Options, ref string, completed bool) error
	Rename(ctx context.Context, opts app.Options, ref, name string) error
	Remove(ctx context.Context, opts app.Options, ref string) error
	ClearCompleted(ctx context.Context, opts app.Options) error
	List(ctx context.Context, opts app.Options, filter string) error
	Interactive(ctx context.Context, opts app.Options) error
	Auto(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "A single-user task list",
		Long:          "Manage a task list stored as a JSON-lines file.\nRun without arguments to open the interactive list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Auto(cmd.Context(), c.opts)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.DataFile, "file", "f", "", "Path of the task data file (env TODO_FILE)")
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path of the config file")
	flags.StringVar(&c.opts.LogFormat, "log-format", "", "Log format: pretty or json")
	flags.StringVar(&c.opts.OutputMode, "output", "auto", "Front end when no command is given: auto, tui or plain")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDoneCmd())
	rootCmd.AddCommand(c.newUndoCmd())
	rootCmd.AddCommand(c.newRenameCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newUICmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
