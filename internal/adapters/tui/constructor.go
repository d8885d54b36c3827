// Package tui provides the interactive task list.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/todo/internal/ui/output"
)

const (
	inputCharLimit     = 256
	defaultInputWidth  = 40
	inputWidthPadding  = 10
	minimumInputWidth  = 10
	defaultStatusLabel = "Press 'a' to add, space to toggle, 'q' to quit."
)

// NewModel creates a model over store showing tasks under filter.
// w is the terminal the program renders to and selects the color profile.
func NewModel(store ports.TaskStore, filter domain.Filter, w io.Writer) *Model {
	if w == nil {
		w = os.Stdout
	}

	lipgloss.SetColorProfile(output.New(w).Profile)

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = inputCharLimit
	ti.Width = defaultInputWidth

	m := &Model{
		store:  store,
		filter: filter,
		input:  ti,
		mode:   modeList,
		status: defaultStatusLabel,
	}
	m.refresh()
	return m
}

// Run starts an interactive program over m and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
