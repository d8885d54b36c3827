package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
)

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
)

// messager is implemented by zerr errors and reports a message without its cause chain.
type messager interface {
	Message() string
}

// Model is the bubbletea model for the interactive task list.
// Every change goes through the store; the model only keeps the current projection.
type Model struct {
	store     ports.TaskStore
	filter    domain.Filter
	view      domain.View
	cursor    int
	mode      inputMode
	editing   uuid.UUID
	input     textinput.Model
	status    string
	statusErr bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-inputWidthPadding, minimumInputWidth)
	}
	return m, nil
}

//nolint:cyclop // key dispatch
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "tab", "right", "l":
		m.setFilter(m.filter.Next())
	case "shift+tab", "left", "h":
		m.setFilter(m.filter.Prev())
	case "1":
		m.setFilter(domain.FilterAll)
	case "2":
		m.setFilter(domain.FilterActive)
	case "3":
		m.setFilter(domain.FilterCompleted)
	case " ", "x":
		m.toggleSelected()
	case "d", "delete":
		m.deleteSelected()
	case "c":
		m.clearCompleted()
	case "a", "n":
		return m, m.startInput(modeAdd, "")
	case "e", "enter":
		if t, ok := m.selected(); ok {
			m.editing = t.ID
			return m, m.startInput(modeEdit, t.Name)
		}
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.stopInput()
		m.setStatus("Cancelled")
		return m, nil
	case "enter":
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startInput(mode inputMode, value string) tea.Cmd {
	m.mode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	if mode == modeAdd {
		m.setStatus("Type a name and press Enter, Esc to cancel")
	} else {
		m.setStatus("Edit the name and press Enter, Esc to cancel")
	}
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeList
	m.editing = uuid.Nil
	m.input.SetValue("")
	m.input.Blur()
}

// submitInput keeps the input open when the name is blank so it can be corrected.
func (m *Model) submitInput() {
	name := domain.NormalizeName(m.input.Value())
	if name == "" {
		m.setError(domain.ErrEmptyTaskName)
		return
	}

	mode, editing := m.mode, m.editing
	m.stopInput()

	switch mode {
	case modeAdd:
		t, err := m.store.Create(name)
		m.refresh()
		m.selectTask(t.ID)
		if err != nil {
			m.setError(err)
			return
		}
		m.setStatus("Added task")
	case modeEdit:
		err := m.store.Rename(editing, name)
		m.refresh()
		if err != nil {
			m.setError(err)
			return
		}
		m.setStatus("Renamed task")
	}
}

func (m *Model) toggleSelected() {
	t, ok := m.selected()
	if !ok {
		return
	}

	err := m.store.SetCompleted(t.ID, !t.Completed)
	m.refresh()
	switch {
	case err != nil:
		m.setError(err)
	case t.Completed:
		m.setStatus("Reopened task")
	default:
		m.setStatus("Completed task")
	}
}

func (m *Model) deleteSelected() {
	t, ok := m.selected()
	if !ok {
		return
	}

	err := m.store.Delete(t.ID)
	m.refresh()
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Deleted %q", t.Name))
}

func (m *Model) clearCompleted() {
	n, err := m.store.ClearCompleted()
	m.refresh()
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Cleared %d completed task(s)", n))
}

func (m *Model) setFilter(f domain.Filter) {
	m.filter = f
	m.cursor = 0
	m.refresh()
}

// refresh re-projects the store contents and keeps the cursor in range.
func (m *Model) refresh() {
	m.view = domain.Project(m.store.All(), m.filter)
	m.cursor = clampCursor(m.cursor, len(m.view.Visible))
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clampCursor(m.cursor+delta, len(m.view.Visible))
}

func (m *Model) selectTask(id uuid.UUID) {
	for i, t := range m.view.Visible {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Visible) {
		return domain.Task{}, false
	}
	return m.view.Visible[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = errorMessage(err)
	m.statusErr = true
}

func errorMessage(err error) string {
	if m, ok := err.(messager); ok && m.Message() != "" {
		return m.Message()
	}
	return err.Error()
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
