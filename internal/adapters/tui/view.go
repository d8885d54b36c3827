package tui

import (
	"strings"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/ui/style"
)

const helpText = "a add • e edit • space toggle • d delete • c clear completed • tab filter • q quit"

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TODO") + "\n\n")
	s.WriteString(m.tabs() + "\n\n")
	s.WriteString(m.taskList())
	s.WriteString("\n" + footerStyle.Render(m.view.ItemsLeft()) + "\n")

	if m.mode != modeList {
		s.WriteString("\n" + m.inputLabel() + m.input.View() + "\n")
	}
	if m.status != "" {
		st := statusStyle
		if m.statusErr {
			st = statusErrorStyle
		}
		s.WriteString("\n" + st.Render(m.status) + "\n")
	}

	s.WriteString("\n" + helpStyle.Render(helpText) + "\n")
	return s.String()
}

func (m *Model) tabs() string {
	filters := domain.Filters()
	labels := make([]string, 0, len(filters))
	for _, f := range filters {
		label := tabLabel(f)
		if f == m.filter {
			labels = append(labels, activeTabStyle.Render(label))
			continue
		}
		labels = append(labels, tabStyle.Render(label))
	}
	return strings.Join(labels, " ")
}

func (m *Model) taskList() string {
	if len(m.view.Visible) == 0 {
		return footerStyle.Render("Nothing here.") + "\n"
	}

	var s strings.Builder
	for i, t := range m.view.Visible {
		s.WriteString(m.renderTaskRow(i, t) + "\n")
	}
	return s.String()
}

func (m *Model) renderTaskRow(index int, t domain.Task) string {
	rowStyle := taskActiveStyle
	if t.Completed {
		rowStyle = taskDoneStyle
	}

	cursor := "  "
	if index == m.cursor {
		cursor = selectedStyle.Render(style.Cursor + " ")
		if !t.Completed {
			rowStyle = selectedStyle
		}
	}

	return cursor + style.Box(t.Completed) + " " + rowStyle.Render(t.Name)
}

func (m *Model) inputLabel() string {
	if m.mode == modeEdit {
		return "Rename: "
	}
	return "New task: "
}

func tabLabel(f domain.Filter) string {
	s := f.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
