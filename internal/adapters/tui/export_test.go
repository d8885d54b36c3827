package tui

import "go.trai.ch/todo/internal/core/domain"

// Cursor exposes the selected row for testing.
func (m *Model) Cursor() int {
	return m.cursor
}

// Status exposes the status line and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Projection exposes the current view for testing.
func (m *Model) Projection() domain.View {
	return m.view
}

// Editing reports whether the name input is open.
func (m *Model) Editing() bool {
	return m.mode != modeList
}
