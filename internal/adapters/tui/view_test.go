package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_TaskList(t *testing.T) {
	s := newStore(t, "buy milk", "call mom")
	m := newModel(t, s)
	press(m, "down", "space")

	output := m.View()

	assert.Contains(t, output, "TODO")
	assert.Contains(t, output, "All")
	assert.Contains(t, output, "Active")
	assert.Contains(t, output, "Completed")
	assert.Contains(t, output, "[ ] buy milk")
	assert.Contains(t, output, "> [x] call mom")
	assert.Contains(t, output, "1 active item(s) left")
	assert.Contains(t, output, "Completed task")
	assert.Contains(t, output, "q quit")
}

func TestView_Empty(t *testing.T) {
	m := newModel(t, newStore(t))

	output := m.View()

	assert.Contains(t, output, "Nothing here.")
	assert.Contains(t, output, "0 active item(s) left")
	assert.NotContains(t, output, "New task:")
}

func TestView_InputLine(t *testing.T) {
	m := newModel(t, newStore(t, "buy milk"))

	press(m, "a")
	assert.Contains(t, m.View(), "New task:")

	press(m, "esc", "e")
	output := m.View()
	assert.Contains(t, output, "Rename:")
	assert.Contains(t, output, "buy milk")
}

func TestView_FooterIgnoresFilter(t *testing.T) {
	m := newModel(t, newStore(t, "a", "b"))
	press(m, "space", "3")

	output := m.View()

	assert.Contains(t, output, "[x] a")
	assert.NotContains(t, output, "[ ] b")
	assert.Contains(t, output, "1 active item(s) left")
}
