package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/todo/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(style.Slate)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Underline(true).
			Foreground(style.Iris)

	taskActiveStyle = lipgloss.NewStyle()

	taskDoneStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Strikethrough(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
