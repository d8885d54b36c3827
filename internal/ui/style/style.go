// Package style provides shared colors and glyphs for the todo CLI and TUI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check      = "✓"
	Cross      = "✗"
	Warning    = "!"
	Cursor     = ">"
	BoxEmpty   = "[ ]"
	BoxChecked = "[x]"
)

// Box returns the checkbox glyph for a completion state.
func Box(completed bool) string {
	if completed {
		return BoxChecked
	}
	return BoxEmpty
}
