// Package detector selects between the interactive and the line-oriented front end.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the front end used when no subcommand is given.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI selects the interactive task list.
	ModeTUI
	// ModeLinear prints the task list once and exits.
	ModeLinear
)

// DetectEnvironment returns ModeTUI when both stdin and stdout are terminals
// and the session is not running under CI, ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ParseMode converts an --output value into an OutputMode.
// Accepted values are "auto", "tui", "linear", "plain" and the empty string.
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "plain":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, "unknown output mode"), "output", s)
	}
}

// ResolveMode applies a user override to the detected mode.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
