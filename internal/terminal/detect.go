// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsOutputTerminal reports whether stdout is a terminal.
func IsOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled decides whether to color output for a color mode.
// "always" and "never" are absolute; any other mode ("auto") colors only
// when isTerminal reports a terminal and NO_COLOR is empty.
func ColorEnabled(mode string, isTerminal func() bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if isTerminal == nil {
		isTerminal = IsOutputTerminal
	}
	return isTerminal()
}
