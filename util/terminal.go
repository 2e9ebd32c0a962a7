package util

import (
	"strings"

	"golang.org/x/term"
)

// Terminal reports whether a file descriptor is attached to a terminal.
type Terminal interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal asks the operating system.
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// ColorEnabled decides whether output written to fd should be colored.
// mode is one of "auto", "always" or "never"; anything else counts as auto.
// In auto mode a set NO_COLOR (noColor) disables color.
func ColorEnabled(t Terminal, fd int, mode string, noColor bool) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	if noColor {
		return false
	}

	return t.IsTerminal(fd)
}
