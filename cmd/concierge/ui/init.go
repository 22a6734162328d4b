// Package ui provides terminal output helpers for the concierge CLI.
package ui

import (
	"github.com/fatih/color"
)

var verboseFlag bool

// InitUI applies the global color and verbosity flags.
func InitUI(noColor, verbose bool) {
	verboseFlag = verbose
	if noColor {
		color.NoColor = true
	}
}

// Verbose reports whether --verbose was given.
func Verbose() bool {
	return verboseFlag
}
