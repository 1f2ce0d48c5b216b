// Package term provides color state and terminal detection.
//
// Colors are package-level values because both logging and display paint
// output. [Configure] resolves the color mode once during startup and flips
// fatih/color's global switch; when colors are off every Sprint call returns
// its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/backmassage/clipcut/internal/config"
)

// Palette used by the logger and banner.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
)

// Configure resolves the color mode and enables or disables all colors.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS pseudo-terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
