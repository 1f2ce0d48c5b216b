// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"math"

	"github.com/backmassage/clipcut/internal/timecode"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	Source      string
	Destination string // Optional; empty means "no save location selected".

	// Crop range in seconds. When EndSet is false the crop runs to the
	// probed duration.
	Start  float64
	End    float64
	EndSet bool

	// External tools.
	FFmpegPath  string // Default: "ffmpeg".
	FFprobePath string // Default: "ffprobe".

	// Behavior flags.
	Interactive bool // Prompt for source and destination on the terminal.
	ProbeOnly   bool // Print metadata and exit without cropping.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		ColorMode:   ColorAuto,
	}
}

// Validate checks enum fields and tool paths. Unless in CheckOnly or
// Interactive mode it also requires a source path. The crop range itself is
// validated by the crop step so that it reports a typed error.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.FFmpegPath == "" || c.FFprobePath == "" {
		return errors.New("ffmpeg and ffprobe paths must not be empty")
	}
	if math.IsNaN(c.Start) || math.IsNaN(c.End) {
		return errors.New("start and end must be numbers")
	}

	if c.CheckOnly || c.Interactive {
		return nil
	}
	if c.Source == "" {
		return errors.New("need an input video (or use --interactive)")
	}
	return nil
}

// Summary returns the crop range as shown in the startup log.
func (c *Config) Summary() string {
	if !c.EndSet {
		return timecode.Format(c.Start) + " to end"
	}
	return timecode.Format(c.Start) + " to " + timecode.Format(c.End)
}
