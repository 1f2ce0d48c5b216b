package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/clipcut/internal/timecode"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, bad timestamp).
func ParseFlags(cfg *Config, version string) error {
	n, err := parseArgs(cfg, os.Args[1:], version, os.Stderr)
	if err != nil {
		return err
	}
	if n.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, "clipcut v"+version)
		os.Exit(0)
	}
	return nil
}

// parseArgs does the work of ParseFlags without touching the process, so it
// can be tested.
func parseArgs(cfg *Config, args []string, version string, usageOut io.Writer) (negatedFlags, error) {
	fs := flag.NewFlagSet("clipcut", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printUsage(usageOut, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var n negatedFlags

	defineCropFlags(fs, cfg)
	defineToolFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &n)
	defineUtilityFlags(fs, &n)

	if err := fs.Parse(args); err != nil {
		return n, err
	}

	applyNegatedFlags(cfg, &n)

	if n.showHelp || n.showVersion {
		return n, nil
	}
	return n, parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either override a default (forceColor, noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCropFlags registers --start, --end, -i/--interactive, --probe-only.
func defineCropFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&timecodeValue{p: &cfg.Start}, "start", "Crop start (seconds or HH:MM:SS.mmm)")
	fs.Var(&timecodeValue{p: &cfg.Start}, "s", "Same as --start")
	fs.Var(&timecodeValue{p: &cfg.End, set: &cfg.EndSet}, "end", "Crop end (seconds or HH:MM:SS.mmm)")
	fs.Var(&timecodeValue{p: &cfg.End, set: &cfg.EndSet}, "e", "Same as --end")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Prompt for input and output paths")
	fs.BoolVar(&cfg.Interactive, "i", false, "Same as --interactive")
	fs.BoolVar(&cfg.ProbeOnly, "probe-only", false, "Print duration and frame rate, then exit")
}

// defineToolFlags registers --ffmpeg and --ffprobe.
func defineToolFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg executable")
	fs.StringVar(&cfg.FFprobePath, "ffprobe", cfg.FFprobePath, "ffprobe executable")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Source and Destination from "<input> [output]".
// Interactive and check modes take no positional args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if cfg.Interactive {
		if len(args) != 0 {
			return fmt.Errorf("--interactive asks for paths; do not pass them as arguments")
		}
		return nil
	}
	switch len(args) {
	case 1:
		cfg.Source = args[0]
	case 2:
		cfg.Source = args[0]
		cfg.Destination = args[1]
	default:
		return fmt.Errorf("need <input> and optionally <output>")
	}
	return nil
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "clipcut v" + version + " - lossless video trimming via ffmpeg"},
		{"", ""},
		{"  clipcut [OPTIONS] <input> [output]", ""},
		{"  clipcut -i [OPTIONS]", ""},
		{"", ""},
		{"Range", ""},
		{"  -s, --start <time>", "Crop start, seconds or HH:MM:SS.mmm (default: 0)"},
		{"  -e, --end <time>", "Crop end (default: end of video)"},
		{"", ""},
		{"Behavior", ""},
		{"  -i, --interactive", "Prompt for input and output paths"},
		{"  --probe-only", "Print duration and frame rate, then exit"},
		{"  --ffmpeg <path>", "ffmpeg executable (default: ffmpeg)"},
		{"  --ffprobe <path>", "ffprobe executable (default: ffprobe)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Cuts use stream copy: no re-encoding, so cut points snap to keyframes."},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// timecodeValue adapts timecode.Parse to flag.Var. set, when non-nil, records
// that the flag was given.
type timecodeValue struct {
	p   *float64
	set *bool
}

func (v *timecodeValue) String() string {
	if v.p == nil {
		return ""
	}
	return timecode.Format(*v.p)
}

func (v *timecodeValue) Set(s string) error {
	secs, err := timecode.Parse(s)
	if err != nil {
		return err
	}
	*v.p = secs
	if v.set != nil {
		*v.set = true
	}
	return nil
}
