package config

import (
	"io"
	"math"
	"testing"
)

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresSource(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail without a source")
	}

	cfg.Source = "/videos/in.mp4"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_InteractiveAndCheckSkipSource(t *testing.T) {
	for _, mut := range []func(*Config){
		func(c *Config) { c.Interactive = true },
		func(c *Config) { c.CheckOnly = true },
	} {
		cfg := DefaultConfig()
		mut(&cfg)
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	}
}

func TestValidate_ToolPathsAndNaN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "in.mp4"
	cfg.FFmpegPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an empty ffmpeg path")
	}

	cfg = DefaultConfig()
	cfg.Source = "in.mp4"
	cfg.End = math.NaN()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject NaN")
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FFmpegPath != "ffmpeg" || cfg.FFprobePath != "ffprobe" {
		t.Errorf("default tools = %q, %q", cfg.FFmpegPath, cfg.FFprobePath)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.EndSet || cfg.Start != 0 {
		t.Error("default range should start at 0 and run to the end")
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name: "input only",
			args: []string{"in.mp4"},
			check: func(t *testing.T, c Config) {
				if c.Source != "in.mp4" || c.Destination != "" {
					t.Errorf("paths = %q, %q", c.Source, c.Destination)
				}
				if c.EndSet {
					t.Error("EndSet should be false")
				}
			},
		},
		{
			name: "range and output",
			args: []string{"--start", "00:01:00.500", "-e", "90", "in.mkv", "out.mkv"},
			check: func(t *testing.T, c Config) {
				if c.Start != 60.5 || c.End != 90 || !c.EndSet {
					t.Errorf("range = %v..%v (set=%v)", c.Start, c.End, c.EndSet)
				}
				if c.Destination != "out.mkv" {
					t.Errorf("Destination = %q", c.Destination)
				}
			},
		},
		{
			name: "color overrides",
			args: []string{"--color", "--no-color", "in.mp4"},
			check: func(t *testing.T, c Config) {
				if c.ColorMode != ColorNever {
					t.Errorf("ColorMode = %q, --no-color should win", c.ColorMode)
				}
			},
		},
		{
			name: "tools",
			args: []string{"--ffmpeg", "/opt/ff/ffmpeg", "--ffprobe", "/opt/ff/ffprobe", "--probe-only", "in.mp4"},
			check: func(t *testing.T, c Config) {
				if c.FFmpegPath != "/opt/ff/ffmpeg" || c.FFprobePath != "/opt/ff/ffprobe" || !c.ProbeOnly {
					t.Errorf("cfg = %+v", c)
				}
			},
		},
		{
			name:  "check needs no paths",
			args:  []string{"--check"},
			check: func(t *testing.T, c Config) {},
		},
		{
			name:  "interactive needs no paths",
			args:  []string{"-i"},
			check: func(t *testing.T, c Config) {},
		},
		{name: "interactive rejects paths", args: []string{"-i", "in.mp4"}, wantErr: true},
		{name: "missing input", args: []string{}, wantErr: true},
		{name: "too many args", args: []string{"a", "b", "c"}, wantErr: true},
		{name: "bad timestamp", args: []string{"--start", "soon", "in.mp4"}, wantErr: true},
		{name: "negative timestamp", args: []string{"--end", "-5", "in.mp4"}, wantErr: true},
		{name: "unknown flag", args: []string{"--mode", "cpu", "in.mp4"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			_, err := parseArgs(&cfg, tt.args, "test", io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseArgs_HelpSkipsPositionals(t *testing.T) {
	cfg := DefaultConfig()
	n, err := parseArgs(&cfg, []string{"--help"}, "test", io.Discard)
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if !n.showHelp {
		t.Error("showHelp should be set")
	}
}

func TestSummary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = 61.5
	if got, want := cfg.Summary(), "00:01:01.500 to end"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	cfg.End, cfg.EndSet = 90, true
	if got, want := cfg.Summary(), "00:01:01.500 to 00:01:30.000"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
