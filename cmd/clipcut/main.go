// Command clipcut is the CLI entrypoint for lossless video trimming.
//
// It parses flags, validates configuration, then selects and probes the input
// video and writes the requested range to the output with ffmpeg stream copy.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/clipcut/internal/app"
	"github.com/backmassage/clipcut/internal/check"
	"github.com/backmassage/clipcut/internal/config"
	"github.com/backmassage/clipcut/internal/crop"
	"github.com/backmassage/clipcut/internal/display"
	"github.com/backmassage/clipcut/internal/ffmpeg"
	"github.com/backmassage/clipcut/internal/logging"
	"github.com/backmassage/clipcut/internal/probe"
	"github.com/backmassage/clipcut/internal/state"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "clipcut: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "clipcut: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipcut: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()

	runner := ffmpeg.ExecRunner{TeeStderr: cfg.Verbose}

	if cfg.CheckOnly {
		if !check.RunCheck(context.Background(), &cfg, log, runner) {
			return 1
		}
		return 0
	}

	log.Info("=== clipcut v%s (%s) ===", version, commit)

	// Fail fast if ffprobe (or ffmpeg, when cropping) is unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Signal handling: cancel ctx on SIGINT/SIGTERM. An open prompt returns
	// at once and counts as nothing chosen. A started probe or crop is not
	// cancelled through ctx (Detached); ffmpeg shares our process group and
	// handles the terminal's SIGINT itself.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			log.Warn("Received interrupt")
			cancel()
		}
	}()
	tools := ffmpeg.Detached(runner)

	// Phase 3: Select and probe.
	var picker app.Picker = app.ArgPicker{Source: cfg.Source, Destination: cfg.Destination}
	if cfg.Interactive {
		picker = app.NewPromptPicker(os.Stdin, os.Stdout)
	}
	a := app.New(app.Options{
		Selection: state.NewSelection(),
		Prober:    probe.New(tools, cfg.FFprobePath),
		Cropper:   crop.New(tools, cfg.FFmpegPath),
		Picker:    picker,
		Log:       log,
		Verbose:   cfg.Verbose,
	})

	md, err := a.Select(ctx)
	if err != nil {
		log.Error("%s", app.Describe(err))
		return exitCode(err)
	}
	log.Info("In:  %s", md.FilePath)
	log.Info("     %s", display.FormatMetadata(md))

	if cfg.ProbeOnly {
		return 0
	}

	// Phase 4: Crop. Without --end the range runs to the probed duration.
	end := cfg.End
	if !cfg.EndSet {
		end = md.Duration
	}
	log.Debug(cfg.Verbose, "Range: %s", cfg.Summary())
	log.Debug(cfg.Verbose, "Stream copy: cut points snap to keyframes (one frame is %.1f ms)",
		md.FrameDuration()*1000)

	out, err := a.Crop(ctx, cfg.Start, end)
	if err != nil {
		log.Error("%s", app.Describe(err))
		return exitCode(err)
	}

	log.Info("%s", display.FormatKept(cfg.Start, end, md.Duration))
	if fi, err := os.Stat(out); err == nil {
		log.Success("Out: %s (%s)", out, display.FormatBytes(fi.Size()))
	} else {
		log.Success("Out: %s", out)
	}
	return 0
}

// exitCode is 130 when a prompt was interrupted, as a shell reports SIGINT,
// and 1 for every other failure.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
