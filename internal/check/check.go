// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/clipcut/internal/config"
	"github.com/backmassage/clipcut/internal/ffmpeg"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// RunCheck runs the --check flow: reports the location and version of
// ffprobe and ffmpeg and whether ffmpeg can write MP4. Returns
// false if either tool is unusable.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger, runner ffmpeg.Runner) bool {
	log.Info("=== System Check ===")

	ok := checkTool(ctx, log, runner, cfg.FFprobePath)
	ok = checkTool(ctx, log, runner, cfg.FFmpegPath) && ok
	if ok {
		checkMP4Muxer(ctx, log, runner, cfg.FFmpegPath)
	}
	return ok
}

// checkTool verifies tool is on PATH and logs its version string.
func checkTool(ctx context.Context, log Logger, runner ffmpeg.Runner, tool string) bool {
	path, err := lookPath(tool)
	if err != nil {
		log.Error("%s not found", tool)
		return false
	}
	res, err := runner.Run(ctx, path, "-version")
	if err != nil || !res.Success() {
		log.Warn("%s found at %s but -version failed", tool, path)
		return false
	}
	log.Success("%s: %s", tool, firstLine(string(res.Stdout)))
	return true
}

// checkMP4Muxer encodes a tiny lavfi clip into the MP4 muxer, the default
// output container for crops. The muxed bytes are discarded.
func checkMP4Muxer(ctx context.Context, log Logger, runner ffmpeg.Runner, tool string) {
	res, err := runner.Run(ctx, tool,
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=size=64x64:rate=25:duration=0.2",
		"-c:v", "mpeg4", "-f", "mp4", "-movflags", "frag_keyframe+empty_moov", "-",
	)
	if err != nil || !res.Success() {
		log.Warn("ffmpeg could not produce a test MP4 (lavfi or mp4 muxer missing?)")
		return
	}
	log.Success("ffmpeg MP4 muxing works")
}

// CheckDeps is the pre-run validation: it verifies that ffprobe, and unless
// only probing also ffmpeg, resolve on PATH. Returns a sentinel error on
// failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := lookPath(cfg.FFprobePath); err != nil {
		return ErrFfprobeNotFound
	}
	if cfg.ProbeOnly {
		return nil
	}
	if _, err := lookPath(cfg.FFmpegPath); err != nil {
		return ErrFfmpegNotFound
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
