package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/clipcut/internal/ffmpeg"
	"github.com/backmassage/clipcut/internal/mediaerr"
)

// Describe converts err into the message shown to the user. Each kind gets
// wording that points at its own remedy.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var me *mediaerr.Error
	if !errors.As(err, &me) {
		return err.Error()
	}

	switch me.Kind {
	case mediaerr.Cancelled:
		return "No file selected"
	case mediaerr.NoSelection:
		return "No file selected. Select a video before cropping."
	case mediaerr.NoDestinationSelected:
		return "No save location selected"
	case mediaerr.InvalidRange:
		return "Invalid time range: " + me.Detail
	case mediaerr.ToolUnavailable:
		return fmt.Sprintf("Failed to execute %s: %v. Is it installed and on PATH?", me.Detail, me.Err)
	case mediaerr.ProbeFailed:
		return withStderr(fmt.Sprintf("ffprobe could not read %s (exit code %d)", me.Path, me.ExitCode), me.Stderr)
	case mediaerr.MalformedOutput:
		reason := me.Detail
		if reason == "" && me.Err != nil {
			reason = me.Err.Error()
		}
		return fmt.Sprintf("ffprobe returned unexpected output for %s: %s", me.Path, reason)
	case mediaerr.NoVideoStream:
		return fmt.Sprintf("%s has no video stream", me.Path)
	case mediaerr.InvalidFrameRate:
		return fmt.Sprintf("Could not determine the frame rate of %s (ffprobe reported %s)", me.Path, me.Detail)
	case mediaerr.CropFailed:
		return withStderr(fmt.Sprintf("FFmpeg failed with exit code: %d", me.ExitCode), me.Stderr)
	}
	return err.Error()
}

// withStderr appends the last line of stderr and, when one matches, a hint.
func withStderr(msg, stderr string) string {
	if line := lastLine(stderr); line != "" {
		msg += ": " + line
	}
	if hint := ffmpeg.Hint(stderr); hint != "" {
		msg += " (" + hint + ")"
	}
	return msg
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
