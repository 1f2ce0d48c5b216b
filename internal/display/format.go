package display

import (
	"fmt"
	"math"
	"strconv"

	"github.com/backmassage/clipcut/internal/probe"
	"github.com/backmassage/clipcut/internal/timecode"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatFrameRate returns fps rounded to three decimals without trailing
// zeros (e.g. "29.97 fps", "25 fps").
func FormatFrameRate(fps float64) string {
	return strconv.FormatFloat(math.Round(fps*1000)/1000, 'f', -1, 64) + " fps"
}

// FormatMetadata returns the one-line summary logged after a probe.
func FormatMetadata(md probe.VideoMetadata) string {
	return fmt.Sprintf("%s, %s, ~%d frames",
		timecode.Format(md.Duration), FormatFrameRate(md.FPS), md.FrameCount())
}

// FormatKept returns the "kept X of Y" line logged after a crop. The kept
// length stops at the end of the source, where ffmpeg stops reading.
func FormatKept(start, end, duration float64) string {
	kept := math.Min(end, duration) - start
	if kept < 0 {
		kept = 0
	}
	return fmt.Sprintf("Kept %s of %s", timecode.FormatWhole(kept), timecode.FormatWhole(duration))
}
