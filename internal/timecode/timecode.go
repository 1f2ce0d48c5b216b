// Package timecode converts between float seconds and the HH:MM:SS[.mmm]
// timestamp grammar accepted by ffmpeg's -ss and -t options.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders seconds as HH:MM:SS.mmm. Every field is derived from the
// original float with floor/mod so rounding error does not compound across
// fields. Milliseconds are rounded to nearest; a rounded value of 1000 carries
// into the next whole second. Hours are padded to two digits but never
// truncated. Negative, NaN and infinite input renders as zero; values above
// MaxSeconds render as MaxSeconds.
func Format(seconds float64) string {
	seconds = clamp(seconds)

	ms := math.Round(math.Mod(seconds, 1) * 1000)
	if ms >= 1000 {
		seconds = math.Floor(seconds) + 1
		ms = 0
	}

	hours := math.Floor(seconds / 3600)
	minutes := math.Floor(math.Mod(seconds, 3600) / 60)
	secs := math.Floor(math.Mod(seconds, 60))

	return fmt.Sprintf("%02d:%02d:%02d.%03d", int64(hours), int64(minutes), int64(secs), int64(ms))
}

// FormatWhole renders seconds as HH:MM:SS, dropping the fractional part.
func FormatWhole(seconds float64) string {
	seconds = clamp(seconds)
	hours := math.Floor(seconds / 3600)
	minutes := math.Floor(math.Mod(seconds, 3600) / 60)
	secs := math.Floor(math.Mod(seconds, 60))
	return fmt.Sprintf("%02d:%02d:%02d", int64(hours), int64(minutes), int64(secs))
}

// MaxSeconds is the largest value Format renders exactly. Every field still
// fits an int64 and the millisecond fraction survives float64 precision.
const MaxSeconds = 1 << 40

func clamp(seconds float64) float64 {
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0:
		return 0
	case seconds > MaxSeconds:
		return MaxSeconds
	}
	return seconds
}

// Parse reads "SS[.fff]", "MM:SS[.fff]" or "HH:MM:SS[.fff]" into seconds.
// Minutes and seconds fields after the first must be below 60.
func Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q (use HH:MM:SS.mmm or seconds)", text)
	}

	// The last field may carry a fraction; the leading ones are whole numbers.
	last := fields[len(fields)-1]
	secs, err := strconv.ParseFloat(last, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, fmt.Errorf("invalid timestamp %q (use HH:MM:SS.mmm or seconds)", text)
	}
	if len(fields) > 1 && secs >= 60 {
		return 0, fmt.Errorf("invalid timestamp %q: seconds field must be below 60", text)
	}

	total := secs
	unit := 60.0
	for i := len(fields) - 2; i >= 0; i-- {
		n, err := strconv.ParseUint(fields[i], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q (use HH:MM:SS.mmm or seconds)", text)
		}
		// Minutes (the field right before seconds) must stay below 60 when hours are present.
		if i == 1 && n >= 60 {
			return 0, fmt.Errorf("invalid timestamp %q: minutes field must be below 60", text)
		}
		total += float64(n) * unit
		unit *= 60
	}
	return total, nil
}
