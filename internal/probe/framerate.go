package probe

import (
	"math"
	"strconv"
	"strings"

	"github.com/backmassage/clipcut/internal/mediaerr"
)

// ParseFPS converts an ffprobe rational such as "30000/1001" into frames per
// second. The text must hold exactly one '/' between two finite numbers, and
// the quotient must be finite. ffprobe reports "0/0" for streams without a
// reliable average rate.
func ParseFPS(text string) (float64, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, invalidFrameRate(text)
	}

	num, ok := parseFinite(parts[0])
	if !ok {
		return 0, invalidFrameRate(text)
	}
	den, ok := parseFinite(parts[1])
	if !ok || den == 0 {
		return 0, invalidFrameRate(text)
	}
	fps := num / den
	if math.IsInf(fps, 0) {
		return 0, invalidFrameRate(text)
	}
	return fps, nil
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func invalidFrameRate(text string) *mediaerr.Error {
	return mediaerr.New(mediaerr.InvalidFrameRate, "probe").WithDetail("%q", text)
}
