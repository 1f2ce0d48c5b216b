package probe

import "math"

// VideoMetadata is what the probe reports about a selected file. It is built
// only by this package and never modified afterwards.
type VideoMetadata struct {
	FilePath string  `json:"file_path"`
	Duration float64 `json:"duration"` // Seconds, >= 0.
	FPS      float64 `json:"fps"`      // Frames per second, > 0.
}

// FrameCount returns the approximate number of frames in the file.
func (m VideoMetadata) FrameCount() int64 {
	return int64(math.Round(m.Duration * m.FPS))
}

// FrameDuration returns the length of one frame in seconds.
func (m VideoMetadata) FrameDuration() float64 {
	if m.FPS <= 0 {
		return 0
	}
	return 1 / m.FPS
}
