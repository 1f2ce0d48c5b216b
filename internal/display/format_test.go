package display

import (
	"testing"

	"github.com/backmassage/clipcut/internal/probe"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical clip 700 MiB", 734003200, "700.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatFrameRate(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		want string
	}{
		{"integer", 25, "25 fps"},
		{"ntsc", 30000.0 / 1001.0, "29.97 fps"},
		{"film ntsc", 24000.0 / 1001.0, "23.976 fps"},
		{"high", 59.94005994, "59.94 fps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFrameRate(tt.fps)
			if got != tt.want {
				t.Errorf("FormatFrameRate(%v) = %q, want %q", tt.fps, got, tt.want)
			}
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	md := probe.VideoMetadata{FilePath: "a.mp4", Duration: 10, FPS: 25}
	want := "00:00:10.000, 25 fps, ~250 frames"
	if got := FormatMetadata(md); got != want {
		t.Errorf("FormatMetadata() = %q, want %q", got, want)
	}
}

func TestFormatKept(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, duration float64
		want                 string
	}{
		{"inside source", 60, 90, 600, "Kept 00:00:30 of 00:10:00"},
		{"end past source", 60, 3600, 600, "Kept 00:09:00 of 00:10:00"},
		{"start past source", 700, 800, 600, "Kept 00:00:00 of 00:10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKept(tt.start, tt.end, tt.duration); got != tt.want {
				t.Errorf("FormatKept() = %q, want %q", got, tt.want)
			}
		})
	}
}
