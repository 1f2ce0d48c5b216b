package probe

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/backmassage/clipcut/internal/ffmpeg"
	"github.com/backmassage/clipcut/internal/mediaerr"
)

// Prober runs ffprobe through a Runner.
type Prober struct {
	runner ffmpeg.Runner
	tool   string
}

// New returns a Prober that invokes tool (usually "ffprobe") via runner.
func New(runner ffmpeg.Runner, tool string) *Prober {
	return &Prober{runner: runner, tool: tool}
}

// Probe runs one ffprobe call against path and returns its metadata. The
// call is not retried; any failure is returned as a *mediaerr.Error.
func (p *Prober) Probe(ctx context.Context, path string) (VideoMetadata, error) {
	res, err := p.runner.Run(ctx, p.tool, ffmpeg.ProbeArgs(path)...)
	if err != nil {
		return VideoMetadata{}, mediaerr.New(mediaerr.ToolUnavailable, "probe").
			WithDetail("%s", p.tool).Wrap(err)
	}
	if !res.Success() {
		e := mediaerr.New(mediaerr.ProbeFailed, "probe").WithPath(path)
		e.ExitCode = res.ExitCode
		e.Stderr = res.Stderr
		return VideoMetadata{}, e
	}

	md, err := ParseJSON(path, res.Stdout)
	if err != nil {
		var me *mediaerr.Error
		if errors.As(err, &me) && me.Path == "" {
			me.Path = path
		}
		return VideoMetadata{}, err
	}
	return md, nil
}

// ParseJSON converts raw ffprobe JSON output for path into VideoMetadata.
// Exported for testing without a real ffprobe binary.
func ParseJSON(path string, data []byte) (VideoMetadata, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return VideoMetadata{}, mediaerr.New(mediaerr.MalformedOutput, "probe").Wrap(err)
	}
	if raw.Format == nil {
		return VideoMetadata{}, mediaerr.New(mediaerr.MalformedOutput, "probe").
			WithDetail("missing format section")
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(raw.Format.Duration), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return VideoMetadata{}, mediaerr.New(mediaerr.MalformedOutput, "probe").
			WithDetail("duration %q is not a non-negative number", raw.Format.Duration)
	}

	if len(raw.Streams) == 0 {
		return VideoMetadata{}, mediaerr.New(mediaerr.NoVideoStream, "probe")
	}
	// -select_streams v:0 makes streams[0] the first video stream. Older
	// ffprobe builds or wrappers may ignore the selector, so reject a
	// non-video stream when the type is reported.
	first := raw.Streams[0]
	if first.CodecType != "" && first.CodecType != "video" {
		return VideoMetadata{}, mediaerr.New(mediaerr.NoVideoStream, "probe").
			WithDetail("first stream is %s", first.CodecType)
	}

	fps, err := ParseFPS(first.AvgFrameRate)
	if err != nil {
		return VideoMetadata{}, err
	}
	if fps <= 0 {
		return VideoMetadata{}, invalidFrameRate(first.AvgFrameRate)
	}

	return VideoMetadata{
		FilePath: path,
		Duration: duration,
		FPS:      fps,
	}, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
	Format  *ffprobeFormat  `json:"format"`
}

type ffprobeStream struct {
	CodecType    string `json:"codec_type"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}
