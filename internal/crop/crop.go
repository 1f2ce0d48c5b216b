// Package crop validates a requested time range and runs the stream-copy
// ffmpeg trim for the selected file.
//
// Because the trim copies streams instead of re-encoding them, ffmpeg starts
// the output on the keyframe at or before the requested start. The written
// clip can therefore begin slightly earlier than asked and its length is only
// accurate to the keyframe spacing of the source. This is a known property of
// lossless trimming.
package crop

import (
	"context"
	"math"

	"github.com/backmassage/clipcut/internal/ffmpeg"
	"github.com/backmassage/clipcut/internal/mediaerr"
	"github.com/backmassage/clipcut/internal/timecode"
)

// Source yields the currently selected file, if any. *state.Selection
// satisfies it.
type Source interface {
	Get() (string, bool)
}

// Request is a crop range in seconds from the start of the source.
type Request struct {
	Start float64
	End   float64
}

// Validate reports InvalidRange unless 0 <= Start < End and both are finite.
func (r Request) Validate() error {
	if !isFinite(r.Start) || !isFinite(r.End) {
		return mediaerr.New(mediaerr.InvalidRange, "crop").
			WithDetail("start and end must be finite (start %g, end %g)", r.Start, r.End)
	}
	if r.Start >= r.End {
		return mediaerr.New(mediaerr.InvalidRange, "crop").
			WithDetail("end time must be greater than start time (start %g, end %g)", r.Start, r.End)
	}
	if r.Start < 0 {
		return mediaerr.New(mediaerr.InvalidRange, "crop").
			WithDetail("start time must not be negative (start %g)", r.Start)
	}
	return nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// StartTime is the ffmpeg seek position for the request.
func (r Request) StartTime() string { return timecode.Format(r.Start) }

// CutDuration is the ffmpeg duration limit for the request.
func (r Request) CutDuration() string { return timecode.Format(r.End - r.Start) }

// Orchestrator runs crops through a Runner.
type Orchestrator struct {
	runner ffmpeg.Runner
	tool   string
}

// New returns an Orchestrator that invokes tool (usually "ffmpeg") via runner.
func New(runner ffmpeg.Runner, tool string) *Orchestrator {
	return &Orchestrator{runner: runner, tool: tool}
}

// Args validates the inputs and returns the ffmpeg argument list the crop
// would run, without running it. Validation order: range, then selection,
// then destination; the first failure wins.
func (o *Orchestrator) Args(src Source, req Request, dest string) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	input, ok := src.Get()
	if !ok {
		return nil, mediaerr.New(mediaerr.NoSelection, "crop")
	}
	if dest == "" {
		return nil, mediaerr.New(mediaerr.NoDestinationSelected, "crop")
	}
	return ffmpeg.CropArgs(input, dest, req.StartTime(), req.CutDuration()), nil
}

// Crop writes the requested range of the selected file to dest and returns
// dest. It starts exactly one ffmpeg process per call. On failure a partially
// written dest is left as is.
func (o *Orchestrator) Crop(ctx context.Context, src Source, req Request, dest string) (string, error) {
	args, err := o.Args(src, req, dest)
	if err != nil {
		return "", err
	}

	res, err := o.runner.Run(ctx, o.tool, args...)
	if err != nil {
		return "", mediaerr.New(mediaerr.ToolUnavailable, "crop").
			WithDetail("%s", o.tool).Wrap(err)
	}
	if !res.Success() {
		e := mediaerr.New(mediaerr.CropFailed, "crop").WithPath(dest)
		e.ExitCode = res.ExitCode
		e.Stderr = res.Stderr
		return "", e
	}
	return dest, nil
}
