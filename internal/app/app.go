// Package app is the public operation surface: select a video and crop it.
//
// App wires the Selection, the probe, the crop orchestrator and a Picker
// together. Its methods return typed *mediaerr.Error values; [Describe] is the
// boundary adapter that turns any of them into the message shown to the user.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/backmassage/clipcut/internal/crop"
	"github.com/backmassage/clipcut/internal/mediaerr"
	"github.com/backmassage/clipcut/internal/probe"
	"github.com/backmassage/clipcut/internal/state"
)

// Logger is the minimal logging interface App needs. *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Prober reads metadata for a file. *probe.Prober satisfies it.
type Prober interface {
	Probe(ctx context.Context, path string) (probe.VideoMetadata, error)
}

// Cropper runs a crop. *crop.Orchestrator satisfies it.
type Cropper interface {
	Crop(ctx context.Context, src crop.Source, req crop.Request, dest string) (string, error)
}

// Options holds App's collaborators. Selection defaults to a fresh empty one
// and Log to a no-op logger.
type Options struct {
	Selection *state.Selection
	Prober    Prober
	Cropper   Cropper
	Picker    Picker
	Log       Logger
	Verbose   bool
}

// App runs select and crop operations. Each call blocks until the external
// tool has finished.
type App struct {
	sel     *state.Selection
	prober  Prober
	cropper Cropper
	picker  Picker
	log     Logger
	verbose bool
}

// New returns an App built from opts.
func New(opts Options) *App {
	a := &App{
		sel:     opts.Selection,
		prober:  opts.Prober,
		cropper: opts.Cropper,
		picker:  opts.Picker,
		log:     opts.Log,
		verbose: opts.Verbose,
	}
	if a.sel == nil {
		a.sel = state.NewSelection()
	}
	if a.log == nil {
		a.log = nopLogger{}
	}
	return a
}

// Selection returns the shared selection state.
func (a *App) Selection() *state.Selection { return a.sel }

// Select asks the picker for a source, records it as the current selection
// and probes it. The selection is updated as soon as a path is chosen, so a
// probe failure still leaves the chosen file selected.
func (a *App) Select(ctx context.Context) (probe.VideoMetadata, error) {
	path, err := a.picker.PickSource(ctx)
	if err != nil {
		if dismissed(err) {
			return probe.VideoMetadata{}, mediaerr.New(mediaerr.Cancelled, "select").Wrap(err)
		}
		return probe.VideoMetadata{}, fmt.Errorf("select: %w", err)
	}

	a.sel.Set(path)
	a.log.Debug(a.verbose, "Selected %s", path)

	return a.prober.Probe(ctx, path)
}

// Crop validates [start, end), asks the picker for a destination and writes
// the range of the selected file there. It returns the destination path.
//
// Validation happens before the destination prompt: an invalid range or a
// missing selection fails without asking the user anything.
func (a *App) Crop(ctx context.Context, start, end float64) (string, error) {
	req := crop.Request{Start: start, End: end}
	if err := req.Validate(); err != nil {
		return "", err
	}

	src, ok := a.sel.Get()
	if !ok {
		return "", mediaerr.New(mediaerr.NoSelection, "crop")
	}

	dest, err := a.picker.PickDestination(ctx, SuggestDestination(src))
	if err != nil {
		if dismissed(err) {
			return "", mediaerr.New(mediaerr.NoDestinationSelected, "crop").Wrap(err)
		}
		return "", fmt.Errorf("crop: %w", err)
	}

	a.log.Info("Cropping %s -> %s (start %s, duration %s)", src, dest, req.StartTime(), req.CutDuration())

	// Crop the file that was validated above even if a concurrent Select
	// replaces the selection meanwhile.
	return a.cropper.Crop(ctx, snapshot(src), req, dest)
}

// dismissed reports whether a picker error means nothing was chosen: an
// explicit cancel, or an interrupt while the prompt was open.
func dismissed(err error) bool {
	return errors.Is(err, mediaerr.ErrCancelled) || errors.Is(err, context.Canceled)
}

// snapshot is a crop.Source fixed to one path.
type snapshot string

func (s snapshot) Get() (string, bool) { return string(s), s != "" }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Debug(bool, string, ...interface{}) {}
