// Package mediaerr defines the typed errors returned by the probe, crop and
// selection steps. Callers branch on [Kind]; only the outermost boundary turns
// an error into user-facing text.
package mediaerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure by the remediation it needs.
type Kind int

const (
	KindUnknown           Kind = iota
	NoSelection                // Crop requested before any file was selected.
	InvalidRange               // Start is negative or not before end.
	ToolUnavailable            // ffprobe/ffmpeg could not be started.
	ProbeFailed                // ffprobe exited non-zero.
	MalformedOutput            // ffprobe output did not have the expected shape.
	NoVideoStream              // No video stream to report on.
	InvalidFrameRate           // avg_frame_rate was not a usable N/D rational.
	CropFailed                 // ffmpeg exited non-zero.
	NoDestinationSelected      // No output path was chosen.
	Cancelled                  // The user dismissed a picker.
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown error",
	NoSelection:           "no file selected",
	InvalidRange:          "invalid time range",
	ToolUnavailable:       "tool unavailable",
	ProbeFailed:           "probe failed",
	MalformedOutput:       "malformed probe output",
	NoVideoStream:         "no video stream",
	InvalidFrameRate:      "invalid frame rate",
	CropFailed:            "crop failed",
	NoDestinationSelected: "no save location selected",
	Cancelled:             "cancelled",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ErrCancelled is returned by pickers when nothing was chosen.
var ErrCancelled = errors.New("nothing chosen")

// Error is the concrete error type for every Kind. Fields other than Kind are
// optional diagnostics.
type Error struct {
	Kind     Kind
	Op       string // "probe", "crop", "select"
	Path     string // File the operation was about, if any.
	Detail   string // Offending value, e.g. the frame-rate text.
	ExitCode int    // Exit status of the external tool; 0 when not applicable.
	Stderr   string // Trimmed stderr of the external tool.
	Err      error  // Underlying cause.
}

// New returns an *Error of the given kind for op.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

func (e *Error) Error() string {
	if e == nil {
		return "media error"
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(&b, " %q", e.Path)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.ExitCode != 0 {
		fmt.Fprintf(&b, " (exit code %d)", e.ExitCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match against another *Error of the same Kind, so sentinel
// comparisons like errors.Is(err, mediaerr.New(mediaerr.NoVideoStream, ""))
// work regardless of diagnostics.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var me *Error
	if errors.As(err, &me) && me != nil {
		return me.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// WithPath sets Path and returns e for chaining.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithDetail sets Detail and returns e for chaining.
func (e *Error) WithDetail(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap sets the underlying cause and returns e for chaining.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}
