package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result holds the outcome of a single external process run that started
// successfully.
type Result struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Runner runs an external tool to completion. A non-nil error means the
// process could not be started at all (missing binary, permission denied);
// a process that ran and exited non-zero is reported through
// Result.ExitCode with a nil error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the os/exec implementation of Runner. When TeeStderr is set
// the tool's stderr is mirrored to os.Stderr in real time while still being
// captured for error reporting.
type ExecRunner struct {
	TeeStderr bool
}

// Run executes name with args and waits for it to exit.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if r.TeeStderr {
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := Result{
		Stdout: stdout.Bytes(),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the process was killed by a signal.
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}

// Detached returns a Runner that starts r's processes with a context that is
// never cancelled, keeping ctx's values. A probe or crop that has started
// runs to completion even after the caller's context is cancelled.
func Detached(r Runner) Runner {
	return detachedRunner{r}
}

type detachedRunner struct {
	inner Runner
}

func (d detachedRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return d.inner.Run(context.WithoutCancel(ctx), name, args...)
}
