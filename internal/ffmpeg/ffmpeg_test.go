package ffmpeg

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flagValue returns the argument following flag, or "" if flag is absent.
func flagValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

func TestProbeArgs(t *testing.T) {
	args := ProbeArgs("/videos/in.mp4")

	assert.Equal(t, "error", flagValue(args, "-v"))
	assert.Equal(t, "v:0", flagValue(args, "-select_streams"))
	assert.Equal(t, "json", flagValue(args, "-of"))
	assert.Contains(t, flagValue(args, "-show_entries"), "format=duration")
	assert.Contains(t, flagValue(args, "-show_entries"), "avg_frame_rate")
	assert.Equal(t, "/videos/in.mp4", args[len(args)-1])
}

func TestCropArgs(t *testing.T) {
	args := CropArgs("/videos/in.mp4", "/out/clip.mp4", "00:00:10.000", "00:00:05.500")

	assert.Equal(t, "00:00:10.000", flagValue(args, "-ss"))
	assert.Equal(t, "/videos/in.mp4", flagValue(args, "-i"))
	assert.Equal(t, "00:00:05.500", flagValue(args, "-t"))
	assert.Equal(t, "copy", flagValue(args, "-c"))
	assert.Contains(t, args, "-y")

	// Seek is an input option; duration and codec are output options.
	ss, in, out := indexOf(args, "-ss"), indexOf(args, "-i"), indexOf(args, "/out/clip.mp4")
	require.True(t, ss >= 0 && in >= 0 && out >= 0, "args: %v", args)
	assert.Less(t, ss, in)
	assert.Less(t, in, indexOf(args, "-t"))
	assert.Less(t, indexOf(args, "-t"), out)
	assert.Less(t, indexOf(args, "-c"), out)
}

func TestCropArgs_PathsWithSpaces(t *testing.T) {
	args := CropArgs("/my videos/in file.mkv", "/out dir/clip one.mkv", "00:00:00.000", "00:01:00.000")
	assert.Equal(t, "/my videos/in file.mkv", flagValue(args, "-i"))
	assert.Contains(t, args, "/out dir/clip one.mkv")
}

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{"missing input", "/videos/x.mp4: No such file or directory", "check that the input file and the output directory exist"},
		{"permission", "/root/out.mp4: Permission denied", "check read permission on the input and write permission on the output location"},
		{"invalid data", "in.mp4: Invalid data found when processing input", "the input does not look like a readable video file"},
		{"moov", "[mov,mp4,m4a,3gp,3g2,mj2 @ 0x1] moov atom not found", "the input does not look like a readable video file"},
		{"container", "[mp4 @ 0x1] Could not find tag for codec pcm_s16le in stream #1, codec not currently supported in container",
			"the source streams cannot be copied into this container; try the source's own extension (e.g. .mkv)"},
		{"disk full", "av_interleaved_write_frame(): No space left on device", "the output disk is full"},
		{"unknown", "something else happened", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hint(tt.stderr))
		})
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "clipcut-definitely-not-a-binary", "-version")
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_ExitCodeAndStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	res, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo out; echo oops >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
	assert.Equal(t, "oops", res.Stderr)
	assert.Equal(t, "out\n", string(res.Stdout))

	res, err = ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.True(t, res.Success())
}

type ctxRunner struct {
	seen error
	name string
}

func (r *ctxRunner) Run(ctx context.Context, name string, _ ...string) (Result, error) {
	r.seen = ctx.Err()
	r.name = name
	return Result{}, nil
}

func TestDetached_IgnoresCancel(t *testing.T) {
	inner := &ctxRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Detached(inner).Run(ctx, "ffmpeg", "-version")
	require.NoError(t, err)
	assert.NoError(t, inner.seen)
	assert.Equal(t, "ffmpeg", inner.name)
}
