package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/clipcut/internal/mediaerr"
)

// VideoExtensions are the source types offered by the source picker.
var VideoExtensions = []string{"mp4", "mkv", "avi", "mov", "flv", "wmv"}

// DefaultOutputExt is appended to a destination typed without an extension.
const DefaultOutputExt = ".mp4"

// Picker is the file-selection surface. Both methods return
// mediaerr.ErrCancelled when the user chose nothing.
type Picker interface {
	PickSource(ctx context.Context) (string, error)
	PickDestination(ctx context.Context, suggested string) (string, error)
}

// ArgPicker serves paths fixed up front, e.g. from the command line. An empty
// path means nothing was chosen; a done ctx returns ctx.Err().
type ArgPicker struct {
	Source      string
	Destination string
}

func (p ArgPicker) PickSource(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Source == "" {
		return "", mediaerr.ErrCancelled
	}
	return p.Source, nil
}

func (p ArgPicker) PickDestination(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Destination == "" {
		return "", mediaerr.ErrCancelled
	}
	return p.Destination, nil
}

// PromptPicker asks for paths on a line-oriented terminal. An empty answer to
// the source prompt, or end of input, cancels. Sources must carry one of
// VideoExtensions; other answers are rejected and asked again. A prompt
// waiting for input returns ctx.Err() as soon as ctx is done.
type PromptPicker struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan lineResult // read still in flight after a cancelled prompt
}

type lineResult struct {
	line string
	err  error
}

// NewPromptPicker reads answers from in and writes prompts to out.
func NewPromptPicker(in io.Reader, out io.Writer) *PromptPicker {
	return &PromptPicker{in: bufio.NewReader(in), out: out}
}

func (p *PromptPicker) PickSource(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(p.out, "Video file (%s): ", strings.Join(VideoExtensions, ", "))
		answer, err := p.readLine(ctx)
		if err != nil && ctx.Err() != nil {
			return "", err
		}
		if answer == "" {
			return "", mediaerr.ErrCancelled
		}
		if !HasVideoExt(answer) {
			fmt.Fprintf(p.out, "Not a video file: %s\n", answer)
			continue
		}
		return answer, nil
	}
}

func (p *PromptPicker) PickDestination(ctx context.Context, suggested string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if suggested != "" {
		fmt.Fprintf(p.out, "Save cropped video [%s]: ", suggested)
	} else {
		fmt.Fprint(p.out, "Save cropped video: ")
	}
	answer, err := p.readLine(ctx)
	if err != nil && ctx.Err() != nil {
		return "", err
	}
	if answer == "" {
		if err != nil {
			return "", mediaerr.ErrCancelled
		}
		answer = suggested
	}
	if answer == "" {
		return "", mediaerr.ErrCancelled
	}
	if filepath.Ext(answer) == "" {
		answer += DefaultOutputExt
	}
	return answer, nil
}

// readLine returns the next trimmed line. A final line without a newline is
// returned together with io.EOF. The read runs in its own goroutine so a
// cancelled ctx does not wait on the terminal; an abandoned read is picked up
// by the next call.
func (p *PromptPicker) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: strings.TrimSpace(line), err: err}
		}()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}

// HasVideoExt reports whether path ends in one of VideoExtensions,
// case-insensitively.
func HasVideoExt(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, v := range VideoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// SuggestDestination proposes "<dir>/<name>_cut<ext>" next to src, keeping the
// source container so stream copy stays valid. An existing file at that path
// is not offered; a numbered variant is suggested instead.
func SuggestDestination(src string) string {
	if src == "" {
		return ""
	}
	ext := filepath.Ext(src)
	if ext == "" {
		ext = DefaultOutputExt
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return freePath(filepath.Join(filepath.Dir(src), base+"_cut"+ext), fileExists)
}

// freePath returns path, or the first "<stem> - N<ext>" variant (N from 2)
// for which exists reports false.
func freePath(path string, exists func(string) bool) string {
	if !exists(path) {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	for n := 2; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - %d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
