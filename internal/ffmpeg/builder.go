package ffmpeg

import (
	ffmpeggo "github.com/u2takey/ffmpeg-go"
)

// ProbeArgs returns the ffprobe arguments that report the container duration
// and the first video stream's average frame rate as JSON.
//
// -select_streams v:0 restricts the streams array to the first video stream,
// so streams[0] is the stream of interest whenever the file has video.
func ProbeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "format=duration:stream=avg_frame_rate,codec_type",
		"-of", "json",
		path,
	}
}

// CropArgs returns the ffmpeg arguments for a stream-copy trim of input
// starting at start and lasting duration, written to output. start and
// duration must already be in ffmpeg's timestamp grammar (see the timecode
// package).
//
// The seek is an input option (before -i) so ffmpeg jumps straight to the
// nearest preceding keyframe instead of decoding from the beginning. The
// output is overwritten if it exists.
func CropArgs(input, output, start, duration string) []string {
	return ffmpeggo.Input(input, ffmpeggo.KwArgs{"ss": start}).
		Output(output, ffmpeggo.KwArgs{"t": duration, "c": "copy"}).
		GlobalArgs("-hide_banner", "-nostdin", "-loglevel", "error").
		OverWriteOutput().
		GetArgs()
}
