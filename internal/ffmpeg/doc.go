// Package ffmpeg builds ffprobe/ffmpeg argument lists and runs them through
// an injectable [Runner].
//
// Layout:
//   - runner.go: Runner interface, Result, and the os/exec backed ExecRunner.
//   - builder.go: ProbeArgs and CropArgs. CropArgs uses ffmpeg-go's stream
//     graph so the seek/input/duration/copy/output order is produced by the
//     library rather than hand-assembled.
//   - errors.go: compiled regexes that classify tool stderr into a short
//     remediation hint.
//
// The crop is a stream copy (-c copy). ffmpeg can only start a copied video
// stream on a keyframe, so the real cut points snap to the nearest keyframe
// instead of the exact requested frame. That is the price of a lossless trim,
// not a bug.
package ffmpeg
