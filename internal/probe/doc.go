// Package probe provides ffprobe-based metadata extraction.
//
// A single ffprobe JSON call reports the container duration and the first
// video stream's average frame rate; [ParseJSON] maps that output onto a
// validated [VideoMetadata]. The tool itself runs through an injected
// ffmpeg.Runner so tests never need a real binary.
package probe
