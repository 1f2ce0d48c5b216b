package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying ffprobe/ffmpeg stderr into a short
// remediation hint. Checked in order by [Hint]; the first match wins.
var (
	reMissingFile = regexp.MustCompile(
		`No such file or directory`)

	rePermission = regexp.MustCompile(
		`(?i)Permission denied|Operation not permitted|Read-only file system`)

	reInvalidData = regexp.MustCompile(
		`(?i)Invalid data found when processing input|` +
			`moov atom not found|` +
			`could not find codec parameters|` +
			`EBML header parsing failed`)

	reContainerMismatch = regexp.MustCompile(
		`(?i)Could not find tag for codec .* in stream|` +
			`codec not currently supported in container|` +
			`Unable to choose an output format|` +
			`Could not write header for output file`)

	reDiskFull = regexp.MustCompile(
		`(?i)No space left on device`)
)

// Hint returns a one-line suggestion for the failure described by stderr,
// or "" when no known pattern matches.
func Hint(stderr string) string {
	switch {
	case reMissingFile.MatchString(stderr):
		return "check that the input file and the output directory exist"
	case rePermission.MatchString(stderr):
		return "check read permission on the input and write permission on the output location"
	case reInvalidData.MatchString(stderr):
		return "the input does not look like a readable video file"
	case reContainerMismatch.MatchString(stderr):
		return "the source streams cannot be copied into this container; try the source's own extension (e.g. .mkv)"
	case reDiskFull.MatchString(stderr):
		return "the output disk is full"
	}
	return ""
}
