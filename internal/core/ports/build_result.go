package ports

import "io"

// BuildResult collects the progress and output of one build.
//
//go:generate mockgen -source=build_result.go -destination=mocks/mock_build_result.go -package=mocks
type BuildResult interface {
	SetMode(mode string)
	Mode() string
	SetRunning(running bool)
	Running() bool
	SetFailed(failed bool)
	Failed() bool
	// LogStdout appends a line to the standard output log.
	LogStdout(msg string)
	// LogStderr appends a line to the error log.
	LogStderr(msg string)
	// Stdout returns a writer that streams process output into the standard output log.
	Stdout() io.Writer
	// Stderr returns a writer that streams process output into the error log.
	Stderr() io.Writer
}
