// Package result implements the build result sink.
package result

import (
	"fmt"
	"io"
	"sync"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

var _ ports.BuildResult = (*Result)(nil)

// Option configures a Result.
type Option func(*Result)

// WithOutput mirrors log lines to the given writers.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Result) {
		r.out = stdout
		r.errOut = stderr
	}
}

// Result implements ports.BuildResult.
//
// Log lines are mirrored to the configured writers, and error lines that look
// like compiler diagnostics are reported to diagnostic observers.
type Result struct {
	name   string
	logger ports.Logger

	mu      sync.RWMutex
	mode    string
	running bool
	failed  bool

	outMu  sync.Mutex
	out    io.Writer
	errOut io.Writer

	stdout *lineWriter
	stderr *lineWriter

	diagMu      sync.Mutex
	diagnostics []domain.Diagnostic
	observers   []func(domain.Diagnostic)
}

// New creates a Result for the build called name.
func New(name string, logger ports.Logger, opts ...Option) *Result {
	r := &Result{
		name:   name,
		logger: logger,
		out:    io.Discard,
		errOut: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.stdout = newLineWriter(r.LogStdout)
	r.stderr = newLineWriter(r.LogStderr)
	return r
}

// SetMode records the human readable phase of the build.
func (r *Result) SetMode(mode string) {
	r.mu.Lock()
	changed := r.mode != mode
	r.mode = mode
	r.mu.Unlock()

	if changed && r.logger != nil {
		r.logger.Info(fmt.Sprintf("%s: %s", r.name, mode))
	}
}

// Mode returns the current phase.
func (r *Result) Mode() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode
}

// SetRunning records whether the build is in progress.
func (r *Result) SetRunning(running bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = running
}

// Running reports whether the build is in progress.
func (r *Result) Running() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// SetFailed records whether the build failed.
func (r *Result) SetFailed(failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = failed
}

// Failed reports whether the build failed.
func (r *Result) Failed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failed
}

// LogStdout appends a line to the standard output log.
func (r *Result) LogStdout(msg string) {
	r.writeLine(r.out, msg)
}

// LogStderr appends a line to the error log.
func (r *Result) LogStderr(msg string) {
	r.writeLine(r.errOut, msg)

	if d, ok := ParseDiagnostic(msg); ok {
		r.addDiagnostic(d)
	}
}

// Stdout returns a writer feeding the standard output log line by line.
func (r *Result) Stdout() io.Writer {
	return r.stdout
}

// Stderr returns a writer feeding the error log line by line.
func (r *Result) Stderr() io.Writer {
	return r.stderr
}

// Close flushes partial lines left in the stream writers.
func (r *Result) Close() error {
	r.stdout.Flush()
	r.stderr.Flush()
	return nil
}

// OnDiagnostic registers fn to be called for every diagnostic found in the error log.
func (r *Result) OnDiagnostic(fn func(domain.Diagnostic)) {
	r.diagMu.Lock()
	defer r.diagMu.Unlock()
	r.observers = append(r.observers, fn)
}

// Diagnostics returns the diagnostics seen so far.
func (r *Result) Diagnostics() []domain.Diagnostic {
	r.diagMu.Lock()
	defer r.diagMu.Unlock()
	out := make([]domain.Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Summary counts warnings and errors (fatal included) among the diagnostics.
func (r *Result) Summary() (warnings, errors int) {
	for _, d := range r.Diagnostics() {
		switch d.Severity {
		case domain.SeverityWarning:
			warnings++
		case domain.SeverityError, domain.SeverityFatal:
			errors++
		}
	}
	return warnings, errors
}

func (r *Result) writeLine(w io.Writer, msg string) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	_, _ = io.WriteString(w, msg+"\n")
}

func (r *Result) addDiagnostic(d domain.Diagnostic) {
	r.diagMu.Lock()
	r.diagnostics = append(r.diagnostics, d)
	observers := make([]func(domain.Diagnostic), len(r.observers))
	copy(observers, r.observers)
	r.diagMu.Unlock()

	for _, fn := range observers {
		fn(d)
	}
}
