// Package buildtask implements the autotools build pipeline:
// mkdirs, autogen, configure and make, run on a background worker.
package buildtask

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Task runs the build pipeline for one configuration exactly once.
type Task struct {
	cfg    *domain.Configuration
	result ports.BuildResult
	tracer ports.Tracer
	logger ports.Logger
	ncpu   int
	source *SourceTree

	executed atomic.Bool
}

// Option configures a Task.
type Option func(*Task)

// WithTracer reports every step as a span of tracer.
func WithTracer(tracer ports.Tracer) Option {
	return func(t *Task) {
		t.tracer = tracer
	}
}

// WithLogger reports skipped steps and outcomes to logger.
func WithLogger(logger ports.Logger) Option {
	return func(t *Task) {
		t.logger = logger
	}
}

// WithCPUCount overrides the core count parallelism is resolved against.
func WithCPUCount(n int) Option {
	return func(t *Task) {
		if n > 0 {
			t.ncpu = n
		}
	}
}

// New creates a Task building cfg and reporting to result.
func New(cfg *domain.Configuration, result ports.BuildResult, opts ...Option) *Task {
	t := &Task{
		cfg:    cfg,
		result: result,
		ncpu:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ExecuteAsync starts the pipeline on a background worker and returns immediately.
// The configuration is snapshotted before the worker starts; later changes
// to it do not affect this build. Cancelling ctx stops the pipeline at the
// next step boundary and kills a running process.
func (t *Task) ExecuteAsync(ctx context.Context, rt ports.Runtime, req domain.BuildRequest) (*Handle, error) {
	if !t.executed.CompareAndSwap(false, true) {
		return nil, zerr.With(zerr.Wrap(domain.ErrTaskAlreadyExecuted, "cannot execute build task"), "configuration", t.cfg.ID())
	}

	snapshot := t.cfg.Snapshot()
	state := &workerState{
		runtime:          rt,
		directoryPath:    req.DirectoryPath,
		projectPath:      req.ProjectPath,
		parallel:         domain.ParallelFlag(snapshot.Parallelism, t.ncpu),
		configureArgv:    append([]string(nil), req.ConfigureArgv...),
		makeTargets:      req.Targets(),
		requireAutogen:   req.RequireAutogen,
		requireConfigure: req.RequireConfigure,
		bootstrapOnly:    req.BootstrapOnly,
		environment:      snapshot.Environment,
		configurationID:  snapshot.ID,
	}

	t.result.SetRunning(true)

	h := newHandle(snapshot.ID)
	go t.run(ctx, h, state)
	return h, nil
}

// Execute runs the pipeline and waits for it to finish.
func (t *Task) Execute(ctx context.Context, rt ports.Runtime, req domain.BuildRequest) error {
	h, err := t.ExecuteAsync(ctx, rt, req)
	if err != nil {
		return err
	}
	return h.Wait()
}

func (t *Task) run(ctx context.Context, h *Handle, state *workerState) {
	var err error
	defer func() {
		t.finish(ctx, h, err)
	}()
	defer zerr.Defer(func(recovered error) {
		err = zerr.With(zerr.Wrap(recovered, "build worker panicked"), "configuration", state.configurationID)
	})

	err = t.pipeline(ctx, state)
}

// finish resolves the handle. running is cleared in every case; failed is
// only set for failures, never for cancellation.
func (t *Task) finish(ctx context.Context, h *Handle, err error) {
	state := domain.TaskStateSucceeded
	switch {
	case err == nil:
	case ctx.Err() != nil:
		state = domain.TaskStateCancelled
		err = cancelledError(ctx, err)
		t.info("build of " + h.label + " cancelled")
	default:
		state = domain.TaskStateFailed
		t.result.SetFailed(true)
	}

	t.result.SetRunning(false)
	h.resolve(state, err)
}

// cancelledError matches both domain.ErrCancelled and the context error.
func cancelledError(ctx context.Context, cause error) error {
	err := zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrCancelled, context.Cause(ctx)), "build interrupted")
	if cause != nil && !errors.Is(cause, context.Canceled) && !errors.Is(cause, context.DeadlineExceeded) {
		err = zerr.With(err, "interrupted_step_error", cause.Error())
	}
	return err
}

func (t *Task) info(msg string) {
	if t.logger != nil {
		t.logger.Info(msg)
	}
}

// Handle tracks a running pipeline.
type Handle struct {
	label string
	done  chan struct{}

	mu    sync.RWMutex
	state domain.TaskState
	err   error
}

func newHandle(label string) *Handle {
	return &Handle{
		label: label,
		done:  make(chan struct{}),
		state: domain.TaskStateRunning,
	}
}

// Done is closed once the pipeline has finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the pipeline has finished and returns its outcome.
// Cancellation yields an error matching domain.ErrCancelled.
func (h *Handle) Wait() error {
	<-h.done
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// State returns the current state of the pipeline.
func (h *Handle) State() domain.TaskState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Handle) resolve(state domain.TaskState, err error) {
	h.mu.Lock()
	h.state = state
	h.err = err
	h.mu.Unlock()
	close(h.done)
}
