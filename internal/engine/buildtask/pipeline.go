package buildtask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Sentinel files probed by the pipeline.
const (
	autogenScript   = "autogen.sh"
	configureScript = "configure"
	makefile        = "Makefile"
)

// Modes reported to the build result.
const (
	ModeAutogen   = "Running autogen…"
	ModeConfigure = "Running configure…"
	ModeBuilding  = "Building…"
	ModeCleaning  = "Cleaning…"
)

// stderrTailLines is how much error output a failed process error carries.
const stderrTailLines = 20

// workerState is the per-invocation snapshot the pipeline runs against.
type workerState struct {
	runtime          ports.Runtime
	directoryPath    string
	projectPath      string
	parallel         string
	configureArgv    []string
	makeTargets      []string
	requireAutogen   bool
	requireConfigure bool
	bootstrapOnly    bool
	environment      *domain.Environment
	configurationID  string
}

// step runs one stage. It returns false to stop the pipeline; with a nil
// error that means the build is complete.
type step struct {
	name string
	run  func(ctx context.Context, span ports.Span, state *workerState) (bool, error)
}

func (t *Task) steps() []step {
	return []step{
		{name: "mkdirs", run: t.stepMkdirs},
		{name: "autogen", run: t.stepAutogen},
		{name: "configure", run: t.stepConfigure},
		{name: "make", run: t.stepMake},
	}
}

func (t *Task) pipeline(ctx context.Context, state *workerState) error {
	steps := t.steps()

	if t.tracer != nil {
		names := make([]string, 0, len(steps))
		for _, s := range steps {
			names = append(names, s.name)
		}
		t.tracer.EmitPlan(ctx, names)
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		cont, err := t.runStep(ctx, s, state)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

func (t *Task) runStep(ctx context.Context, s step, state *workerState) (bool, error) {
	ctx, span := t.startSpan(ctx, s.name, ports.WithAttribute("configuration", state.configurationID))
	defer span.End()

	cont, err := s.run(ctx, span, state)
	if err != nil {
		span.RecordError(err)
	}
	return cont, err
}

func (t *Task) startSpan(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	if t.tracer == nil {
		return ctx, discardSpan{}
	}
	return t.tracer.Start(ctx, name, opts...)
}

func (t *Task) stepMkdirs(_ context.Context, _ ports.Span, state *workerState) (bool, error) {
	info, err := os.Stat(state.directoryPath)
	switch {
	case err == nil && info.IsDir():
		return true, nil
	case err == nil:
		return false, zerr.With(zerr.Wrap(domain.ErrNotADirectory, "'"+state.directoryPath+"' is not a directory."), "path", state.directoryPath)
	case !errors.Is(err, fs.ErrNotExist):
		return false, zerr.With(zerr.Wrap(errorsJoin(domain.ErrDirectoryCreateFailed, err), "Failed to create build directory."), "path", state.directoryPath)
	}

	if err := os.MkdirAll(state.directoryPath, 0o750); err != nil {
		return false, zerr.With(zerr.Wrap(errorsJoin(domain.ErrDirectoryCreateFailed, err), "Failed to create build directory."), "path", state.directoryPath)
	}
	return true, nil
}

func (t *Task) stepAutogen(ctx context.Context, span ports.Span, state *workerState) (bool, error) {
	configurePath := filepath.Join(state.projectPath, configureScript)

	regenerated, unlock := t.lockSource()
	defer unlock()

	if (!state.requireAutogen || regenerated) && exists(configurePath) {
		span.SetAttribute("skipped", true)
		t.info("autogen skipped: " + configurePath + " exists")
		return true, nil
	}

	autogenPath := filepath.Join(state.projectPath, autogenScript)
	if !exists(autogenPath) {
		return false, zerr.With(zerr.Wrap(domain.ErrScriptMissing, "autogen.sh is missing from project directory ("+state.projectPath+")."), "path", autogenPath)
	}
	if !isExecutable(autogenPath) {
		return false, zerr.With(zerr.Wrap(domain.ErrScriptNotExecutable, "autogen.sh is not executable."), "path", autogenPath)
	}

	t.result.SetMode(ModeAutogen)

	launcher, err := t.newLauncher(state, state.projectPath)
	if err != nil {
		return false, err
	}
	launcher.Setenv("NOCONFIGURE", "1", true)
	launcher.OverlayEnvironment(state.environment)

	if err := t.spawnAndWait(ctx, span, launcher, autogenPath); err != nil {
		return false, err
	}

	if !isExecutable(configurePath) {
		return false, zerr.With(zerr.Wrap(domain.ErrConfigureNotProduced, "autogen.sh failed to create configure ("+configurePath+")"), "path", configurePath)
	}
	t.markRegenerated()
	return true, nil
}

func (t *Task) stepConfigure(ctx context.Context, span ports.Span, state *workerState) (bool, error) {
	if !state.requireConfigure && exists(filepath.Join(state.directoryPath, makefile)) {
		span.SetAttribute("skipped", true)
		t.info("configure skipped: Makefile exists in " + state.directoryPath)
		return true, nil
	}
	if len(state.configureArgv) == 0 {
		return false, zerr.Wrap(domain.ErrEmptyArgv, "no configure invocation given")
	}

	t.result.SetMode(ModeConfigure)

	launcher, err := t.newLauncher(state, state.directoryPath)
	if err != nil {
		return false, err
	}
	launcher.OverlayEnvironment(state.environment)

	if err := t.spawnAndWait(ctx, span, launcher, state.configureArgv[0], state.configureArgv[1:]...); err != nil {
		return false, err
	}

	if state.bootstrapOnly {
		t.info("bootstrap of " + state.configurationID + " complete")
		return false, nil
	}
	return true, nil
}

func (t *Task) stepMake(ctx context.Context, span ports.Span, state *workerState) (bool, error) {
	launcher, err := t.newLauncher(state, state.directoryPath)
	if err != nil {
		return false, err
	}
	launcher.OverlayEnvironment(state.environment)

	var program string
	switch {
	case state.runtime.ContainsProgramInPath(ctx, "gmake"):
		program = "gmake"
	case state.runtime.ContainsProgramInPath(ctx, "make"):
		program = "make"
	default:
		return false, zerr.With(zerr.Wrap(domain.ErrMakeNotFound, "Failed to locate make."), "runtime", state.runtime.ID())
	}
	span.SetAttribute("make", program)
	span.SetAttribute("targets", state.makeTargets)

	for _, target := range state.makeTargets {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		if target == "clean" {
			t.result.SetMode(ModeCleaning)
		} else {
			t.result.SetMode(ModeBuilding)
		}

		if err := t.makeTarget(ctx, launcher, program, target, state.parallel); err != nil {
			return false, zerr.With(err, "target", target)
		}
	}
	return true, nil
}

func (t *Task) makeTarget(ctx context.Context, launcher ports.Launcher, program, target, parallel string) error {
	ctx, span := t.startSpan(ctx, "make "+target, ports.WithAttribute("target", target))
	defer span.End()

	err := t.spawnAndWait(ctx, span, launcher, program, target, parallel)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// newLauncher creates a runtime launcher running in cwd with LANG=C.
func (t *Task) newLauncher(state *workerState, cwd string) (ports.Launcher, error) {
	launcher, err := state.runtime.CreateLauncher()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create launcher"), "runtime", state.runtime.ID())
	}
	launcher.SetCwd(cwd)
	launcher.Setenv("LANG", "C", true)
	return launcher, nil
}

// spawnAndWait logs the invocation, pushes it onto launcher, runs it with its
// output streamed into the build result and restores launcher's argv.
func (t *Task) spawnAndWait(ctx context.Context, span ports.Span, launcher ports.Launcher, argv0 string, args ...string) error {
	t.result.LogStdout(FormatArgv(argv0, args...))

	launcher.PushArgv(argv0)
	launcher.PushArgs(args...)
	defer func() {
		for range len(args) + 1 {
			launcher.PopArgv()
		}
	}()

	tail := newTailBuffer(stderrTailLines)
	launcher.SetStdout(io.MultiWriter(t.result.Stdout(), span))
	launcher.SetStderr(io.MultiWriter(t.result.Stderr(), span, tail))

	proc, err := launcher.Spawn(ctx)
	if err != nil {
		t.result.LogStderr("Build Failed:  " + err.Error())
		return err
	}

	if err := proc.WaitCheck(ctx); err != nil {
		if errors.Is(err, domain.ErrProcessExitedNonZero) {
			if lines := tail.String(); lines != "" {
				err = zerr.With(err, "stderr", lines)
			}
		}
		return err
	}
	return nil
}

// FormatArgv renders an invocation the way it is logged: the program
// followed by single-quoted arguments.
func FormatArgv(argv0 string, args ...string) string {
	var b strings.Builder
	b.WriteString(argv0)
	for _, a := range args {
		b.WriteString(" '")
		b.WriteString(a)
		b.WriteString("'")
	}
	return b.String()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isExecutable reports whether path is a regular file the current user may execute.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

func errorsJoin(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}

// discardSpan is used when the task has no tracer.
type discardSpan struct{}

func (discardSpan) Write(p []byte) (int, error) { return len(p), nil }
func (discardSpan) End()                        {}
func (discardSpan) RecordError(error)           {}
func (discardSpan) SetAttribute(string, any)    {}
