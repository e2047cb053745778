// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
)

//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks

// Runtime is a toolchain or sandbox that build processes run in.
type Runtime interface {
	// ID returns the identifier configurations use to select this runtime.
	ID() string
	// DisplayName returns a human readable name.
	DisplayName() string
	// CreateLauncher returns a launcher whose processes run inside the runtime.
	CreateLauncher() (Launcher, error)
	// ContainsProgramInPath reports whether name resolves on the runtime's PATH.
	ContainsProgramInPath(ctx context.Context, name string) bool
	// Prebuild prepares the runtime before the first build step.
	Prebuild(ctx context.Context) error
	// PrepareConfiguration adjusts a configuration for this runtime.
	PrepareConfiguration(cfg *domain.Configuration)
}

// Launcher assembles and spawns a single process.
type Launcher interface {
	SetCwd(dir string)
	// Setenv sets a variable. An existing value is only overwritten when replace is true.
	Setenv(key, value string, replace bool)
	// OverlayEnvironment applies every variable of env, replacing existing values.
	OverlayEnvironment(env *domain.Environment)
	PushArgv(arg string)
	PushArgs(args ...string)
	InsertArgv(index int, arg string)
	ReplaceArgv(index int, arg string)
	// PopArgv removes and returns the last argument, or "" when argv is empty.
	PopArgv() string
	Argv() []string
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
	// Spawn starts the process. Cancelling ctx kills it.
	Spawn(ctx context.Context) (Process, error)
}

// Process is a spawned process.
type Process interface {
	Identifier() string
	// WaitCheck blocks until the process exits and its output has been copied.
	// It returns nil for a zero exit status.
	WaitCheck(ctx context.Context) error
	ForceExit()
}

// RuntimeRegistry resolves runtimes by id.
type RuntimeRegistry interface {
	// Lookup returns the runtime for id, scoped to project.
	Lookup(id, project string) (Runtime, error)
}
