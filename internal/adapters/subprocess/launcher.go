// Package subprocess implements process launching on top of os/exec.
package subprocess

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait keeps copying output after the process exited
// or was killed, in case a grandchild still holds the pipes open.
const waitDelay = 5 * time.Second

var _ ports.Launcher = (*Launcher)(nil)

// Launcher implements ports.Launcher using os/exec.
//
// The spawned environment is the current process environment merged with
// the variables set on the launcher. A PATH set on the launcher is
// prepended to the inherited PATH.
type Launcher struct {
	argv   []string
	cwd    string
	env    *domain.Environment
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates an empty Launcher.
func NewLauncher() *Launcher {
	return &Launcher{env: domain.NewEnvironment()}
}

// SetCwd sets the working directory of the process.
func (l *Launcher) SetCwd(dir string) {
	l.cwd = dir
}

// Cwd returns the working directory, empty for the current directory.
func (l *Launcher) Cwd() string {
	return l.cwd
}

// Setenv sets key. An existing value is kept unless replace is true.
func (l *Launcher) Setenv(key, value string, replace bool) {
	if _, ok := l.env.Get(key); ok && !replace {
		return
	}
	l.env.Set(key, value)
}

// OverlayEnvironment applies every variable of env.
func (l *Launcher) OverlayEnvironment(env *domain.Environment) {
	if env == nil {
		return
	}
	for _, key := range env.Keys() {
		v, _ := env.Get(key)
		l.env.Set(key, v)
	}
}

// Environment returns the variables set on the launcher as KEY=VALUE pairs.
func (l *Launcher) Environment() []string {
	return l.env.Pairs()
}

// PushArgv appends an argument.
func (l *Launcher) PushArgv(arg string) {
	l.argv = append(l.argv, arg)
}

// PushArgs appends several arguments.
func (l *Launcher) PushArgs(args ...string) {
	l.argv = append(l.argv, args...)
}

// InsertArgv inserts arg at index. Indexes past the end append.
func (l *Launcher) InsertArgv(index int, arg string) {
	index = min(max(index, 0), len(l.argv))
	l.argv = slices.Insert(l.argv, index, arg)
}

// ReplaceArgv replaces the argument at index. Out of range indexes are ignored.
func (l *Launcher) ReplaceArgv(index int, arg string) {
	if index < 0 || index >= len(l.argv) {
		return
	}
	l.argv[index] = arg
}

// PopArgv removes and returns the last argument.
func (l *Launcher) PopArgv() string {
	if len(l.argv) == 0 {
		return ""
	}
	last := l.argv[len(l.argv)-1]
	l.argv = l.argv[:len(l.argv)-1]
	return last
}

// Argv returns a copy of the arguments.
func (l *Launcher) Argv() []string {
	return slices.Clone(l.argv)
}

// SetStdout directs the process standard output to w. Nil discards it.
func (l *Launcher) SetStdout(w io.Writer) {
	l.stdout = w
}

// SetStderr directs the process error output to w. Nil discards it.
func (l *Launcher) SetStderr(w io.Writer) {
	l.stderr = w
}

// Spawn starts the process. Cancelling ctx kills it.
func (l *Launcher) Spawn(ctx context.Context) (ports.Process, error) {
	if len(l.argv) == 0 {
		return nil, zerr.Wrap(domain.ErrEmptyArgv, "cannot spawn process")
	}

	name := l.argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), l.env.Pairs())

	executable := name
	if !strings.ContainsRune(name, os.PathSeparator) {
		lp, err := lookPath(name, cmdEnv)
		if err != nil {
			return nil, spawnError(name, err)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, l.argv[1:]...) //nolint:gosec // argv is assembled by the build pipeline

	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = name
	cmd.Dir = l.cwd
	cmd.Env = cmdEnv
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		return nil, spawnError(name, err)
	}

	return newProcess(name, cmd), nil
}

func spawnError(name string, err error) error {
	return zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrProcessSpawnFailed, err), "cannot spawn "+name), "argv0", name)
}
