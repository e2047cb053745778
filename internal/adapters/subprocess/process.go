package subprocess

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"time"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Process = (*Process)(nil)

// Process implements ports.Process for a started exec.Cmd.
type Process struct {
	name string
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

func newProcess(name string, cmd *exec.Cmd) *Process {
	p := &Process{
		name: name,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go p.wait()
	return p
}

func (p *Process) wait() {
	defer close(p.done)

	err := p.cmd.Wait()
	if err == nil {
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		p.err = zerr.With(
			zerr.With(zerr.Wrap(domain.ErrProcessExitedNonZero, p.name+" failed"), "exit_code", exitErr.ExitCode()),
			"argv0", p.name,
		)
		return
	}
	p.err = zerr.With(zerr.Wrap(err, "failed to wait for process"), "argv0", p.name)
}

// Identifier returns the process id.
func (p *Process) Identifier() string {
	return strconv.Itoa(p.cmd.Process.Pid)
}

// WaitCheck waits for the process to exit.
// When ctx is done first the process is killed and WaitCheck returns the
// context error once its output has been drained, or after waitDelay.
// No output reaches the configured writers after it returns unless that
// bound was hit.
func (p *Process) WaitCheck(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
	}

	p.ForceExit()
	timer := time.NewTimer(waitDelay)
	defer timer.Stop()
	select {
	case <-p.done:
	case <-timer.C:
	}
	return zerr.Wrap(ctx.Err(), "wait interrupted")
}

// ForceExit kills the process.
func (p *Process) ForceExit() {
	_ = p.cmd.Process.Kill()
}
