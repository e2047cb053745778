package buildtask

import (
	"context"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunCommandQueue runs every command of queue as `sh -c <command>` inside rt,
// in order, stopping at the first failure.
func RunCommandQueue(
	ctx context.Context,
	rt ports.Runtime,
	queue *domain.CommandQueue,
	result ports.BuildResult,
	cwd string,
	env *domain.Environment,
) error {
	for i, command := range queue.Commands() {
		if err := ctx.Err(); err != nil {
			return err
		}

		launcher, err := rt.CreateLauncher()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create launcher"), "runtime", rt.ID())
		}
		launcher.SetCwd(cwd)
		launcher.Setenv("LANG", "C", true)
		if env != nil {
			launcher.OverlayEnvironment(env)
		}
		launcher.PushArgs("sh", "-c", command)
		launcher.SetStdout(result.Stdout())
		launcher.SetStderr(result.Stderr())

		result.LogStdout(FormatArgv("sh", "-c", command))

		proc, err := launcher.Spawn(ctx)
		if err != nil {
			result.LogStderr("Build Failed:  " + err.Error())
			return zerr.With(err, "command", command)
		}
		if err := proc.WaitCheck(ctx); err != nil {
			return zerr.With(zerr.With(err, "command", command), "index", i)
		}
	}
	return nil
}
