package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mwleeds/gnome-builder/internal/adapters/watcher"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch builds the configuration, then rebuilds whenever files of the project
// change. Changes to the configuration file reload the configurations first.
// It returns when ctx is done.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	project, err := opts.projectDir()
	if err != nil {
		return err
	}
	configPath := opts.configPath(project)

	set, err := a.load(configPath)
	if err != nil {
		return err
	}
	cfg, err := set.Lookup(opts.Configuration)
	if err != nil {
		return err
	}

	buildDir := opts.BuildDir
	if buildDir == "" {
		if buildDir, err = a.defaultBuildDir(set.Project, cfg.ID()); err != nil {
			return err
		}
	}

	if err := a.watcher.Start(ctx, project, buildDir); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.rebuild(ctx, set, cfg, project, buildDir, opts)

	// Forcing applies to the first build only. Regenerating the build system
	// writes into the watched tree and would trigger the next rebuild.
	opts.Force = false

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			if slices.Contains(paths, configPath) {
				a.logger.Info("configuration file changed, reloading")
				reloaded, reloadedCfg, err := a.reload(configPath, cfg.ID())
				if err != nil {
					a.logger.Error(err)
					continue
				}
				set, cfg = reloaded, reloadedCfg
			}
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding %s", len(paths), cfg.ID()))
			a.rebuild(ctx, set, cfg, project, buildDir, opts)
		}
	}
}

func (a *App) reload(path, id string) (*domain.ConfigurationSet, *domain.Configuration, error) {
	set, err := a.load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := set.Lookup(id)
	if err != nil {
		return nil, nil, err
	}
	return set, cfg, nil
}

// rebuild runs one build of a watch session. Failures are already reported.
func (a *App) rebuild(
	ctx context.Context,
	set *domain.ConfigurationSet,
	cfg *domain.Configuration,
	project, buildDir string,
	opts BuildOptions,
) {
	err := a.build(ctx, set, cfg, project, buildDir, opts, nil)
	switch {
	case err == nil:
		a.logger.Info(cfg.ID() + " is up to date, watching for changes")
	case errors.Is(err, domain.ErrBuildFailed):
		a.logger.Warn(cfg.ID() + " failed, watching for changes")
	case errors.Is(err, domain.ErrCancelled):
	default:
		a.logger.Error(err)
	}
}
