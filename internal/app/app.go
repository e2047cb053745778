// Package app implements the application layer for builder.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwleeds/gnome-builder/internal/adapters/result"
	"github.com/mwleeds/gnome-builder/internal/adapters/watcher"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/mwleeds/gnome-builder/internal/engine/buildtask"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultConfigFile is the configuration file looked up in the project directory.
const DefaultConfigFile = "builder.yaml"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     ports.RuntimeRegistry
	hasher       ports.ConfigHasher
	store        ports.BuildRecordStore
	tasks        *buildtask.Factory
	watcher      ports.Watcher
	logger       ports.Logger

	stdout         io.Writer
	stderr         io.Writer
	cacheDir       string
	debounceWindow time.Duration
	jobs           int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry ports.RuntimeRegistry,
	hasher ports.ConfigHasher,
	store ports.BuildRecordStore,
	tasks *buildtask.Factory,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   loader,
		registry:       registry,
		hasher:         hasher,
		store:          store,
		tasks:          tasks,
		watcher:        w,
		logger:         log,
		stdout:         &lockedWriter{w: os.Stdout},
		stderr:         &lockedWriter{w: os.Stderr},
		debounceWindow: watcher.DefaultDebounceWindow,
		jobs:           max(runtime.NumCPU()/2, 1),
	}
}

// WithOutput mirrors build output to the given writers instead of the process streams.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = &lockedWriter{w: stdout}
	a.stderr = &lockedWriter{w: stderr}
	return a
}

// WithCacheDir sets the directory default build directories are created in.
func (a *App) WithCacheDir(dir string) *App {
	a.cacheDir = dir
	return a
}

// WithDebounceWindow sets how long Watch waits for the tree to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// WithJobs limits how many configurations BuildAll builds at once.
func (a *App) WithJobs(n int) *App {
	if n > 0 {
		a.jobs = n
	}
	return a
}

// BuildOptions configuration for the Build, BuildAll and Watch methods.
type BuildOptions struct {
	// ProjectDir holds autogen.sh or configure. Defaults to the working directory.
	ProjectDir string
	// ConfigFile is resolved against ProjectDir. Defaults to DefaultConfigFile.
	ConfigFile string
	// Configuration selects a configuration by id. Empty selects the default.
	Configuration string
	// BuildDir overrides the build directory.
	BuildDir string
	// Targets are the make targets. Empty builds "all".
	Targets []string
	// Force reruns autogen and configure.
	Force bool
	// BootstrapOnly stops after configure.
	BootstrapOnly bool
}

func (o BuildOptions) projectDir() (string, error) {
	dir := o.ProjectDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "path", dir)
	}
	return abs, nil
}

func (o BuildOptions) configPath(project string) string {
	file := o.ConfigFile
	if file == "" {
		file = DefaultConfigFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(project, file)
}

// Build builds one configuration of the project.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := opts.projectDir()
	if err != nil {
		return err
	}

	set, err := a.load(opts.configPath(project))
	if err != nil {
		return err
	}

	cfg, err := set.Lookup(opts.Configuration)
	if err != nil {
		return err
	}

	return a.build(ctx, set, cfg, project, opts.BuildDir, opts, nil)
}

// BuildAll builds every configuration of the project concurrently, each in
// its own build directory. Work inside the shared project directory (runtime
// prebuild, prebuild commands and autogen) runs one configuration at a time,
// and autogen.sh runs at most once.
func (a *App) BuildAll(ctx context.Context, opts BuildOptions) error {
	project, err := opts.projectDir()
	if err != nil {
		return err
	}

	set, err := a.load(opts.configPath(project))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	var (
		mu   sync.Mutex
		errs []error
	)
	src := buildtask.NewSourceTree()
	for _, cfg := range set.All() {
		buildDir := ""
		if opts.BuildDir != "" {
			buildDir = filepath.Join(opts.BuildDir, cfg.ID())
		}
		g.Go(func() error {
			err := a.build(ctx, set, cfg, project, buildDir, opts, src)
			if errors.Is(err, domain.ErrCancelled) {
				return err
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Configurations returns the configurations declared for the project.
func (a *App) Configurations(opts BuildOptions) (*domain.ConfigurationSet, error) {
	project, err := opts.projectDir()
	if err != nil {
		return nil, err
	}
	return a.load(opts.configPath(project))
}

// Duplicate copies the configuration id under a fresh id and saves the file.
func (a *App) Duplicate(opts BuildOptions, id string) (*domain.Configuration, error) {
	project, err := opts.projectDir()
	if err != nil {
		return nil, err
	}

	path := opts.configPath(project)
	set, err := a.load(path)
	if err != nil {
		return nil, err
	}

	dup, err := set.Duplicate(id, domain.NewCounterIDGenerator())
	if err != nil {
		return nil, err
	}

	if err := a.configLoader.Save(path, set); err != nil {
		return nil, zerr.Wrap(err, "failed to save configuration")
	}

	a.logger.Info(fmt.Sprintf("duplicated %s as %s", id, dup.ID()))
	return dup, nil
}

// SetOption changes one option of the configuration id and saves the file.
func (a *App) SetOption(opts BuildOptions, id, key, value string) error {
	project, err := opts.projectDir()
	if err != nil {
		return err
	}

	path := opts.configPath(project)
	set, err := a.load(path)
	if err != nil {
		return err
	}

	cfg, err := set.Lookup(id)
	if err != nil {
		return err
	}

	if err := applyOption(cfg, key, value); err != nil {
		return zerr.With(err, "configuration", cfg.ID())
	}

	if err := a.configLoader.Save(path, set); err != nil {
		return zerr.Wrap(err, "failed to save configuration")
	}
	return nil
}

func (a *App) load(path string) (*domain.ConfigurationSet, error) {
	set, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return set, nil
}

// build runs the pre-build queue, the pipeline and the post-build queue for
// cfg and records the outcome. A non-nil src serialises the steps writing
// into the project directory with other builds sharing it.
//
//nolint:cyclop // orchestration function
func (a *App) build(
	ctx context.Context,
	set *domain.ConfigurationSet,
	cfg *domain.Configuration,
	project, buildDir string,
	opts BuildOptions,
	src *buildtask.SourceTree,
) error {
	rt, err := a.registry.Lookup(cfg.RuntimeID(), set.Project)
	if err != nil {
		return zerr.With(err, "configuration", cfg.ID())
	}

	// Runtime adjustments are reapplied on every build and do not count as edits.
	dirty := cfg.Dirty()
	rt.PrepareConfiguration(cfg)

	if buildDir == "" {
		buildDir, err = a.defaultBuildDir(set.Project, cfg.ID())
		if err != nil {
			return err
		}
	}

	snapshot := cfg.Snapshot()
	fingerprint := a.hasher.Fingerprint(snapshot)
	key := recordKey(set.Project, cfg.ID())

	prev, err := a.store.Get(key)
	if err != nil {
		return zerr.Wrap(err, "failed to read build record")
	}

	requireConfigure := opts.Force ||
		dirty ||
		prev == nil ||
		!prev.Bootstrapped ||
		prev.Fingerprint != fingerprint
	sequence := snapshot.Sequence

	configureArgv, err := ConfigureArgv(project, snapshot)
	if err != nil {
		return zerr.With(err, "configuration", cfg.ID())
	}

	res := result.New(cfg.ID(), a.logger, result.WithOutput(a.stdout, a.stderr))
	defer a.summarize(cfg.ID(), res)

	err = inSource(src, func() error {
		if err := rt.Prebuild(ctx); err != nil {
			return zerr.Wrap(err, "runtime prebuild failed")
		}
		if err := buildtask.RunCommandQueue(ctx, rt, snapshot.Prebuild, res, project, snapshot.Environment); err != nil {
			return zerr.Wrap(err, "prebuild command failed")
		}
		return nil
	})
	if err != nil {
		return a.failed(cfg.ID(), err)
	}

	var taskOpts []buildtask.Option
	if src != nil {
		taskOpts = append(taskOpts, buildtask.WithSourceTree(src))
	}
	task := a.tasks.New(cfg, res, taskOpts...)
	buildErr := task.Execute(ctx, rt, domain.BuildRequest{
		DirectoryPath:    buildDir,
		ProjectPath:      project,
		ConfigureArgv:    configureArgv,
		MakeTargets:      opts.Targets,
		RequireAutogen:   opts.Force,
		RequireConfigure: requireConfigure,
		BootstrapOnly:    opts.BootstrapOnly,
	})
	if errors.Is(buildErr, domain.ErrCancelled) {
		return buildErr
	}

	record := domain.BuildRecord{
		RunID:           uuid.NewString(),
		ConfigurationID: key,
		RuntimeID:       rt.ID(),
		Fingerprint:     fingerprint,
		Sequence:        sequence,
		Targets:         domain.BuildRequest{MakeTargets: opts.Targets}.Targets(),
		Bootstrapped:    buildErr == nil,
		Succeeded:       buildErr == nil,
		Timestamp:       time.Now(),
	}
	if err := a.store.Put(record); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to store build record for %s: %v", cfg.ID(), err))
	}

	if buildErr != nil {
		return a.failed(cfg.ID(), buildErr)
	}

	// No edits happened while the build was running.
	if cfg.Sequence() == sequence {
		cfg.SetDirty(false)
	}

	if !opts.BootstrapOnly {
		if err := buildtask.RunCommandQueue(ctx, rt, snapshot.Postbuild, res, buildDir, snapshot.Environment); err != nil {
			return a.failed(cfg.ID(), zerr.Wrap(err, "postbuild command failed"))
		}
	}
	return nil
}

func inSource(src *buildtask.SourceTree, fn func() error) error {
	if src == nil {
		return fn()
	}
	return src.Do(fn)
}

// failed reports err and returns an error matching domain.ErrBuildFailed.
func (a *App) failed(id string, err error) error {
	if errors.Is(err, domain.ErrCancelled) || errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Error(zerr.With(err, "configuration", id))
	return zerr.With(zerr.Wrap(errorsJoin(domain.ErrBuildFailed, err), "build failed"), "configuration", id)
}

func (a *App) summarize(id string, res *result.Result) {
	_ = res.Close()
	warnings, errs := res.Summary()
	if warnings == 0 && errs == 0 {
		return
	}
	a.logger.Info(fmt.Sprintf("%s: %d warning(s), %d error(s)", id, warnings, errs))
}

func (a *App) defaultBuildDir(project, id string) (string, error) {
	cacheDir := a.cacheDir
	if cacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", zerr.Wrap(err, "failed to locate cache directory")
		}
		cacheDir = dir
	}
	return filepath.Join(cacheDir, "gnome-builder", "builds", project, id), nil
}

// BuildDir returns the directory the configuration id of the project builds in.
func (a *App) BuildDir(opts BuildOptions, id string) (string, error) {
	if opts.BuildDir != "" {
		return opts.BuildDir, nil
	}
	set, err := a.Configurations(opts)
	if err != nil {
		return "", err
	}
	cfg, err := set.Lookup(id)
	if err != nil {
		return "", err
	}
	return a.defaultBuildDir(set.Project, cfg.ID())
}

// ConfigureArgv assembles the configure invocation for a configuration:
// the project's configure script, --prefix when set and the configure options.
func ConfigureArgv(project string, snapshot domain.ConfigurationSnapshot) ([]string, error) {
	argv := []string{filepath.Join(project, "configure")}
	if snapshot.Prefix != "" {
		argv = append(argv, "--prefix="+snapshot.Prefix)
	}

	opts, err := domain.SplitShellWords(snapshot.ConfigOpts)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid configure options")
	}
	return append(argv, opts...), nil
}

func recordKey(project, id string) string {
	return project + "/" + id
}

func errorsJoin(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}

// lockedWriter serialises writes from concurrently running builds.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
