package runtime

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwleeds/gnome-builder/internal/adapters/subprocess"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FlatpakPrefix starts the id of every Flatpak runtime: flatpak:<sdk>/<arch>/<branch>.
	FlatpakPrefix = "flatpak:"
	// FlatpakAppID is the application id the build sandbox is initialised with.
	FlatpakAppID = "org.gnome.Builder.FlatpakApp.Build"
	// FlatpakInstallPrefix is the prefix applications are installed to inside the sandbox.
	FlatpakInstallPrefix = "/app"
)

var _ ports.Runtime = (*Flatpak)(nil)

// Flatpak runs processes inside a flatpak build sandbox.
type Flatpak struct {
	id        string
	sdk       string
	platform  string
	arch      string
	branch    string
	buildPath string
	logger    ports.Logger
}

// ParseFlatpakID splits a Flatpak runtime id into its sdk, arch and branch.
func ParseFlatpakID(id string) (sdk, arch, branch string, err error) {
	rest, ok := strings.CutPrefix(id, FlatpakPrefix)
	if !ok {
		return "", "", "", zerr.With(zerr.Wrap(domain.ErrInvalidRuntimeID, "not a flatpak runtime"), "runtime", id)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", zerr.With(zerr.Wrap(domain.ErrInvalidRuntimeID, "expected flatpak:<sdk>/<arch>/<branch>"), "runtime", id)
	}
	return parts[0], parts[1], parts[2], nil
}

// NewFlatpak creates the Flatpak runtime id for project.
// Sandboxes are kept below cacheDir.
func NewFlatpak(id, project, cacheDir string, logger ports.Logger) (*Flatpak, error) {
	sdk, arch, branch, err := ParseFlatpakID(id)
	if err != nil {
		return nil, err
	}

	platform := sdk
	if strings.Contains(sdk, "Sdk") {
		platform = strings.Replace(sdk, "Sdk", "Platform", 1)
	}

	return &Flatpak{
		id:        id,
		sdk:       sdk,
		platform:  platform,
		arch:      arch,
		branch:    branch,
		buildPath: filepath.Join(cacheDir, "gnome-builder", "builds", project, "flatpak", id),
		logger:    logger,
	}, nil
}

// ID returns the runtime id.
func (f *Flatpak) ID() string {
	return f.id
}

// DisplayName returns "<sdk> <branch> (<arch>)".
func (f *Flatpak) DisplayName() string {
	return f.sdk + " " + f.branch + " (" + f.arch + ")"
}

// BuildPath returns the sandbox directory.
func (f *Flatpak) BuildPath() string {
	return f.buildPath
}

// CreateLauncher returns a launcher that runs its argv through `flatpak build`.
func (f *Flatpak) CreateLauncher() (ports.Launcher, error) {
	l := subprocess.NewLauncher()
	l.PushArgs("flatpak", "build", f.buildPath)
	return l, nil
}

// ContainsProgramInPath runs `which` inside the sandbox.
func (f *Flatpak) ContainsProgramInPath(ctx context.Context, name string) bool {
	l, err := f.CreateLauncher()
	if err != nil {
		return false
	}
	l.PushArgs("which", name)

	proc, err := l.Spawn(ctx)
	if err != nil {
		return false
	}
	return proc.WaitCheck(ctx) == nil
}

// Prebuild initialises the sandbox unless it already exists.
func (f *Flatpak) Prebuild(ctx context.Context) error {
	_, err := os.Stat(f.buildPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to inspect flatpak build directory"), "path", f.buildPath)
	}

	if err := os.MkdirAll(filepath.Dir(f.buildPath), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create flatpak build directory"), "path", f.buildPath)
	}

	var stderr bytes.Buffer
	l := subprocess.NewLauncher()
	l.SetStderr(&stderr)
	l.PushArgs("flatpak", "build-init", f.buildPath, FlatpakAppID, f.sdk, f.platform, f.branch)

	if f.logger != nil {
		f.logger.Info("initialising flatpak sandbox " + f.buildPath)
	}

	proc, err := l.Spawn(ctx)
	if err != nil {
		return zerr.With(err, "runtime", f.id)
	}
	if err := proc.WaitCheck(ctx); err != nil {
		return zerr.With(zerr.With(err, "runtime", f.id), "stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// PrepareConfiguration installs into the sandbox prefix.
func (f *Flatpak) PrepareConfiguration(cfg *domain.Configuration) {
	cfg.SetPrefix(FlatpakInstallPrefix)
}
