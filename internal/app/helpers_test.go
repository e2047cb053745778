package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mwleeds/gnome-builder/internal/adapters/subprocess"
	"github.com/mwleeds/gnome-builder/internal/adapters/telemetry"
	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/mwleeds/gnome-builder/internal/core/ports/mocks"
	"github.com/mwleeds/gnome-builder/internal/engine/buildtask"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	project  string
	builddir string
	stdout   *syncBuffer
	stderr   *syncBuffer

	loader   *mocks.MockConfigLoader
	registry *mocks.MockRuntimeRegistry
	runtime  *mocks.MockRuntime
	hasher   *mocks.MockConfigHasher
	store    *mocks.MockBuildRecordStore
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger

	app *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	h := &harness{
		project:  filepath.Join(root, "hello"),
		builddir: filepath.Join(root, "build"),
		stdout:   &syncBuffer{},
		stderr:   &syncBuffer{},
		loader:   mocks.NewMockConfigLoader(ctrl),
		registry: mocks.NewMockRuntimeRegistry(ctrl),
		runtime:  mocks.NewMockRuntime(ctrl),
		hasher:   mocks.NewMockConfigHasher(ctrl),
		store:    mocks.NewMockBuildRecordStore(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	require.NoError(t, os.MkdirAll(h.project, 0o750))

	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o750))
	writeScript(t, filepath.Join(bin, "make"), `
echo "make $*"
[ -z "$MAKE_FAIL" ] && exit 0
echo "main.c:3:5: error: expected ';' before '}' token" >&2
exit 2`)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	h.runtime.EXPECT().ID().Return("host").AnyTimes()
	h.runtime.EXPECT().CreateLauncher().DoAndReturn(func() (ports.Launcher, error) {
		return subprocess.NewLauncher(), nil
	}).AnyTimes()
	h.runtime.EXPECT().ContainsProgramInPath(gomock.Any(), "gmake").Return(false).AnyTimes()
	h.runtime.EXPECT().ContainsProgramInPath(gomock.Any(), "make").Return(true).AnyTimes()
	h.runtime.EXPECT().Prebuild(gomock.Any()).Return(nil).AnyTimes()
	h.runtime.EXPECT().PrepareConfiguration(gomock.Any()).AnyTimes()
	h.registry.EXPECT().Lookup("host", "hello").Return(h.runtime, nil).AnyTimes()

	h.app = app.New(
		h.loader,
		h.registry,
		h.hasher,
		h.store,
		buildtask.NewFactory(telemetry.NewNoOpTracer(), h.logger),
		h.watcher,
		h.logger,
	).WithOutput(h.stdout, h.stderr).WithCacheDir(filepath.Join(root, "cache"))
	return h
}

// quietLogger accepts every log call.
func (h *harness) quietLogger() {
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()
}

func (h *harness) configPath() string {
	return filepath.Join(h.project, app.DefaultConfigFile)
}

func (h *harness) options() app.BuildOptions {
	return app.BuildOptions{
		ProjectDir: h.project,
		BuildDir:   h.builddir,
	}
}

func (h *harness) writeConfigure(t *testing.T, body string) {
	t.Helper()
	writeScript(t, filepath.Join(h.project, "configure"), body)
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test scripts
}

func countLines(out, prefix string) int {
	n := 0
	for line := range strings.Lines(out) {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}
