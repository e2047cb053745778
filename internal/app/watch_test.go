package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mwleeds/gnome-builder/internal/adapters/cas"
	"github.com/mwleeds/gnome-builder/internal/adapters/watcher"
	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/mwleeds/gnome-builder/internal/engine/buildtask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApp_Watch(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)

	store, err := cas.NewStore(filepath.Join(t.TempDir(), cas.FileName))
	require.NoError(t, err)

	a := app.New(
		h.loader,
		h.registry,
		h.hasher,
		store,
		buildtask.NewFactory(nil, nil),
		h.watcher,
		h.logger,
	).WithOutput(h.stdout, h.stderr).WithDebounceWindow(10 * time.Millisecond)

	var mu sync.Mutex
	loads := 0
	h.loader.EXPECT().Load(h.configPath()).DoAndReturn(func(string) (*domain.ConfigurationSet, error) {
		mu.Lock()
		defer mu.Unlock()
		loads++
		return newSet(t, "default"), nil
	}).AnyTimes()
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1").AnyTimes()

	events := make(chan ports.WatchEvent)
	h.watcher.EXPECT().Start(gomock.Any(), h.project, h.builddir).Return(nil)
	h.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}))
	h.watcher.EXPECT().Stop().DoAndReturn(func() error {
		close(events)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, h.options())
	}()

	builds := func() int { return countLines(h.stdout.String(), "make all") }

	require.Eventually(t, func() bool { return builds() == 1 }, 5*time.Second, 10*time.Millisecond)

	// A burst of changes rebuilds once.
	events <- ports.WatchEvent{Path: filepath.Join(h.project, "main.c"), Operation: ports.OpWrite}
	events <- ports.WatchEvent{Path: filepath.Join(h.project, "main.h"), Operation: ports.OpWrite}
	require.Eventually(t, func() bool { return builds() == 2 }, 5*time.Second, 10*time.Millisecond)

	// The second build reused the configure result of the first.
	assert.Equal(t, 1, countLines(h.stdout.String(), "configure"))

	events <- ports.WatchEvent{Path: h.configPath(), Operation: ports.OpWrite}
	require.Eventually(t, func() bool { return builds() == 3 }, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, 2, loads)
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancellation")
	}
}

func TestApp_Watch_StartError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "default"), nil)
	errLimit := errors.New("inotify watch limit reached")
	h.watcher.EXPECT().Start(gomock.Any(), h.project, h.builddir).Return(errLimit)

	err := h.app.Watch(context.Background(), h.options())
	require.ErrorIs(t, err, errLimit)
}

func TestApp_Watch_ForceAppliesToFirstBuildOnly(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)
	writeScript(t, filepath.Join(h.project, "autogen.sh"), regenerateScript)

	store, err := cas.NewStore(filepath.Join(t.TempDir(), cas.FileName))
	require.NoError(t, err)
	w, err := watcher.NewWatcher(h.logger)
	require.NoError(t, err)

	a := app.New(
		h.loader,
		h.registry,
		h.hasher,
		store,
		buildtask.NewFactory(nil, nil),
		w,
		h.logger,
	).WithOutput(h.stdout, h.stderr).WithDebounceWindow(50 * time.Millisecond)

	h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "default"), nil).AnyTimes()
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1").AnyTimes()

	autogenRuns := func() int {
		data, err := os.ReadFile(filepath.Join(h.project, "autogen.runs"))
		if err != nil {
			return 0
		}
		return strings.Count(string(data), "run\n")
	}
	builds := func() int { return countLines(h.stdout.String(), "make all") }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		opts := h.options()
		opts.Force = true
		done <- a.Watch(ctx, opts)
	}()

	require.Eventually(t, func() bool { return builds() >= 1 }, 5*time.Second, 10*time.Millisecond)

	// The files autogen.sh wrote trigger at most one plain rebuild.
	assert.Never(t, func() bool { return autogenRuns() > 1 || builds() > 2 }, time.Second, 20*time.Millisecond)
	assert.Equal(t, 1, autogenRuns())
	assert.Equal(t, 1, countLines(h.stdout.String(), "configure"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancellation")
	}
}
