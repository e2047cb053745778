package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const configureScript = `echo "configure $*"
echo "all:" > Makefile`

func newSet(t *testing.T, ids ...string) *domain.ConfigurationSet {
	t.Helper()
	set := domain.NewConfigurationSet("hello")
	for _, id := range ids {
		require.NoError(t, set.Add(domain.NewConfiguration(id)))
	}
	return set
}

func TestApp_Build_FirstBuildConfigures(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)

	set := newSet(t)
	cfg := domain.NewConfiguration("default")
	cfg.SetPrefix("/usr")
	cfg.SetConfigOpts(`--enable-tests CFLAGS="-O0 -g"`)
	cfg.SetDirty(false)
	require.NoError(t, set.Add(cfg))

	var record domain.BuildRecord
	h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1")
	h.store.EXPECT().Get("hello/default").Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.BuildRecord) error {
		record = r
		return nil
	})

	require.NoError(t, h.app.Build(context.Background(), h.options()))

	out := h.stdout.String()
	assert.Contains(t, out, "configure --prefix=/usr --enable-tests CFLAGS=-O0 -g")
	assert.Contains(t, out, "make all -j")
	assert.FileExists(t, filepath.Join(h.builddir, "Makefile"))

	assert.Equal(t, "hello/default", record.ConfigurationID)
	assert.Equal(t, "host", record.RuntimeID)
	assert.Equal(t, "fp1", record.Fingerprint)
	assert.Equal(t, []string{"all"}, record.Targets)
	assert.True(t, record.Bootstrapped)
	assert.True(t, record.Succeeded)
	assert.Len(t, record.RunID, 36)
	assert.False(t, record.Timestamp.IsZero())
}

func TestApp_Build_ConfigureDecision(t *testing.T) {
	tests := []struct {
		name      string
		previous  *domain.BuildRecord
		force     bool
		dirty     bool
		configure bool
	}{
		{"UpToDate", &domain.BuildRecord{Fingerprint: "fp1", Bootstrapped: true}, false, false, false},
		{"FingerprintChanged", &domain.BuildRecord{Fingerprint: "old", Bootstrapped: true}, false, false, true},
		{"NotBootstrapped", &domain.BuildRecord{Fingerprint: "fp1"}, false, false, true},
		{"Forced", &domain.BuildRecord{Fingerprint: "fp1", Bootstrapped: true}, true, false, true},
		{"Dirty", &domain.BuildRecord{Fingerprint: "fp1", Bootstrapped: true}, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.quietLogger()
			h.writeConfigure(t, configureScript)
			writeScript(t, filepath.Join(h.project, "autogen.sh"), "echo autogen ran")
			require.NoError(t, os.MkdirAll(h.builddir, 0o750))
			require.NoError(t, os.WriteFile(filepath.Join(h.builddir, "Makefile"), []byte("all:\n"), 0o600))

			set := newSet(t, "default")
			cfg, err := set.Lookup("")
			require.NoError(t, err)
			if tt.dirty {
				cfg.SetDirty(true)
			}

			h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
			h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1")
			h.store.EXPECT().Get("hello/default").Return(tt.previous, nil)
			h.store.EXPECT().Put(gomock.Any()).Return(nil)

			opts := h.options()
			opts.Force = tt.force
			require.NoError(t, h.app.Build(context.Background(), opts))

			out := h.stdout.String()
			assert.Equal(t, tt.configure, strings.Contains(out, "configure \n") || strings.Contains(out, "configure\n"))
			assert.Equal(t, tt.force, strings.Contains(out, "autogen ran"))
			assert.Contains(t, out, "make all")

			// A successful build leaves an untouched configuration clean.
			assert.False(t, cfg.Dirty())
		})
	}
}

func TestApp_Build_Failure(t *testing.T) {
	h := newHarness(t)
	h.writeConfigure(t, configureScript)

	set := newSet(t, "default")
	cfg, _ := set.Lookup("default")
	cfg.Environment().Set("MAKE_FAIL", "1")

	var infos []string
	h.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	var record domain.BuildRecord
	h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1")
	h.store.EXPECT().Get("hello/default").Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.BuildRecord) error {
		record = r
		return nil
	})

	err := h.app.Build(context.Background(), h.options())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, domain.ErrProcessExitedNonZero)

	assert.False(t, record.Succeeded)
	assert.False(t, record.Bootstrapped)
	assert.True(t, cfg.Dirty())
	assert.Contains(t, h.stderr.String(), "main.c:3:5: error: expected ';'")
	assert.Contains(t, infos, "default: 0 warning(s), 1 error(s)")
}

func TestApp_Build_CommandQueues(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)

	set := newSet(t)
	cfg := domain.NewConfiguration("default")
	cfg.SetPrebuild(domain.NewCommandQueue("echo prebuild in $(pwd)"))
	cfg.SetPostbuild(domain.NewCommandQueue("echo postbuild in $(pwd)"))
	require.NoError(t, set.Add(cfg))

	h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1")
	h.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, h.app.Build(context.Background(), h.options()))

	out := h.stdout.String()
	pre := strings.Index(out, "prebuild in "+h.project+"\n")
	configure := strings.Index(out, "configure\n")
	mk := strings.Index(out, "make all")
	post := strings.Index(out, "postbuild in "+h.builddir+"\n")

	require.NotEqual(t, -1, pre)
	require.NotEqual(t, -1, post)
	assert.Less(t, pre, configure)
	assert.Less(t, configure, mk)
	assert.Less(t, mk, post)
}

func TestApp_Build_BootstrapOnly(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)

	set := newSet(t)
	cfg := domain.NewConfiguration("default")
	cfg.SetPostbuild(domain.NewCommandQueue("echo postbuild"))
	require.NoError(t, set.Add(cfg))

	h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1")
	h.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	opts := h.options()
	opts.BootstrapOnly = true
	require.NoError(t, h.app.Build(context.Background(), opts))

	out := h.stdout.String()
	assert.Contains(t, out, "configure\n")
	assert.NotContains(t, out, "make all")
	assert.NotContains(t, out, "postbuild")
}

func TestApp_Build_UnknownConfiguration(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "default"), nil)

	opts := h.options()
	opts.Configuration = "missing"
	err := h.app.Build(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}

func TestApp_Build_LoadError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.configPath()).Return(nil, domain.ErrConfigFileNotFound)

	err := h.app.Build(context.Background(), h.options())
	require.ErrorIs(t, err, domain.ErrConfigFileNotFound)
}

func TestApp_BuildAll(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()
	h.writeConfigure(t, configureScript)

	h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "debug", "release"), nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1").Times(2)
	h.store.EXPECT().Get("hello/debug").Return(nil, nil)
	h.store.EXPECT().Get("hello/release").Return(nil, nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)

	require.NoError(t, h.app.WithJobs(2).BuildAll(context.Background(), h.options()))

	assert.FileExists(t, filepath.Join(h.builddir, "debug", "Makefile"))
	assert.FileExists(t, filepath.Join(h.builddir, "release", "Makefile"))
	assert.Equal(t, 2, countLines(h.stdout.String(), "make all"))
}

// regenerateScript fails when another copy of it or of a prebuild command is
// running in the project directory at the same time.
const regenerateScript = `
mkdir .lock || { echo "concurrent autogen" >&2; exit 3; }
echo run >> autogen.runs
sleep 0.2
cat > configure <<'SCRIPT'
#!/bin/sh
echo "configure $*"
echo "all:" > Makefile
SCRIPT
chmod +x configure
rmdir .lock`

func TestApp_BuildAll_SharesProjectDirectory(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		configure bool
	}{
		{"ConfigureMissing", false, false},
		{"Forced", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.quietLogger()
			writeScript(t, filepath.Join(h.project, "autogen.sh"), regenerateScript)
			if tt.configure {
				h.writeConfigure(t, configureScript)
			}

			set := newSet(t, "debug", "release")
			for _, cfg := range set.All() {
				cfg.SetPrebuild(domain.NewCommandQueue(
					`mkdir .lock || { echo "concurrent prebuild" >&2; exit 3; }; sleep 0.2; rmdir .lock`,
				))
			}

			h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
			h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp1").Times(2)
			h.store.EXPECT().Get("hello/debug").Return(nil, nil)
			h.store.EXPECT().Get("hello/release").Return(nil, nil)
			h.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)

			opts := h.options()
			opts.Force = tt.force
			require.NoError(t, h.app.WithJobs(2).BuildAll(context.Background(), opts))

			assert.NotContains(t, h.stderr.String(), "concurrent")
			runs, err := os.ReadFile(filepath.Join(h.project, "autogen.runs"))
			require.NoError(t, err)
			assert.Equal(t, "run\n", string(runs))

			assert.FileExists(t, filepath.Join(h.builddir, "debug", "Makefile"))
			assert.FileExists(t, filepath.Join(h.builddir, "release", "Makefile"))
			assert.Equal(t, 2, countLines(h.stdout.String(), "make all"))
		})
	}
}

func TestApp_Duplicate(t *testing.T) {
	h := newHarness(t)
	h.quietLogger()

	set := newSet(t, "default", "default 2")
	h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
	h.loader.EXPECT().Save(h.configPath(), set).Return(nil)

	dup, err := h.app.Duplicate(h.options(), "default")
	require.NoError(t, err)
	assert.Equal(t, "default 3", dup.ID())
	assert.Equal(t, []string{"default", "default 2", "default 3"}, set.IDs())
}

func TestApp_SetOption(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, cfg *domain.Configuration)
	}{
		{app.OptionName, "Debug build", func(t *testing.T, cfg *domain.Configuration) {
			assert.Equal(t, "Debug build", cfg.DisplayName())
		}},
		{app.OptionPrefix, "/opt/hello", func(t *testing.T, cfg *domain.Configuration) {
			assert.Equal(t, "/opt/hello", cfg.Prefix())
		}},
		{app.OptionParallelism, "4", func(t *testing.T, cfg *domain.Configuration) {
			assert.Equal(t, 4, cfg.Parallelism())
		}},
		{app.OptionDebug, "false", func(t *testing.T, cfg *domain.Configuration) {
			assert.False(t, cfg.Debug())
		}},
		{app.OptionConfigOpts, "--disable-docs", func(t *testing.T, cfg *domain.Configuration) {
			assert.Equal(t, "--disable-docs", cfg.ConfigOpts())
		}},
		{app.OptionRuntime, "flatpak:org.gnome.Sdk/x86_64/master", func(t *testing.T, cfg *domain.Configuration) {
			assert.Equal(t, "flatpak:org.gnome.Sdk/x86_64/master", cfg.RuntimeID())
		}},
		{"env.CC", "clang", func(t *testing.T, cfg *domain.Configuration) {
			v, ok := cfg.Environment().Get("CC")
			assert.True(t, ok)
			assert.Equal(t, "clang", v)
		}},
		{"env.CFLAGS", "", func(t *testing.T, cfg *domain.Configuration) {
			_, ok := cfg.Environment().Get("CFLAGS")
			assert.False(t, ok)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h := newHarness(t)
			set := newSet(t, "default")
			cfg, _ := set.Lookup("default")
			cfg.Environment().Set("CFLAGS", "-O2")

			h.loader.EXPECT().Load(h.configPath()).Return(set, nil)
			h.loader.EXPECT().Save(h.configPath(), set).Return(nil)

			require.NoError(t, h.app.SetOption(h.options(), "default", tt.key, tt.value))
			tt.check(t, cfg)
		})
	}
}

func TestApp_SetOption_Errors(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected error
	}{
		{"color", "blue", domain.ErrUnknownOption},
		{"env.", "x", domain.ErrUnknownOption},
		{app.OptionParallelism, "many", domain.ErrInvalidOptionValue},
		{app.OptionParallelism, "-5", domain.ErrInvalidParallelism},
		{app.OptionDebug, "maybe", domain.ErrInvalidOptionValue},
		{app.OptionConfigOpts, `"unterminated`, domain.ErrUnbalancedQuote},
		{app.OptionDevice, "", domain.ErrInvalidOptionValue},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			h := newHarness(t)
			h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "default"), nil)

			err := h.app.SetOption(h.options(), "default", tt.key, tt.value)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestConfigureArgv(t *testing.T) {
	cfg := domain.NewConfiguration("default")

	argv, err := app.ConfigureArgv("/src/hello", cfg.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/hello/configure"}, argv)

	cfg.SetPrefix("/usr")
	cfg.SetConfigOpts(`--with-x --libdir='/usr/lib 64'`)
	argv, err = app.ConfigureArgv("/src/hello", cfg.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/hello/configure", "--prefix=/usr", "--with-x", "--libdir=/usr/lib 64"}, argv)

	cfg.SetConfigOpts(`"broken`)
	_, err = app.ConfigureArgv("/src/hello", cfg.Snapshot())
	require.ErrorIs(t, err, domain.ErrUnbalancedQuote)
}

func TestApp_BuildDir(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.configPath()).Return(newSet(t, "default"), nil)

	opts := h.options()
	opts.BuildDir = ""
	dir, err := h.app.BuildDir(opts, "default")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join("cache", "gnome-builder", "builds", "hello", "default")), dir)

	dir, err = h.app.BuildDir(h.options(), "default")
	require.NoError(t, err)
	assert.Equal(t, h.builddir, dir)
}
