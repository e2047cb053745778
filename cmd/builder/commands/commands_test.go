package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwleeds/gnome-builder/cmd/builder/commands"
	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/build"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	opts   app.BuildOptions
	args   []string
}

type fakeApp struct {
	calls []call
	set   *domain.ConfigurationSet
	err   error
}

func (f *fakeApp) record(method string, opts app.BuildOptions, args ...string) {
	if len(opts.Targets) == 0 {
		opts.Targets = nil
	}
	f.calls = append(f.calls, call{method: method, opts: opts, args: args})
}

func (f *fakeApp) Build(_ context.Context, opts app.BuildOptions) error {
	f.record("Build", opts)
	return f.err
}

func (f *fakeApp) BuildAll(_ context.Context, opts app.BuildOptions) error {
	f.record("BuildAll", opts)
	return f.err
}

func (f *fakeApp) Watch(_ context.Context, opts app.BuildOptions) error {
	f.record("Watch", opts)
	return f.err
}

func (f *fakeApp) Configurations(opts app.BuildOptions) (*domain.ConfigurationSet, error) {
	f.record("Configurations", opts)
	return f.set, f.err
}

func (f *fakeApp) Duplicate(opts app.BuildOptions, id string) (*domain.Configuration, error) {
	f.record("Duplicate", opts, id)
	if f.err != nil {
		return nil, f.err
	}
	return domain.NewConfiguration(id + "-2"), nil
}

func (f *fakeApp) SetOption(opts app.BuildOptions, id, key, value string) error {
	f.record("SetOption", opts, id, key, value)
	return f.err
}

func sampleSet(t *testing.T) *domain.ConfigurationSet {
	t.Helper()

	set := domain.NewConfigurationSet("hello")
	def := domain.NewConfiguration("default")
	def.SetDisplayName("Default")
	def.SetPrefix("/usr")
	def.Environment().Set("CC", "clang")
	def.SetPrebuild(domain.NewCommandQueue("./gen-version.sh"))
	require.NoError(t, set.Add(def))

	dbg := domain.NewConfiguration("debug")
	dbg.SetDisplayName("Debug")
	dbg.SetRuntimeID("flatpak:org.gnome.Sdk/x86_64/master")
	require.NoError(t, set.Add(dbg))
	return set
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
		want   app.BuildOptions
	}{
		{
			name:   "Defaults",
			args:   []string{"build"},
			method: "Build",
			want:   app.BuildOptions{ProjectDir: ".", ConfigFile: app.DefaultConfigFile},
		},
		{
			name:   "FlagsAndTargets",
			args:   []string{"-C", "/src/hello", "-c", "debug", "--builddir", "/tmp/b", "--force", "build", "all", "install"},
			method: "Build",
			want: app.BuildOptions{
				ProjectDir:    "/src/hello",
				ConfigFile:    app.DefaultConfigFile,
				Configuration: "debug",
				BuildDir:      "/tmp/b",
				Force:         true,
				Targets:       []string{"all", "install"},
			},
		},
		{
			name:   "All",
			args:   []string{"build", "--all", "-f", "ci.yaml"},
			method: "BuildAll",
			want:   app.BuildOptions{ProjectDir: ".", ConfigFile: "ci.yaml"},
		},
		{
			name:   "Bootstrap",
			args:   []string{"bootstrap"},
			method: "Build",
			want:   app.BuildOptions{ProjectDir: ".", ConfigFile: app.DefaultConfigFile, BootstrapOnly: true, Force: true},
		},
		{
			name:   "Clean",
			args:   []string{"clean", "-c", "debug"},
			method: "Build",
			want: app.BuildOptions{
				ProjectDir:    ".",
				ConfigFile:    app.DefaultConfigFile,
				Configuration: "debug",
				Targets:       []string{"clean"},
			},
		},
		{
			name:   "Watch",
			args:   []string{"watch", "check"},
			method: "Watch",
			want:   app.BuildOptions{ProjectDir: ".", ConfigFile: app.DefaultConfigFile, Targets: []string{"check"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeApp{}
			_, err := execute(t, fake, tt.args...)
			require.NoError(t, err)

			require.Len(t, fake.calls, 1)
			assert.Equal(t, tt.method, fake.calls[0].method)
			assert.Equal(t, tt.want, fake.calls[0].opts)
		})
	}
}

func TestBuildCommand_ErrorPassthrough(t *testing.T) {
	fake := &fakeApp{err: domain.ErrBuildFailed}

	_, err := execute(t, fake, "build")
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestBootstrapRejectsTargets(t *testing.T) {
	fake := &fakeApp{}

	_, err := execute(t, fake, "bootstrap", "all")
	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestConfigList(t *testing.T) {
	fake := &fakeApp{set: sampleSet(t)}

	out, err := execute(t, fake, "config", "list")
	require.NoError(t, err)

	for _, want := range []string{"ID", "RUNTIME", "default", "Default", "debug", "flatpak:org.gnome.Sdk/x86_64/master", commands.DefaultMarker} {
		assert.Contains(t, out, want)
	}

	var marked string
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, commands.DefaultMarker) {
			marked = line
		}
	}
	assert.Contains(t, marked, "default")
	assert.NotContains(t, marked, "debug")
}

func TestConfigShow(t *testing.T) {
	fake := &fakeApp{set: sampleSet(t)}

	out, err := execute(t, fake, "config", "show", "default")
	require.NoError(t, err)

	assert.Contains(t, out, "/usr")
	assert.Contains(t, out, "CC=clang")
	assert.Contains(t, out, "prebuild:")
	assert.Contains(t, out, "  - ./gen-version.sh")
	assert.NotContains(t, out, "postbuild:")
}

func TestConfigShow_UnknownID(t *testing.T) {
	fake := &fakeApp{set: sampleSet(t)}

	_, err := execute(t, fake, "config", "show", "release")
	require.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}

func TestConfigDuplicate(t *testing.T) {
	fake := &fakeApp{}

	out, err := execute(t, fake, "config", "duplicate", "default")
	require.NoError(t, err)

	assert.Equal(t, "default-2\n", out)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"default"}, fake.calls[0].args)
}

func TestConfigSet(t *testing.T) {
	fake := &fakeApp{}

	_, err := execute(t, fake, "-C", "/src/hello", "config", "set", "default", "env.CC", "clang")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "SetOption", fake.calls[0].method)
	assert.Equal(t, "/src/hello", fake.calls[0].opts.ProjectDir)
	assert.Equal(t, []string{"default", "env.CC", "clang"}, fake.calls[0].args)
}

func TestConfigSet_Error(t *testing.T) {
	fake := &fakeApp{err: errors.Join(domain.ErrUnknownOption, errors.New("colour"))}

	_, err := execute(t, fake, "config", "set", "default", "colour", "blue")
	require.ErrorIs(t, err, domain.ErrUnknownOption)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "builder version "+build.Version+"\n", out)
}
