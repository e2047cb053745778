package buildtask_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mwleeds/gnome-builder/internal/adapters/result"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for concurrent use.
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

type fixture struct {
	project  string
	builddir string
	bin      string
	stdout   *syncBuffer
	stderr   *syncBuffer
	result   *result.Result
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	f := &fixture{
		project:  filepath.Join(root, "hello"),
		builddir: filepath.Join(root, "build"),
		bin:      filepath.Join(root, "bin"),
		stdout:   &syncBuffer{},
		stderr:   &syncBuffer{},
	}
	require.NoError(t, os.MkdirAll(f.project, 0o750))
	require.NoError(t, os.MkdirAll(f.bin, 0o750))
	f.result = result.New("hello", nil, result.WithOutput(f.stdout, f.stderr))
	return f
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test scripts
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

// installMake puts a fake make on PATH that records its arguments and environment.
func (f *fixture) installMake(t *testing.T, body string) {
	t.Helper()
	writeScript(t, filepath.Join(f.bin, "make"), body)
	t.Setenv("PATH", f.bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}
