package result_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mwleeds/gnome-builder/internal/adapters/result"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResult_Flags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("default: Building…").Times(1)

	r := result.New("default", mockLogger)

	r.SetMode("Building…")
	r.SetMode("Building…")
	r.SetRunning(true)
	r.SetFailed(true)

	assert.Equal(t, "Building…", r.Mode())
	assert.True(t, r.Running())
	assert.True(t, r.Failed())
}

func TestResult_StreamsAreLineBuffered(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := result.New("default", nil, result.WithOutput(&stdout, &stderr))

	_, _ = fmt.Fprint(r.Stdout(), "part1")
	_, _ = fmt.Fprint(r.Stdout(), "part2\nline2\r\nrest")
	assert.Equal(t, "part1part2\nline2\n", stdout.String())

	require.NoError(t, r.Close())
	assert.Equal(t, "part1part2\nline2\nrest\n", stdout.String())

	r.LogStderr("Build Failed: boom")
	assert.Equal(t, "Build Failed: boom\n", stderr.String())
}

func TestResult_Diagnostics(t *testing.T) {
	r := result.New("default", nil)

	var seen []domain.Diagnostic
	r.OnDiagnostic(func(d domain.Diagnostic) { seen = append(seen, d) })

	_, _ = fmt.Fprint(r.Stderr(), "main.c:10:5: warning: unused variable 'x'\n")
	_, _ = fmt.Fprint(r.Stderr(), "make: *** [all] Error 1\n")
	_, _ = fmt.Fprint(r.Stderr(), "util.c:3: error: expected ';'\n")
	r.LogStdout("main.c:1:1: warning: stdout is not scanned")

	require.Len(t, seen, 2)
	assert.Equal(t, domain.Diagnostic{
		Location: domain.SourceLocation{File: "main.c", Line: 10, Column: 5},
		Severity: domain.SeverityWarning,
		Message:  "unused variable 'x'",
	}, seen[0])
	assert.Equal(t, domain.SeverityError, seen[1].Severity)
	assert.Equal(t, 0, seen[1].Location.Column)

	warnings, errors := r.Summary()
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, errors)
	assert.Len(t, r.Diagnostics(), 2)
}

func TestParseDiagnostic(t *testing.T) {
	tests := []struct {
		line     string
		ok       bool
		severity domain.Severity
	}{
		{"src/a.c:1:2: fatal error: foo.h: No such file or directory", true, domain.SeverityFatal},
		{"src/a.c:1:2: note: declared here", true, domain.SeverityNote},
		{"checking for gcc... gcc", false, ""},
		{"a.c: In function 'main':", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d, ok := result.ParseDiagnostic(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.severity, d.Severity)
		})
	}
}
