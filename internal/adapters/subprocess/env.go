package subprocess

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// resolveEnvironment merges the launcher variables over the inherited environment.
// The inherited order is kept and new variables follow in launcher order.
// A launcher PATH is prepended to the inherited PATH.
func resolveEnvironment(sysEnv, overlay []string) []string {
	keys := make([]string, 0, len(sysEnv)+len(overlay))
	values := make(map[string]string, len(sysEnv)+len(overlay))

	set := func(k, v string) {
		if _, ok := values[k]; !ok {
			keys = append(keys, k)
		}
		values[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range overlay {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := values["PATH"]; exists && sysPath != "" && v != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+values[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if IsExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

// LookPath resolves file against the PATH of the current process.
func LookPath(file string) (string, error) {
	return lookPath(file, os.Environ())
}

// IsExecutable reports whether path is a regular file the current user may execute.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
