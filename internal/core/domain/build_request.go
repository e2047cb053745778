package domain

import "strconv"

// DefaultMakeTarget is built when a request names no targets.
const DefaultMakeTarget = "all"

// BuildRequest describes one invocation of the build pipeline.
type BuildRequest struct {
	// DirectoryPath is the build output directory.
	DirectoryPath string
	// ProjectPath is the source directory holding autogen.sh and configure.
	ProjectPath string
	// ConfigureArgv is the complete configure invocation, including flags.
	ConfigureArgv []string
	// MakeTargets are built in order. Empty means DefaultMakeTarget.
	MakeTargets []string

	RequireAutogen   bool
	RequireConfigure bool
	// BootstrapOnly stops the pipeline after a successful configure.
	BootstrapOnly bool
}

// Targets returns the make targets, defaulting to "all".
func (r BuildRequest) Targets() []string {
	if len(r.MakeTargets) == 0 {
		return []string{DefaultMakeTarget}
	}
	out := make([]string, len(r.MakeTargets))
	copy(out, r.MakeTargets)
	return out
}

// ParallelFlag resolves a configured parallelism into a make job flag.
// -1 yields one job more than ncpu, 0 yields ncpu and positive values are used as is.
func ParallelFlag(parallelism, ncpu int) string {
	jobs := parallelism
	switch {
	case parallelism == -1:
		jobs = ncpu + 1
	case parallelism == 0:
		jobs = ncpu
	}
	return "-j" + strconv.Itoa(jobs)
}
