package domain

import "go.trai.ch/zerr"

var (
	// ErrDirectoryCreateFailed is returned when the build directory cannot be created.
	ErrDirectoryCreateFailed = zerr.New("failed to create build directory")

	// ErrNotADirectory is returned when the build path exists but is not a directory.
	ErrNotADirectory = zerr.New("build path is not a directory")

	// ErrScriptMissing is returned when autogen.sh is absent from the project directory.
	ErrScriptMissing = zerr.New("autogen.sh is missing from project directory")

	// ErrScriptNotExecutable is returned when autogen.sh exists but cannot be executed.
	ErrScriptNotExecutable = zerr.New("autogen.sh is not executable")

	// ErrConfigureNotProduced is returned when autogen.sh ran but left no executable configure script.
	ErrConfigureNotProduced = zerr.New("autogen.sh failed to create configure")

	// ErrProcessSpawnFailed is returned when a launcher cannot start a process.
	ErrProcessSpawnFailed = zerr.New("failed to spawn process")

	// ErrProcessExitedNonZero is returned when a process ran and reported failure.
	ErrProcessExitedNonZero = zerr.New("process exited with non-zero status")

	// ErrMakeNotFound is returned when neither gmake nor make is available in the runtime.
	ErrMakeNotFound = zerr.New("failed to locate make")

	// ErrCancelled is returned when a build was cancelled before it completed.
	ErrCancelled = zerr.New("build cancelled")

	// ErrTaskAlreadyExecuted is returned when a build task is executed a second time.
	ErrTaskAlreadyExecuted = zerr.New("build task has already been executed")

	// ErrEmptyArgv is returned when a launcher is spawned without arguments.
	ErrEmptyArgv = zerr.New("launcher has no arguments")

	// ErrInvalidParallelism is returned for parallelism values below -1.
	ErrInvalidParallelism = zerr.New("parallelism must be -1 or greater")

	// ErrRuntimeNotFound is returned when no runtime matches the requested id.
	ErrRuntimeNotFound = zerr.New("runtime not found")

	// ErrInvalidRuntimeID is returned when a runtime id cannot be parsed.
	ErrInvalidRuntimeID = zerr.New("invalid runtime id")

	// ErrConfigurationNotFound is returned when no configuration matches the requested id.
	ErrConfigurationNotFound = zerr.New("configuration not found")

	// ErrDuplicateConfiguration is returned when adding a configuration whose id is taken.
	ErrDuplicateConfiguration = zerr.New("configuration already exists")

	// ErrUnknownOption is returned when setting a configuration option that does not exist.
	ErrUnknownOption = zerr.New("unknown configuration option")

	// ErrInvalidOptionValue is returned when a configuration option value cannot be parsed.
	ErrInvalidOptionValue = zerr.New("invalid configuration option value")

	// ErrConfigFileNotFound is returned when the configuration file does not exist.
	ErrConfigFileNotFound = zerr.New("configuration file not found")

	// ErrUnbalancedQuote is returned when configure options contain an unterminated quote.
	ErrUnbalancedQuote = zerr.New("unbalanced quote in configure options")

	// ErrBuildFailed is returned when the build pipeline failed.
	// The failure itself has already been reported through the build result.
	ErrBuildFailed = zerr.New("build failed")
)
