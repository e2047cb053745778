package domain

// TaskState represents the lifecycle state of a build task.
type TaskState string

const (
	// TaskStateIdle indicates the task has not been executed.
	TaskStateIdle TaskState = "idle"
	// TaskStateRunning indicates the pipeline is executing.
	TaskStateRunning TaskState = "running"
	// TaskStateSucceeded indicates every step completed.
	TaskStateSucceeded TaskState = "succeeded"
	// TaskStateFailed indicates a step failed.
	TaskStateFailed TaskState = "failed"
	// TaskStateCancelled indicates cancellation was observed before the pipeline finished.
	TaskStateCancelled TaskState = "cancelled"
)

// IsTerminal checks if a state is final (Succeeded, Failed, Cancelled).
func (s TaskState) IsTerminal() bool {
	switch s {
	case TaskStateSucceeded, TaskStateFailed, TaskStateCancelled:
		return true
	default:
		return false
	}
}

// String returns the state name.
func (s TaskState) String() string {
	return string(s)
}
