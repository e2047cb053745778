package buildtask

import "github.com/mwleeds/gnome-builder/internal/core/domain"

// StderrTailLines is the number of error lines kept on process failures.
const StderrTailLines = stderrTailLines

// ParallelFlag returns the make parallelism flag the task would use right now.
func (t *Task) ParallelFlag() string {
	return domain.ParallelFlag(t.cfg.Parallelism(), t.ncpu)
}

// Tail feeds chunks through a tail buffer keeping n lines and returns what it kept.
func Tail(n int, chunks ...string) string {
	b := newTailBuffer(n)
	for _, c := range chunks {
		_, _ = b.Write([]byte(c))
	}
	return b.String()
}
