package buildtask

import "sync"

// SourceTree guards a project directory shared by several tasks. Work that
// writes into the project (autogen, prebuild commands) runs under its lock, and
// autogen is regenerated at most once per SourceTree.
type SourceTree struct {
	mu          sync.Mutex
	regenerated bool
}

// NewSourceTree creates a SourceTree.
func NewSourceTree() *SourceTree {
	return &SourceTree{}
}

// Do runs fn while holding the tree lock.
func (s *SourceTree) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// WithSourceTree serialises the autogen step of the task with every other
// task sharing src. Once one of them has run autogen.sh the others reuse its
// configure script.
func WithSourceTree(src *SourceTree) Option {
	return func(t *Task) {
		t.source = src
	}
}

// lockSource acquires the tree lock if the task has one and reports whether
// autogen already ran under it. The returned func releases the lock.
func (t *Task) lockSource() (regenerated bool, unlock func()) {
	if t.source == nil {
		return false, func() {}
	}
	t.source.mu.Lock()
	return t.source.regenerated, t.source.mu.Unlock
}

func (t *Task) markRegenerated() {
	if t.source != nil {
		t.source.regenerated = true
	}
}
