package domain

// CommandQueue is an ordered list of shell commands run around a build.
type CommandQueue struct {
	commands []string
}

// NewCommandQueue returns a queue holding commands in order.
func NewCommandQueue(commands ...string) *CommandQueue {
	q := &CommandQueue{}
	q.commands = append(q.commands, commands...)
	return q
}

// Append adds a command to the end of the queue.
func (q *CommandQueue) Append(command string) {
	q.commands = append(q.commands, command)
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.commands)
}

// Commands returns a copy of the queued commands.
func (q *CommandQueue) Commands() []string {
	if q == nil {
		return nil
	}
	out := make([]string, len(q.commands))
	copy(out, q.commands)
	return out
}

// Copy returns an independent copy of the queue.
func (q *CommandQueue) Copy() *CommandQueue {
	if q == nil {
		return NewCommandQueue()
	}
	return NewCommandQueue(q.commands...)
}
