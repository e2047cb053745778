package buildtask

import (
	"bytes"
	"strings"
	"sync"
)

// tailBuffer keeps the last n complete lines written to it, plus any
// unterminated remainder.
type tailBuffer struct {
	mu      sync.Mutex
	n       int
	lines   []string
	partial bytes.Buffer
}

func newTailBuffer(n int) *tailBuffer {
	return &tailBuffer{n: n}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.partial.Write(p)
	for {
		line, err := b.partial.ReadString('\n')
		if err != nil {
			// Put the incomplete line back.
			b.partial.Reset()
			b.partial.WriteString(line)
			break
		}
		b.push(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (b *tailBuffer) push(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > b.n {
		b.lines = b.lines[len(b.lines)-b.n:]
	}
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := b.lines
	if b.partial.Len() > 0 {
		lines = append(append([]string(nil), lines...), b.partial.String())
		if len(lines) > b.n {
			lines = lines[len(lines)-b.n:]
		}
	}
	return strings.Join(lines, "\n")
}
