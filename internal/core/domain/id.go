package domain

import (
	"fmt"
	"sync/atomic"
)

// IDGenerator derives fresh configuration ids.
type IDGenerator interface {
	NextID(base string) string
}

// CounterIDGenerator appends a monotonically increasing counter to the base id.
// The first id it produces ends in 2.
type CounterIDGenerator struct {
	next atomic.Uint64
}

// NewCounterIDGenerator returns a generator starting at 2.
func NewCounterIDGenerator() *CounterIDGenerator {
	g := &CounterIDGenerator{}
	g.next.Store(2)
	return g
}

// NextID returns "<base> <n>".
func (g *CounterIDGenerator) NextID(base string) string {
	n := g.next.Add(1) - 1
	return fmt.Sprintf("%s %d", base, n)
}
