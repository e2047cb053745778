// Package progrock reports build steps as Progrock vertices.
package progrock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var (
	_ ports.Tracer = (*Tracer)(nil)
	_ ports.Span   = (*Span)(nil)
)

// Tracer implements ports.Tracer on top of a Progrock recorder.
// Every span becomes one vertex.
type Tracer struct {
	w    progrock.Writer
	rec  *progrock.Recorder
	seq  atomic.Uint64
	once sync.Once
}

// New creates a Tracer that logs finished vertices to logger and keeps
// the full stream on a tape.
func New(logger ports.Logger) *Tracer {
	return NewTracer(NewStatusWriter(logger, progrock.NewTape()))
}

// NewTracer creates a Tracer recording to w.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex. Repeated names get distinct vertices.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(fmt.Sprintf("%s#%d", name, t.seq.Add(1)))
	s := &Span{vertex: t.rec.Vertex(d, name)}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}
	return ctx, s
}

// EmitPlan records the planned steps on a vertex of their own.
func (t *Tracer) EmitPlan(_ context.Context, steps []string) {
	d := digest.FromString(fmt.Sprintf("plan#%d", t.seq.Add(1)))
	v := t.rec.Vertex(d, "plan")
	_, _ = fmt.Fprintf(v.Stdout(), "%s\n", strings.Join(steps, " -> "))
	v.Done(nil)
}

// Shutdown closes the underlying writer.
func (t *Tracer) Shutdown(_ context.Context) error {
	var err error
	t.once.Do(func() {
		err = t.w.Close()
	})
	return err
}

// Span wraps a *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write records process output on the vertex.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError remembers err; the vertex fails with it when the span ends.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	_, _ = fmt.Fprintf(s.vertex.Stderr(), "%v\n", err)
}

// SetAttribute writes the attribute to the vertex log.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()

	s.vertex.Done(err)
}
