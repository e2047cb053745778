package progrock

import (
	"sync"
	"time"

	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*StatusWriter)(nil)

// StatusWriter logs each vertex once it completes and forwards every
// update to the next writer.
type StatusWriter struct {
	logger ports.Logger
	next   progrock.Writer

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewStatusWriter returns a StatusWriter. next may be nil.
func NewStatusWriter(logger ports.Logger, next progrock.Writer) *StatusWriter {
	return &StatusWriter{
		logger:   logger,
		next:     next,
		reported: make(map[string]struct{}),
	}
}

// WriteStatus implements progrock.Writer.
func (w *StatusWriter) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.Vertexes {
		if v.Completed == nil || !w.markReported(v.Id) {
			continue
		}
		w.report(v)
	}

	if w.next != nil {
		return w.next.WriteStatus(update)
	}
	return nil
}

// Close implements progrock.Writer.
func (w *StatusWriter) Close() error {
	if w.next != nil {
		return w.next.Close()
	}
	return nil
}

func (w *StatusWriter) markReported(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.reported[id]; ok {
		return false
	}
	w.reported[id] = struct{}{}
	return true
}

func (w *StatusWriter) report(v *progrock.Vertex) {
	if w.logger == nil {
		return
	}

	var elapsed time.Duration
	if v.Started != nil {
		elapsed = v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
	}

	switch {
	case v.Error != nil:
		w.logger.Warn(v.Name + " failed after " + elapsed.String() + ": " + *v.Error)
	case v.Cached:
		w.logger.Info(v.Name + " cached")
	default:
		w.logger.Info(v.Name + " finished in " + elapsed.String())
	}
}
