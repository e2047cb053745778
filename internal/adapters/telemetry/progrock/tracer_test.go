package progrock_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mwleeds/gnome-builder/internal/adapters/telemetry/progrock"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/mwleeds/gnome-builder/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// completed returns the completed vertices by name, with their error if any.
func (w *captureWriter) completed() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]string)
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.Completed == nil {
				continue
			}
			out[v.Name] = ""
			if v.Error != nil {
				out[v.Name] = *v.Error
			}
		}
	}
	return out
}

func TestTracer_SpansBecomeVertices(t *testing.T) {
	w := &captureWriter{}
	tracer := progrock.NewTracer(w)

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"configure", "make"})

	_, ok := tracer.Start(ctx, "configure", ports.WithAttribute("argv0", "configure"))
	_, err := ok.Write([]byte("checking for gcc... gcc\n"))
	require.NoError(t, err)
	ok.End()

	_, bad := tracer.Start(ctx, "make")
	bad.RecordError(errors.New("make failed"))
	bad.End()

	require.NoError(t, tracer.Shutdown(ctx))
	require.NoError(t, tracer.Shutdown(ctx))

	done := w.completed()
	assert.Contains(t, done, "plan")
	assert.Equal(t, "", done["configure"])
	assert.Contains(t, done["make"], "make failed")
	assert.True(t, w.closed)
}

func TestStatusWriter_LogsCompletedVerticesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var infos, warns []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) }).AnyTimes()

	next := &captureWriter{}
	sw := progrock.NewStatusWriter(logger, next)

	started := timestamppb.Now()
	completed := timestamppb.New(started.AsTime().Add(1500 * time.Millisecond))
	failure := "exit status 2"

	update := &vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{Id: "1", Name: "autogen", Started: started},
			{Id: "2", Name: "configure", Started: started, Completed: completed},
			{Id: "3", Name: "make", Started: started, Completed: completed, Error: &failure},
			{Id: "4", Name: "mkdirs", Started: started, Completed: completed, Cached: true},
		},
	}
	require.NoError(t, sw.WriteStatus(update))
	require.NoError(t, sw.WriteStatus(update))

	assert.Equal(t, []string{"configure finished in 1.5s", "mkdirs cached"}, infos)
	require.Len(t, warns, 1)
	assert.True(t, strings.HasPrefix(warns[0], "make failed after 1.5s"), warns[0])

	assert.Len(t, next.updates, 2)
	require.NoError(t, sw.Close())
	assert.True(t, next.closed)
}

func TestStatusWriter_NilNext(t *testing.T) {
	sw := progrock.NewStatusWriter(nil, nil)
	require.NoError(t, sw.WriteStatus(&vprogrock.StatusUpdate{}))
	require.NoError(t, sw.Close())
}

func TestNew(t *testing.T) {
	tracer := progrock.New(nil)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "make")
	span.SetAttribute("targets", []string{"all"})
	span.End()
}
