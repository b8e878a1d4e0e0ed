package cmd

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServe_ShutdownEndsOpenStreams(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	stream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		close(started)
		<-r.Context().Done()
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, stream, zap.NewNop()) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/stream/bookings")
		if err == nil {
			resp.Body.Close()
		}
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("stream never opened")
	}

	begin := time.Now()
	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Less(t, time.Since(begin), shutdownTimeout/2)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestServe_ReturnsServeError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = serve(context.Background(), ln, http.NotFoundHandler(), zap.NewNop())
	assert.Error(t, err)
}
