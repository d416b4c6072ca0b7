package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vrhal/internal/httpapi"
	"vrhal/internal/monitor"
	"vrhal/internal/openvr"
	"vrhal/internal/runtime/sim"
	"vrhal/pkg/types"
)

// newSimServer boots the full stack against the simulated runtime: backend,
// frame loop goroutine and diagnostics HTTP server. Everything is torn down
// via t.Cleanup.
func newSimServer(t *testing.T) *httptest.Server {
	t.Helper()
	backend, err := openvr.InitWith(sim.Driver{
		LoadDelay:     1,
		FrameInterval: time.Millisecond,
	}, types.ApplicationBackground, zerolog.Nop())
	if err != nil {
		t.Fatalf("init simulated backend: %v", err)
	}

	loop := monitor.New(backend, 0.1, 100, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		backend.Close()
	})

	srv := httptest.NewServer(httpapi.NewMux(loop))
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
