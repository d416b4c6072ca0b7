package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"vrhal/internal/config"
	"vrhal/internal/httpapi"
	"vrhal/internal/monitor"
	"vrhal/internal/openvr"
	"vrhal/internal/runtime/sim"
	"vrhal/pkg/types"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("VRHALD_ADDR"); v != "" {
		defaultAddr = v
	}
	fs := newFlags(defaultAddr)
	fs.Parse(os.Args[1:])
	cfg := fs.resolve()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	httpapi.SetLogger(log)

	kind, err := parseAppKind(cfg.AppKind)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid application kind")
	}

	backend, err := newBackend(cfg, kind, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize VR runtime")
	}
	defer backend.Close()

	loop := monitor.New(backend, cfg.NearClip, cfg.FarClip, log)
	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		loop.Run(loopCtx)
	}()

	mux := httpapi.NewMux(loop) // /status, /trackers, /healthz, /readyz, /metrics
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		log.Info().Str("addr", cfg.Addr).Bool("simulate", cfg.Simulate).Msg("vrhald listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopLoop()
	<-loopDone

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
}

// newBackend picks the simulated runtime or whatever driver the build
// registered with the openvr package.
func newBackend(cfg config.Config, kind types.ApplicationKind, log zerolog.Logger) (*openvr.Backend, error) {
	if cfg.Simulate {
		return openvr.InitWith(sim.Driver{FrameInterval: 11 * time.Millisecond}, kind, log)
	}
	return openvr.Init(kind, log)
}
