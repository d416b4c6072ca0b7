package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vrhal/pkg/types"
)

// Service defines the methods required by the HTTP API layer. The frame loop
// implements it; handlers only ever read published snapshots.
type Service interface {
	Status() types.StatusResponse
	Trackers() []types.TrackerStatus
	Ready() bool
}

// NewMux builds the diagnostics router: /status, /trackers, /trackers/{slot},
// /healthz, /readyz, /metrics and the optional swagger UI.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Read-only API; open CORS so browser dashboards can poll it
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/trackers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"trackers": svc.Trackers()})
	})

	r.Get("/trackers/{slot}", func(w http.ResponseWriter, r *http.Request) {
		slot, err := strconv.ParseUint(chi.URLParam(r, "slot"), 10, 32)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "slot must be an unsigned integer")
			return
		}
		for _, tr := range svc.Trackers() {
			if uint64(tr.Slot) == slot {
				writeJSON(w, tr)
				return
			}
		}
		writeJSONError(w, http.StatusNotFound, "unknown tracker slot")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !svc.Ready() {
			writeJSONError(w, http.StatusServiceUnavailable, "frame loop not running")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Handle("/metrics", promhttp.Handler())

	MountSwagger(r)
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
