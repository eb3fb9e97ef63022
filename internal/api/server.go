// Package api exposes the HTTP interface for the jobs service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/cache"
	"github.com/sarkarihub/govjobs/internal/jobs"
	"github.com/sarkarihub/govjobs/internal/metrics"
)

const (
	defaultLimit   = 50
	requestTimeout = 60 * time.Second
)

// CycleStarter triggers the background refresh loop. Start must be
// idempotent; it is called on every jobs request.
type CycleStarter interface {
	Start(ctx context.Context)
}

// DetailExtractor produces a structured result for one post URL.
type DetailExtractor interface {
	Extract(ctx context.Context, jobURL string) jobs.Details
}

// Server wires HTTP handlers to the cache, scheduler, and detail extractor.
type Server struct {
	router    chi.Router
	store     *cache.Store
	scheduler CycleStarter
	extractor DetailExtractor
	maxJobs   int
	logger    *zap.Logger

	// baseCtx outlives any single request; the refresh loop is bound to it.
	baseCtx context.Context
}

// NewServer constructs a Server with middleware and routes. maxJobs bounds
// the page size a client may request.
func NewServer(
	baseCtx context.Context,
	store *cache.Store,
	scheduler CycleStarter,
	extractor DetailExtractor,
	maxJobs int,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store:     store,
		scheduler: scheduler,
		extractor: extractor,
		maxJobs:   maxJobs,
		logger:    logger,
		baseCtx:   baseCtx,
	}

	metrics.Init()
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(corsMiddleware)
	r.Use(timeoutMiddleware(requestTimeout))
	r.Use(metrics.Middleware)

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/jobs", s.getJobs)
		r.Get("/job_details", s.getJobDetails)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ready"})
}

type jobsResponse struct {
	Jobs       []jobs.Record `json:"jobs"`
	NextOffset *int          `json:"next_offset"`
	Loading    bool          `json:"loading"`
}

// getJobs serves a window of the cached job list. The first request also
// kicks off the background refresh loop.
func (s *Server) getJobs(w http.ResponseWriter, r *http.Request) {
	offset := parseOffset(r.URL.Query().Get("offset"))
	limit := parseLimit(r.URL.Query().Get("limit"), s.maxJobs)

	s.scheduler.Start(s.baseCtx)

	snap := s.store.Read()
	total := len(snap.Records)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	resp := jobsResponse{
		Jobs:    snap.Records[start:end],
		Loading: !snap.Loaded || snap.Refreshing,
	}
	if end < total {
		resp.NextOffset = &end
	}
	writeJSON(w, s.logger, http.StatusOK, resp)
}

// getJobDetails fetches and extracts one post page on demand. Results are
// never cached.
func (s *Server) getJobDetails(w http.ResponseWriter, r *http.Request) {
	jobURL := r.URL.Query().Get("url")
	if jobURL == "" {
		writeError(w, s.logger, http.StatusBadRequest, "Missing 'url' query parameter")
		return
	}
	writeJSON(w, s.logger, http.StatusOK, s.extractor.Extract(r.Context(), jobURL))
}

func parseOffset(raw string) int {
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

func parseLimit(raw string, maxJobs int) int {
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || (maxJobs > 0 && limit > maxJobs) {
		return defaultLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, map[string]string{"error": msg})
}
