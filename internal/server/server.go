package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formlift/docextract/internal/export"
	"github.com/formlift/docextract/internal/orchestrator"
	"github.com/formlift/docextract/internal/reconciler"
	"github.com/formlift/docextract/internal/repository"
)

// HealthChecker reports readiness of a backing service.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server wires the schedulers and repositories to the HTTP surface.
type Server struct {
	live    *orchestrator.LiveQueue
	runner  *orchestrator.BatchRunner
	batches repository.BatchRepository
	jobs    repository.ExtractJobRepository
	docs    repository.DocumentRepository
	rec     *reconciler.Reconciler
	export  *export.Service
	db      HealthChecker
	cache   HealthChecker
	log     *slog.Logger
}

type Config struct {
	Live    *orchestrator.LiveQueue
	Runner  *orchestrator.BatchRunner
	Batches repository.BatchRepository
	Jobs    repository.ExtractJobRepository
	Docs    repository.DocumentRepository
	Rec     *reconciler.Reconciler
	Export  *export.Service
	DB      HealthChecker
	Cache   HealthChecker
	Logger  *slog.Logger
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		live:    cfg.Live,
		runner:  cfg.Runner,
		batches: cfg.Batches,
		jobs:    cfg.Jobs,
		docs:    cfg.Docs,
		rec:     cfg.Rec,
		export:  cfg.Export,
		db:      cfg.DB,
		cache:   cfg.Cache,
		log:     logger,
	}
}

// Router builds the chi router with the middleware stack and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(logger)
	r.Use(recovery)

	r.Get("/api/v1/health", s.handleHealth)

	r.Post("/api/v1/extract/live", s.handleSubmitLive)
	r.Post("/api/v1/extract/live/stop", s.handleStopCurrent)
	r.Post("/api/v1/extract/live/stop-all", s.handleStopAll)

	r.Post("/api/v1/batches", s.handleCreateBatch)
	r.Get("/api/v1/batches/{batchID}", s.handleGetBatch)
	r.Delete("/api/v1/batches/{batchID}", s.handleCancelBatch)
	r.Get("/api/v1/batches/{batchID}/export", s.handleExportBatch)

	r.Get("/api/v1/documents/{documentID}/partial", s.handleGetPartial)

	return r
}
