package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formlift/docextract/internal/cache"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/export"
	"github.com/formlift/docextract/internal/gateway/openai"
	"github.com/formlift/docextract/internal/notifier"
	"github.com/formlift/docextract/internal/orchestrator"
	"github.com/formlift/docextract/internal/reconciler"
	repo "github.com/formlift/docextract/internal/repository"
	"github.com/formlift/docextract/internal/server"
	"github.com/formlift/docextract/internal/storage"
	"github.com/formlift/docextract/internal/validator"
)

// poolChecker adapts the pgx pool to the server's health probe.
type poolChecker struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	log     *slog.Logger
}

func (p poolChecker) Ping(ctx context.Context) error {
	return repo.HealthCheck(ctx, p.pool, p.timeout, p.log)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	typesRepo := repo.NewDocumentTypeRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	batchesRepo := repo.NewBatchRepository(entc, logger)

	store, err := storage.NewMinioStore(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.UseSSL,
	)
	if err != nil {
		logger.Error("failed to connect to object storage", "endpoint", cfg.Storage.Endpoint, "error", err)
		os.Exit(1)
	}

	var partials cache.PartialCache
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		partials = redisCache
		logger.Info("partial cache backed by redis")
	} else {
		partials = cache.NewMemoryCache()
		logger.Info("partial cache in process memory")
	}

	gw := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	webhook := notifier.NewWebhook(logger)
	eng := engine.New(docsRepo, typesRepo, store, validator.New(gw, logger), gw, logger)
	rec := reconciler.New(docsRepo, typesRepo, partials, webhook, logger)

	claims := orchestrator.NewClaims()
	live := orchestrator.NewLiveQueue(eng, jobsRepo, claims, rec.OnPartial, rec.OnSettled, logger)
	runner := orchestrator.NewBatchRunner(eng, batchesRepo, jobsRepo, claims, rec.OnSettled, webhook, cfg.Orchestrator.BatchConcurrency, logger)

	srv := server.New(server.Config{
		Live:    live,
		Runner:  runner,
		Batches: batchesRepo,
		Jobs:    jobsRepo,
		Docs:    docsRepo,
		Rec:     rec,
		Export:  export.NewService(batchesRepo, jobsRepo, docsRepo, logger),
		DB:      poolChecker{pool: pool, timeout: 3 * time.Second, log: logger},
		Cache:   partials,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	live.StopAll()
	live.Wait()
	logger.Info("bye")
}
