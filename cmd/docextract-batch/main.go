package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/internal/cache"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/export"
	"github.com/formlift/docextract/internal/gateway/openai"
	"github.com/formlift/docextract/internal/orchestrator"
	"github.com/formlift/docextract/internal/reconciler"
	repo "github.com/formlift/docextract/internal/repository"
	"github.com/formlift/docextract/internal/storage"
	"github.com/formlift/docextract/internal/validator"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of documents to extract (required)")
		schemaPath  = flag.String("schema", "", "path to the JSON Schema for the document type (required)")
		typeName    = flag.String("type", "local-batch", "document type name")
		out         = flag.String("out", "", "output XLSX path (defaults next to --dir)")
		concurrency = flag.Int("concurrency", orchestrator.DefaultBatchConcurrency, "concurrent extractions")
		skipCheck   = flag.Bool("skip-validation", false, "skip the document-type validation gate")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *schemaPath == "" {
		printError("Error: --schema is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "extractions.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(1)
	}

	schemaBytes, err := os.ReadFile(*schemaPath)
	if err != nil {
		logger.Error("failed to read schema", "path", *schemaPath, "error", err)
		os.Exit(1)
	}

	// Local runs keep everything in process: sqlite ledger, memory storage.
	entc, err := repo.OpenSQLite(ctx, logger)
	if err != nil {
		logger.Error("failed to open in-memory database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	typesRepo := repo.NewDocumentTypeRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	batchesRepo := repo.NewBatchRepository(entc, logger)
	store := storage.NewMemoryStore()

	docType, err := typesRepo.GetOrCreateByName(ctx, *typeName, cfg.LLM.Model, schemaBytes)
	if err != nil {
		logger.Error("failed to create document type", "error", err)
		os.Exit(1)
	}

	docIDs, err := ingestDirectory(ctx, *dir, docType.ID, store, docsRepo, logger)
	if err != nil {
		logger.Error("failed to ingest directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(docIDs) == 0 {
		printError("No supported documents found in %s\n", *dir)
		os.Exit(1)
	}

	gw := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	eng := engine.New(docsRepo, typesRepo, store, validator.New(gw, logger), gw, logger)
	rec := reconciler.New(docsRepo, typesRepo, cache.NewMemoryCache(), nil, logger)
	runner := orchestrator.NewBatchRunner(eng, batchesRepo, jobsRepo, orchestrator.NewClaims(), rec.OnSettled, nil, *concurrency, logger)

	batch, err := runner.Submit(ctx, docType.ID, docIDs, nil)
	if err != nil {
		logger.Error("failed to submit batch", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	result, err := runner.Run(ctx, batch.ID, docIDs, engine.Options{SkipValidation: *skipCheck}, 0,
		func(settled, total int, documentID uuid.UUID, settledErr error) {
			status := "ok"
			if settledErr != nil {
				status = settledErr.Error()
			}
			fmt.Printf("[%d/%d] %s: %s\n", settled, total, documentID, status)
		})
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch finished",
		"completed", len(result.Completed),
		"failed", len(result.Failed),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	xlsx, err := export.NewService(batchesRepo, jobsRepo, docsRepo, logger).ExportBatchXLSX(ctx, batch.ID)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d completed, %d failed)\n", *out, len(result.Completed), len(result.Failed))
	if len(result.Failed) > 0 {
		os.Exit(1)
	}
}

// ingestDirectory uploads every supported file and registers a document for it.
func ingestDirectory(ctx context.Context, dir string, typeID uuid.UUID, store *storage.MemoryStore, docs repo.DocumentRepository, logger *slog.Logger) ([]uuid.UUID, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := constants.NormalizeExt(filepath.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			logger.Debug("skipping unsupported file", "name", name)
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		ref, err := store.Upload(ctx, data, constants.MIMEForFilename(name))
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", name, err)
		}
		doc, err := docs.Create(ctx, typeID, name, ref)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
