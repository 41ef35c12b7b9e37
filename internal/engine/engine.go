package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/gateway"
	"github.com/formlift/docextract/internal/repository"
	"github.com/formlift/docextract/internal/storage"
	"github.com/formlift/docextract/internal/validator"
)

// DefaultModel is used when the DocumentType does not name one and no override
// applies.
const DefaultModel = "gpt-4o-mini"

// Validator is the preflight gate the engine consults before extracting.
type Validator interface {
	Validate(ctx context.Context, instructions string, fileBytes []byte, filename, model string) (validator.Verdict, error)
}

// Options tune a single extraction run.
type Options struct {
	// SkipValidation bypasses the document-type gate entirely.
	SkipValidation bool
	// OverrideModel replaces the DocumentType's model. It is honored only when
	// the context carries elevated privilege; otherwise it is silently dropped.
	OverrideModel string
	// Streaming selects the streaming gateway call and enables OnPartial.
	Streaming bool
	// OnPartial receives successively more complete partial objects during a
	// streaming run. Called from the extraction goroutine; must be fast.
	OnPartial func(documentID uuid.UUID, partial json.RawMessage)
}

// Result is a finished extraction.
type Result struct {
	Data json.RawMessage
	// Validation is set when the gate ran, whatever it decided.
	Validation *validator.Verdict
	// Model is the model the run actually used after override resolution.
	Model string
}

// Engine runs one document through validation, inference, and output repair.
// It owns no scheduling; the orchestrator decides when and how many run.
type Engine struct {
	docs     repository.DocumentRepository
	docTypes repository.DocumentTypeRepository
	store    storage.Storage
	gate     Validator
	gw       gateway.Gateway
	log      *slog.Logger
}

func New(
	docs repository.DocumentRepository,
	docTypes repository.DocumentTypeRepository,
	store storage.Storage,
	gate Validator,
	gw gateway.Gateway,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{docs: docs, docTypes: docTypes, store: store, gate: gate, gw: gw, log: logger}
}

// Extract runs the full pipeline for one document. Every step is a possible
// exit point; the returned error classifies the failure (common.ErrNotFound,
// common.ErrValidationRejected, common.ErrInvalidModelOutput, or a transient
// wrapped cause).
func (e *Engine) Extract(ctx context.Context, documentID uuid.UUID, opts Options) (Result, error) {
	started := time.Now()

	doc, err := e.docs.GetByID(ctx, documentID)
	if err != nil {
		return Result{}, fmt.Errorf("load document %s: %w", documentID, err)
	}
	docType, err := e.docTypes.GetByID(ctx, doc.DocumentTypeID)
	if err != nil {
		return Result{}, fmt.Errorf("load document type %s: %w", doc.DocumentTypeID, err)
	}

	model := e.resolveModel(ctx, docType, opts)

	fileBytes, err := e.store.Download(ctx, doc.StorageRef)
	if err != nil {
		e.log.Error("engine.download_failed", "document_id", doc.ID, "storage_ref", doc.StorageRef, "error", err)
		return Result{}, fmt.Errorf("download %s: %w", doc.StorageRef, err)
	}

	var verdict *validator.Verdict
	if !opts.SkipValidation {
		instructions := ""
		if docType.ValidationInstructions != nil {
			instructions = *docType.ValidationInstructions
		}
		v, err := e.gate.Validate(ctx, instructions, fileBytes, doc.Filename, model)
		if err != nil {
			return Result{}, fmt.Errorf("validate document %s: %w", doc.ID, err)
		}
		verdict = &v
		if !v.IsValid {
			if _, err := e.docs.MarkRejected(ctx, doc.ID, v.Reason); err != nil {
				e.log.Error("engine.persist_rejection_failed", "document_id", doc.ID, "error", err)
			}
			return Result{Validation: verdict, Model: model}, fmt.Errorf("%s: %w", v.Reason, common.ErrValidationRejected)
		}
	}

	if err := e.docs.MarkProcessing(ctx, doc.ID); err != nil {
		e.log.Warn("engine.mark_processing_failed", "document_id", doc.ID, "error", err)
	}

	schemaMap, err := docType.SchemaMap()
	if err != nil {
		return Result{}, fmt.Errorf("decode schema for type %s: %w", docType.Name, err)
	}

	systemPrompt := ""
	if docType.SystemPrompt != nil {
		systemPrompt = *docType.SystemPrompt
	}
	req := gateway.Request{
		Model:        model,
		SystemPrompt: gateway.BuildSystemPrompt(systemPrompt),
		Parts: []gateway.Part{
			{Text: "Extract the structured data from the attached document."},
			{Data: fileBytes, MIME: constants.MIMEForFilename(doc.Filename), Filename: doc.Filename},
		},
		Schema: schemaMap,
	}

	var raw string
	if opts.Streaming {
		raw, err = e.streamAndForward(ctx, req, doc.ID, opts.OnPartial)
	} else {
		raw, err = e.gw.Complete(ctx, req)
	}
	if err != nil {
		e.log.Error("engine.inference_failed", "document_id", doc.ID, "model", model, "streaming", opts.Streaming, "error", err)
		return Result{Validation: verdict, Model: model}, fmt.Errorf("inference: %w", err)
	}

	data, err := e.finish(raw, schemaMap)
	if err != nil {
		e.log.Error("engine.output_invalid", "document_id", doc.ID, "model", model, "error", err)
		return Result{Validation: verdict, Model: model}, err
	}

	e.log.Info("engine.extract.completed",
		"document_id", doc.ID,
		"model", model,
		"streaming", opts.Streaming,
		"output_bytes", len(data),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)
	return Result{Data: data, Validation: verdict, Model: model}, nil
}

// resolveModel applies the override policy: an override from a caller without
// elevated privilege is dropped without error.
func (e *Engine) resolveModel(ctx context.Context, docType *entity.DocumentType, opts Options) string {
	if opts.OverrideModel != "" {
		if common.ElevatedFromContext(ctx) {
			return opts.OverrideModel
		}
		e.log.Warn("engine.override_dropped", "document_type", docType.Name, "requested_model", opts.OverrideModel)
	}
	if docType.ModelName != "" {
		return docType.ModelName
	}
	return DefaultModel
}

// streamAndForward drains the gateway stream, forwarding every chunk that
// already repairs into valid JSON. It returns the final accumulated text.
func (e *Engine) streamAndForward(ctx context.Context, req gateway.Request, documentID uuid.UUID, onPartial func(uuid.UUID, json.RawMessage)) (string, error) {
	ch, err := e.gw.Stream(ctx, req)
	if err != nil {
		return "", err
	}

	var last string
	for chunk := range ch {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		if chunk.Text != "" {
			last = chunk.Text
		}
		if chunk.Done {
			return last, nil
		}
		if onPartial != nil && last != "" {
			if partial, err := gateway.RepairToJSON(last); err == nil {
				onPartial(documentID, partial)
			}
		}
	}

	// Channel closed without a Done chunk: the producer bailed out. A live
	// context error is the cause; otherwise salvage whatever accumulated.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return last, nil
}

// finish repairs the raw model text into strict JSON and checks it against the
// schema with the top-level required list loosened, since the prompt contract
// tells the model to omit fields it cannot find.
func (e *Engine) finish(raw string, schemaMap map[string]any) (json.RawMessage, error) {
	data, err := gateway.RepairToJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := gateway.ValidateAgainstSchema(gateway.LoosenRequired(schemaMap), data); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrInvalidModelOutput)
	}
	return data, nil
}
