package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
)

// Extractor runs one extraction end to end. Satisfied by *engine.Engine.
type Extractor interface {
	Extract(ctx context.Context, documentID uuid.UUID, opts engine.Options) (engine.Result, error)
}

// JobLedger is the slice of the job repository the schedulers need to record
// extraction attempts. Satisfied by repository.ExtractJobRepository.
type JobLedger interface {
	Create(ctx context.Context, documentID uuid.UUID, batchID *uuid.UUID, createdBy string) (*entity.ExtractJob, error)
	HasActive(ctx context.Context, documentID uuid.UUID) (bool, error)
	Start(ctx context.Context, jobID uuid.UUID) error
	UpdateProgress(ctx context.Context, jobID uuid.UUID, percent int, partial json.RawMessage) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	FinishCancelled(ctx context.Context, jobID uuid.UUID) error
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error)
	DeletePendingForBatch(ctx context.Context, batchID uuid.UUID) (int, error)
}

// Settlement is the terminal report for one scheduled extraction, handed to
// the reconciler.
type Settlement struct {
	DocumentID uuid.UUID
	Result     engine.Result
	Err        error
}

// SettleFunc observes every settled extraction, success or not.
type SettleFunc func(ctx context.Context, s Settlement)
