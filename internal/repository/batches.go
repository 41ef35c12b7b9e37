package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/gen/ent"
	"github.com/formlift/docextract/gen/ent/batch"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
)

type BatchRepository interface {
	Create(ctx context.Context, documentTypeID uuid.UUID, total int, webhookURL *string, createdBy string) (*entity.Batch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// RecordItem transactionally bumps the completed or failed counter and flips
	// the batch to COMPLETED once every job has settled, unless cancelled.
	RecordItem(ctx context.Context, id uuid.UUID, failed bool) (*entity.Batch, error)
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
}

type batchRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchRepository(entc *ent.Client, log *slog.Logger) BatchRepository {
	return &batchRepo{ent: entc, log: log}
}

func (r *batchRepo) Create(ctx context.Context, documentTypeID uuid.UUID, total int, webhookURL *string, createdBy string) (*entity.Batch, error) {
	create := r.ent.Batch.
		Create().
		SetDocumentTypeID(documentTypeID).
		SetTotal(total).
		SetStatus(string(constants.BatchStatusPending)).
		SetCreatedBy(createdBy)
	if webhookURL != nil {
		create = create.SetWebhookURL(*webhookURL)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("batch create failed", "document_type_id", documentTypeID, "err", err)
		return nil, common.WrapError(err, "create batch")
	}
	r.log.Info("batch created", "batch_id", row.ID, "total", total)
	return toBatch(row), nil
}

func (r *batchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	row, err := r.ent.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get batch")
	}
	return toBatch(row), nil
}

func (r *batchRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Batch.
		Update().
		Where(
			batch.IDEQ(id),
			batch.StatusEQ(string(constants.BatchStatusPending)),
		).
		SetStatus(string(constants.BatchStatusProcessing)).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "mark batch processing")
	}
	if n == 0 {
		r.log.Debug("batch not in pending, leaving status unchanged", "batch_id", id)
	}
	return nil
}

func (r *batchRepo) RecordItem(ctx context.Context, id uuid.UUID, failed bool) (*entity.Batch, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	update := tx.Batch.UpdateOneID(id)
	if failed {
		update = update.AddFailed(1)
	} else {
		update = update.AddCompleted(1)
	}
	row, err := update.Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "bump batch counter")
	}

	// Terminal flip happens exactly once, on the update that settles the last
	// job. A cancelled batch keeps its status.
	if row.Completed+row.Failed >= row.Total &&
		row.Status != string(constants.BatchStatusCancelled) {
		row, err = tx.Batch.
			UpdateOneID(id).
			SetStatus(string(constants.BatchStatusCompleted)).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, common.WrapError(err, "complete batch")
		}
		r.log.Info("batch completed", "batch_id", id, "completed", row.Completed, "failed", row.Failed)
	}

	if err = tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit batch item")
	}
	return toBatch(row), nil
}

func (r *batchRepo) Cancel(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	row, err := r.ent.Batch.
		UpdateOneID(id).
		SetStatus(string(constants.BatchStatusCancelled)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "cancel batch")
	}
	r.log.Info("batch cancelled", "batch_id", id)
	return toBatch(row), nil
}
