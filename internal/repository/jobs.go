package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/gen/ent"
	"github.com/formlift/docextract/gen/ent/extractjob"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
)

type ExtractJobRepository interface {
	Create(ctx context.Context, documentID uuid.UUID, batchID *uuid.UUID, createdBy string) (*entity.ExtractJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractJob, error)
	HasActive(ctx context.Context, documentID uuid.UUID) (bool, error)
	Start(ctx context.Context, jobID uuid.UUID) error
	UpdateProgress(ctx context.Context, jobID uuid.UUID, percent int, partial json.RawMessage) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	FinishCancelled(ctx context.Context, jobID uuid.UUID) error
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error)
	DeletePendingForBatch(ctx context.Context, batchID uuid.UUID) (int, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Create(ctx context.Context, documentID uuid.UUID, batchID *uuid.UUID, createdBy string) (*entity.ExtractJob, error) {
	create := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetStatus(string(constants.JobStatusPending)).
		SetCreatedBy(createdBy)
	if batchID != nil {
		create = create.SetBatchID(*batchID)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("extract_job create failed", "document_id", documentID, "err", err)
		return nil, common.WrapError(err, "create job")
	}
	r.log.Info("extract_job created", "job_id", job.ID, "document_id", documentID, "batch_id", batchID)
	return toExtractJob(job), nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractJob, error) {
	row, err := r.ent.ExtractJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get job")
	}
	return toExtractJob(row), nil
}

// HasActive reports whether the document already has a pending or processing job.
func (r *extractJobRepo) HasActive(ctx context.Context, documentID uuid.UUID) (bool, error) {
	n, err := r.ent.ExtractJob.
		Query().
		Where(
			extractjob.DocumentIDEQ(documentID),
			extractjob.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
			),
		).
		Count(ctx)
	if err != nil {
		return false, common.WrapError(err, "count active jobs")
	}
	return n > 0, nil
}

func (r *extractJobRepo) Start(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "start job")
	}
	return nil
}

func (r *extractJobRepo) UpdateProgress(ctx context.Context, jobID uuid.UUID, percent int, partial json.RawMessage) error {
	update := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetProgressPercent(percent)
	if partial != nil {
		update = update.SetPartialData(partial)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Warn("extract_job progress update failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "update progress")
	}
	return nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgressPercent(100).
		SetCompletedAt(time.Now()).
		ClearPartialData().
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(COMPLETED) failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "finish job")
	}
	r.log.Info("extract_job finished (COMPLETED)", "job_id", jobID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetCompletedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "fail job")
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

// FinishCancelled marks a stopped job. Distinct from FAILED: a stop request
// is operator intent, not an extraction defect.
func (r *extractJobRepo) FinishCancelled(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCancelled)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(CANCELLED) failed", "job_id", jobID, "err", err)
		return common.WrapError(err, "cancel job")
	}
	r.log.Info("extract_job finished (CANCELLED)", "job_id", jobID)
	return nil
}

func (r *extractJobRepo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error) {
	rows, err := r.ent.ExtractJob.
		Query().
		Where(extractjob.BatchIDEQ(batchID)).
		Order(ent.Asc(extractjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list batch jobs")
	}
	out := make([]*entity.ExtractJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, toExtractJob(row))
	}
	return out, nil
}

// DeletePendingForBatch removes jobs that never started in a cancelled batch.
// Completed and failed jobs stay as history.
func (r *extractJobRepo) DeletePendingForBatch(ctx context.Context, batchID uuid.UUID) (int, error) {
	n, err := r.ent.ExtractJob.
		Delete().
		Where(
			extractjob.BatchIDEQ(batchID),
			extractjob.StatusEQ(string(constants.JobStatusPending)),
		).
		Exec(ctx)
	if err != nil {
		return 0, common.WrapError(err, "delete pending batch jobs")
	}
	if n > 0 {
		r.log.Info("pending batch jobs removed", "batch_id", batchID, "count", n)
	}
	return n, nil
}
