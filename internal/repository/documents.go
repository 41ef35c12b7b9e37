package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/gen/ent"
	"github.com/formlift/docextract/gen/ent/document"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
)

// DocumentRepository is the durable view of document state. Status writes are
// expressed as explicit transitions so the invariants (rejected ⇒ reason set,
// processed ⇒ extracted data set) live in one place.
type DocumentRepository interface {
	Create(ctx context.Context, documentTypeID uuid.UUID, filename, storageRef string) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkProcessed(ctx context.Context, id uuid.UUID, extracted, schemaSnapshot json.RawMessage) (*entity.Document, error)
	MarkRejected(ctx context.Context, id uuid.UUID, reason string) (*entity.Document, error)
	ResetToPending(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, documentTypeID uuid.UUID, filename, storageRef string) (*entity.Document, error) {
	row, err := r.ent.Document.
		Create().
		SetDocumentTypeID(documentTypeID).
		SetFilename(filename).
		SetStorageRef(storageRef).
		SetStatus(string(constants.DocumentStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "filename", filename, "err", err)
		return nil, common.WrapError(err, "create document")
	}
	r.log.Info("document created", "document_id", row.ID, "filename", filename)
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get document")
	}
	return toDocument(row), nil
}

func (r *documentRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.
		Query().
		Where(document.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list documents")
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDocument(row))
	}
	return out, nil
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("document mark processing failed", "document_id", id, "err", err)
		return common.WrapError(err, "mark processing")
	}
	return nil
}

func (r *documentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, extracted, schemaSnapshot json.RawMessage) (*entity.Document, error) {
	row, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusProcessed)).
		SetExtractedData(extracted).
		SetSchemaSnapshot(schemaSnapshot).
		ClearRejectionReason().
		Save(ctx)
	if err != nil {
		r.log.Error("document mark processed failed", "document_id", id, "err", err)
		return nil, common.WrapError(err, "mark processed")
	}
	r.log.Info("document processed", "document_id", id, "extracted_bytes", len(extracted))
	return toDocument(row), nil
}

func (r *documentRepo) MarkRejected(ctx context.Context, id uuid.UUID, reason string) (*entity.Document, error) {
	row, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusRejected)).
		SetRejectionReason(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("document mark rejected failed", "document_id", id, "err", err)
		return nil, common.WrapError(err, "mark rejected")
	}
	r.log.Warn("document rejected", "document_id", id, "reason", reason)
	return toDocument(row), nil
}

func (r *documentRepo) ResetToPending(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("document reset failed", "document_id", id, "err", err)
		return common.WrapError(err, "reset document")
	}
	return nil
}
