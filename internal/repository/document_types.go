package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formlift/docextract/gen/ent"
	"github.com/formlift/docextract/gen/ent/documenttype"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
)

type DocumentTypeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentType, error)
	GetOrCreateByName(ctx context.Context, name, modelName string, schema json.RawMessage) (*entity.DocumentType, error)
}

type documentTypeRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentTypeRepository(entc *ent.Client, log *slog.Logger) DocumentTypeRepository {
	return &documentTypeRepo{ent: entc, log: log}
}

func (r *documentTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentType, error) {
	row, err := r.ent.DocumentType.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get document type")
	}
	return toDocumentType(row), nil
}

func (r *documentTypeRepo) GetOrCreateByName(ctx context.Context, name, modelName string, schema json.RawMessage) (*entity.DocumentType, error) {
	row, err := r.ent.DocumentType.
		Query().
		Where(documenttype.NameEQ(name)).
		Only(ctx)
	if err == nil {
		return toDocumentType(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, common.WrapError(err, "query document type")
	}

	row, err = r.ent.DocumentType.
		Create().
		SetName(name).
		SetModelName(modelName).
		SetSchema(schema).
		Save(ctx)
	if err != nil {
		r.log.Error("document type create failed", "name", name, "err", err)
		return nil, common.WrapError(err, "create document type")
	}
	r.log.Info("document type created", "document_type_id", row.ID, "name", name)
	return toDocumentType(row), nil
}
