package repository

import (
	"github.com/formlift/docextract/gen/ent"
	"github.com/formlift/docextract/internal/entity"
)

func toDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              e.ID,
		DocumentTypeID:  e.DocumentTypeID,
		Filename:        e.Filename,
		StorageRef:      e.StorageRef,
		Status:          e.Status,
		ExtractedData:   e.ExtractedData,
		SchemaSnapshot:  e.SchemaSnapshot,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toDocumentType(e *ent.DocumentType) *entity.DocumentType {
	return &entity.DocumentType{
		ID:                     e.ID,
		Name:                   e.Name,
		Schema:                 e.Schema,
		ValidationInstructions: e.ValidationInstructions,
		ModelName:              e.ModelName,
		ProviderName:           e.ProviderName,
		SystemPrompt:           e.SystemPrompt,
		WebhookURL:             e.WebhookURL,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

func toExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:              e.ID,
		DocumentID:      e.DocumentID,
		BatchID:         e.BatchID,
		Status:          e.Status,
		ProgressPercent: e.ProgressPercent,
		PartialData:     e.PartialData,
		ErrorMessage:    e.ErrorMessage,
		StartedAt:       e.StartedAt,
		CompletedAt:     e.CompletedAt,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

func toBatch(e *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:             e.ID,
		DocumentTypeID: e.DocumentTypeID,
		Total:          e.Total,
		Completed:      e.Completed,
		Failed:         e.Failed,
		Status:         e.Status,
		WebhookURL:     e.WebhookURL,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		CompletedAt:    e.CompletedAt,
	}
}
