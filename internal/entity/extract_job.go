package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one extraction attempt for one document, for data
// transfer between layers.
type ExtractJob struct {
	ID              uuid.UUID       `json:"id"`
	DocumentID      uuid.UUID       `json:"document_id"`
	BatchID         *uuid.UUID      `json:"batch_id,omitempty"`
	Status          string          `json:"status"`
	ProgressPercent int             `json:"progress_percent"`
	PartialData     json.RawMessage `json:"partial_data,omitempty"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}
