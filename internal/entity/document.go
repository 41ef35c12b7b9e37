package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents one uploaded file awaiting or holding extracted data,
// for data transfer between layers.
type Document struct {
	ID              uuid.UUID       `json:"id"`
	DocumentTypeID  uuid.UUID       `json:"document_type_id"`
	Filename        string          `json:"filename"`
	StorageRef      string          `json:"storage_ref"`
	Status          string          `json:"status"`
	ExtractedData   json.RawMessage `json:"extracted_data,omitempty"`
	SchemaSnapshot  json.RawMessage `json:"schema_snapshot,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
