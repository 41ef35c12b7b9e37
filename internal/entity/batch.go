package entity

import (
	"time"

	"github.com/google/uuid"
)

// Batch is a durable grouping of extract jobs submitted together.
type Batch struct {
	ID             uuid.UUID  `json:"id"`
	DocumentTypeID uuid.UUID  `json:"document_type_id"`
	Total          int        `json:"total"`
	Completed      int        `json:"completed"`
	Failed         int        `json:"failed"`
	Status         string     `json:"status"`
	WebhookURL     *string    `json:"webhook_url,omitempty"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Settled reports whether every job in the batch has reached a terminal state.
func (b *Batch) Settled() bool {
	return b.Completed+b.Failed >= b.Total
}
