package notifier

import (
	"context"

	"github.com/formlift/docextract/internal/entity"
)

// Event is a document lifecycle transition worth telling the outside world about.
type Event string

const (
	EventUploaded   Event = "document.uploaded"
	EventProcessed  Event = "document.processed"
	EventApproved   Event = "document.approved"
	EventUnapproved Event = "document.unapproved"

	EventBatchCompleted Event = "batch.completed"
	EventBatchCancelled Event = "batch.cancelled"
)

// Notifier delivers document events to external listeners. Fire-and-forget:
// implementations log failures and never propagate them into the pipeline.
type Notifier interface {
	Notify(ctx context.Context, event Event, doc *entity.Document, docType *entity.DocumentType)
}

// BatchNotifier delivers batch lifecycle events to the batch's own webhook.
type BatchNotifier interface {
	NotifyBatch(ctx context.Context, event Event, batch *entity.Batch)
}

// Noop is used where no webhook is configured.
type Noop struct{}

func (Noop) Notify(context.Context, Event, *entity.Document, *entity.DocumentType) {}

func (Noop) NotifyBatch(context.Context, Event, *entity.Batch) {}
