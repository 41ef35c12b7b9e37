package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/formlift/docextract/internal/entity"
)

// Webhook POSTs document events to the URL configured on the DocumentType and
// batch events to the URL configured on the Batch.
type Webhook struct {
	httpClient *http.Client
	log        *slog.Logger
}

func NewWebhook(logger *slog.Logger) *Webhook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger,
	}
}

var (
	_ Notifier      = (*Webhook)(nil)
	_ BatchNotifier = (*Webhook)(nil)
)

type webhookPayload struct {
	Event     Event            `json:"event"`
	Document  *entity.Document `json:"document"`
	Timestamp time.Time        `json:"timestamp"`
}

// Notify delivers the event to the document type's webhook, if any. Failures
// are logged and swallowed; webhook delivery must never fail the pipeline.
func (w *Webhook) Notify(ctx context.Context, event Event, doc *entity.Document, docType *entity.DocumentType) {
	if docType == nil || docType.WebhookURL == nil || *docType.WebhookURL == "" {
		return
	}
	url := *docType.WebhookURL

	body, err := json.Marshal(webhookPayload{Event: event, Document: doc, Timestamp: time.Now().UTC()})
	if err != nil {
		w.log.Error("notifier.encode_failed", "event", event, "document_id", doc.ID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		w.log.Error("notifier.build_request_failed", "event", event, "url", url, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.Warn("notifier.delivery_failed", "event", event, "document_id", doc.ID, "url", url, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		w.log.Warn("notifier.delivery_rejected", "event", event, "document_id", doc.ID, "url", url, "status", resp.StatusCode)
		return
	}
	w.log.Info("notifier.delivered", "event", event, "document_id", doc.ID, "url", url)
}

type batchWebhookPayload struct {
	Event     Event         `json:"event"`
	Batch     *entity.Batch `json:"batch"`
	Timestamp time.Time     `json:"timestamp"`
}

// NotifyBatch delivers a batch terminal event to the webhook configured on the
// batch itself. Same contract as Notify: log and swallow.
func (w *Webhook) NotifyBatch(ctx context.Context, event Event, batch *entity.Batch) {
	if batch == nil || batch.WebhookURL == nil || *batch.WebhookURL == "" {
		return
	}
	url := *batch.WebhookURL

	body, err := json.Marshal(batchWebhookPayload{Event: event, Batch: batch, Timestamp: time.Now().UTC()})
	if err != nil {
		w.log.Error("notifier.encode_failed", "event", event, "batch_id", batch.ID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		w.log.Error("notifier.build_request_failed", "event", event, "url", url, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.Warn("notifier.delivery_failed", "event", event, "batch_id", batch.ID, "url", url, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		w.log.Warn("notifier.delivery_rejected", "event", event, "batch_id", batch.ID, "url", url, "status", resp.StatusCode)
		return
	}
	w.log.Info("notifier.delivered", "event", event, "batch_id", batch.ID, "url", url)
}
