package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/entity"
)

func TestWebhookNotifyDelivers(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	doc := &entity.Document{ID: uuid.New(), Status: "PROCESSED"}
	docType := &entity.DocumentType{WebhookURL: &srv.URL}

	NewWebhook(nil).Notify(context.Background(), EventProcessed, doc, docType)

	assert.Equal(t, EventProcessed, got.Event)
	assert.Equal(t, doc.ID, got.Document.ID)
}

func TestWebhookNotifySwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	doc := &entity.Document{ID: uuid.New()}
	docType := &entity.DocumentType{WebhookURL: &srv.URL}

	// must not panic or propagate anything
	NewWebhook(nil).Notify(context.Background(), EventProcessed, doc, docType)

	// unreachable endpoint is equally silent
	unreachable := "http://127.0.0.1:1/hook"
	docType.WebhookURL = &unreachable
	NewWebhook(nil).Notify(context.Background(), EventProcessed, doc, docType)
}

func TestWebhookNotifySkipsWhenUnconfigured(t *testing.T) {
	doc := &entity.Document{ID: uuid.New()}
	NewWebhook(nil).Notify(context.Background(), EventProcessed, doc, &entity.DocumentType{})
	NewWebhook(nil).Notify(context.Background(), EventProcessed, doc, nil)
}

func TestWebhookNotifyBatchDelivers(t *testing.T) {
	var got batchWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	batch := &entity.Batch{ID: uuid.New(), Status: "COMPLETED", Total: 3, Completed: 3, WebhookURL: &srv.URL}
	NewWebhook(nil).NotifyBatch(context.Background(), EventBatchCompleted, batch)

	assert.Equal(t, EventBatchCompleted, got.Event)
	assert.Equal(t, batch.ID, got.Batch.ID)
	assert.Equal(t, 3, got.Batch.Completed)
}

func TestWebhookNotifyBatchSkipsWhenUnconfigured(t *testing.T) {
	NewWebhook(nil).NotifyBatch(context.Background(), EventBatchCompleted, &entity.Batch{ID: uuid.New()})
	NewWebhook(nil).NotifyBatch(context.Background(), EventBatchCompleted, nil)
}
