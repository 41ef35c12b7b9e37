package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/formlift/docextract/internal/engine"
)

// handleCreateBatch submits a batch and starts it on a background goroutine.
// POST /api/v1/batches
func (s *Server) handleCreateBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentTypeID string   `json:"document_type_id"`
		DocumentIDs    []string `json:"document_ids"`
		SkipValidation bool     `json:"skip_validation"`
		WebhookURL     *string  `json:"webhook_url"`
		// 0 falls back to the configured fan-out
		Concurrency int `json:"concurrency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
		return
	}

	typeID, err := uuid.Parse(req.DocumentTypeID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "document_type_id must be a UUID", nil)
		return
	}
	if len(req.DocumentIDs) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "document_ids is required", nil)
		return
	}
	if req.Concurrency < 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "concurrency must not be negative", nil)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.DocumentIDs))
	for _, raw := range req.DocumentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "document_ids must be UUIDs", raw)
			return
		}
		ids = append(ids, id)
	}

	batch, err := s.runner.Submit(r.Context(), typeID, ids, req.WebhookURL)
	if err != nil {
		respondForErr(w, err)
		return
	}

	// The batch outlives the request. Run detaches from the request's
	// cancellation internally; value context (user, request id) carries over.
	go func(ctx context.Context) {
		if _, err := s.runner.Run(ctx, batch.ID, ids, engine.Options{SkipValidation: req.SkipValidation}, req.Concurrency, nil); err != nil {
			s.log.Error("server.batch_run_failed", "batch_id", batch.ID, "error", err)
		}
	}(r.Context())

	respondCreated(w, batch)
}

// GET /api/v1/batches/{batchID}
func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "batchID must be a UUID", nil)
		return
	}
	batch, err := s.batches.GetByID(r.Context(), id)
	if err != nil {
		respondForErr(w, err)
		return
	}
	respondJSON(w, batch)
}

// DELETE /api/v1/batches/{batchID}
func (s *Server) handleCancelBatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "batchID must be a UUID", nil)
		return
	}
	batch, err := s.runner.Cancel(r.Context(), id)
	if err != nil {
		respondForErr(w, err)
		return
	}
	respondAccepted(w, batch)
}

// GET /api/v1/batches/{batchID}/export
func (s *Server) handleExportBatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "batchID must be a UUID", nil)
		return
	}
	data, err := s.export.ExportBatchXLSX(r.Context(), id)
	if err != nil {
		respondForErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "batch-"+id.String()+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
