package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// handleSubmitLive enqueues documents for live streaming extraction.
// POST /api/v1/extract/live
func (s *Server) handleSubmitLive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentIDs []string `json:"document_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
		return
	}
	if len(req.DocumentIDs) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "document_ids is required", nil)
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

	s.live.Enqueue(r.Context(), ids)
	respondAccepted(w, map[string]any{
		"enqueued":   len(ids),
		"processing": currentOrNil(s.live.Current()),
	})
}

// POST /api/v1/extract/live/stop
func (s *Server) handleStopCurrent(w http.ResponseWriter, r *http.Request) {
	s.live.StopCurrent()
	respondAccepted(w, map[string]any{"stopped": currentOrNil(s.live.Current())})
}

// POST /api/v1/extract/live/stop-all
func (s *Server) handleStopAll(w http.ResponseWriter, r *http.Request) {
	s.live.StopAll()
	respondAccepted(w, map[string]any{"stopped": "all"})
}

func currentOrNil(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id.String()
}
