package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleGetPartial reads the latest mid-stream partial for a document.
// GET /api/v1/documents/{documentID}/partial
func (s *Server) handleGetPartial(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "documentID must be a UUID", nil)
		return
	}
	partial, err := s.rec.GetPartial(r.Context(), id)
	if err != nil {
		respondForErr(w, err)
		return
	}
	if partial == nil {
		respondJSON(w, map[string]any{"document_id": id, "partial": nil})
		return
	}
	respondJSON(w, map[string]any{"document_id": id, "partial": json.RawMessage(partial)})
}
