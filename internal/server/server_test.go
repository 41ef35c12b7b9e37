package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/cache"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/export"
	"github.com/formlift/docextract/internal/orchestrator"
	"github.com/formlift/docextract/internal/reconciler"
)

type stubExtractor struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	errBy map[uuid.UUID]error
}

func (s *stubExtractor) Extract(_ context.Context, id uuid.UUID, _ engine.Options) (engine.Result, error) {
	s.mu.Lock()
	s.seen = append(s.seen, id)
	err := s.errBy[id]
	s.mu.Unlock()
	if err != nil {
		return engine.Result{}, err
	}
	return engine.Result{Data: json.RawMessage(`{"vendor":"Acme"}`), Model: "gpt-4o"}, nil
}

type stubLedger struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.ExtractJob
}

func newStubLedger() *stubLedger {
	return &stubLedger{jobs: map[uuid.UUID]*entity.ExtractJob{}}
}

func (s *stubLedger) Create(_ context.Context, documentID uuid.UUID, batchID *uuid.UUID, createdBy string) (*entity.ExtractJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &entity.ExtractJob{ID: uuid.New(), DocumentID: documentID, BatchID: batchID, Status: "PENDING", CreatedBy: createdBy}
	s.jobs[j.ID] = j
	return j, nil
}

func (s *stubLedger) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return j, nil
}

func (s *stubLedger) HasActive(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (s *stubLedger) Start(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id].Status = "PROCESSING"
	return nil
}

func (s *stubLedger) UpdateProgress(context.Context, uuid.UUID, int, json.RawMessage) error {
	return nil
}

func (s *stubLedger) FinishSuccess(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id].Status = "COMPLETED"
	return nil
}

func (s *stubLedger) FinishFailure(_ context.Context, id uuid.UUID, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id].Status = "FAILED"
	s.jobs[id].ErrorMessage = &msg
	return nil
}

func (s *stubLedger) FinishCancelled(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id].Status = "CANCELLED"
	return nil
}

func (s *stubLedger) ListByBatch(_ context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ExtractJob
	for _, j := range s.jobs {
		if j.BatchID != nil && *j.BatchID == batchID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *stubLedger) DeletePendingForBatch(_ context.Context, batchID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, j := range s.jobs {
		if j.BatchID != nil && *j.BatchID == batchID && j.Status == "PENDING" {
			delete(s.jobs, id)
			n++
		}
	}
	return n, nil
}

type stubBatches struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*entity.Batch
}

func newStubBatches() *stubBatches {
	return &stubBatches{batches: map[uuid.UUID]*entity.Batch{}}
}

func (s *stubBatches) Create(_ context.Context, typeID uuid.UUID, total int, webhookURL *string, createdBy string) (*entity.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &entity.Batch{ID: uuid.New(), DocumentTypeID: typeID, Total: total, Status: "PENDING", WebhookURL: webhookURL, CreatedBy: createdBy}
	s.batches[b.ID] = b
	return b, nil
}

func (s *stubBatches) GetByID(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *stubBatches) MarkProcessing(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b := s.batches[id]; b != nil && b.Status == "PENDING" {
		b.Status = "PROCESSING"
	}
	return nil
}

func (s *stubBatches) RecordItem(_ context.Context, id uuid.UUID, failed bool) (*entity.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.batches[id]
	if failed {
		b.Failed++
	} else {
		b.Completed++
	}
	if b.Completed+b.Failed >= b.Total && b.Status != "CANCELLED" {
		b.Status = "COMPLETED"
	}
	copied := *b
	return &copied, nil
}

func (s *stubBatches) Cancel(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	b.Status = "CANCELLED"
	copied := *b
	return &copied, nil
}

type stubDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func (s *stubDocs) Create(context.Context, uuid.UUID, string, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (s *stubDocs) ListByIDs(context.Context, []uuid.UUID) ([]*entity.Document, error) {
	return nil, nil
}

func (s *stubDocs) MarkProcessing(context.Context, uuid.UUID) error { return nil }

func (s *stubDocs) MarkProcessed(_ context.Context, id uuid.UUID, extracted, snapshot json.RawMessage) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.docs[id]
	d.Status = "PROCESSED"
	d.ExtractedData = extracted
	d.SchemaSnapshot = snapshot
	return d, nil
}

func (s *stubDocs) MarkRejected(_ context.Context, id uuid.UUID, reason string) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.docs[id]
	d.Status = "REJECTED"
	d.RejectionReason = &reason
	return d, nil
}

func (s *stubDocs) ResetToPending(context.Context, uuid.UUID) error { return nil }

type stubTypes struct {
	types map[uuid.UUID]*entity.DocumentType
}

func (s *stubTypes) GetByID(_ context.Context, id uuid.UUID) (*entity.DocumentType, error) {
	t, ok := s.types[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (s *stubTypes) GetOrCreateByName(context.Context, string, string, json.RawMessage) (*entity.DocumentType, error) {
	return nil, errors.New("not implemented")
}

type okChecker struct{ err error }

func (c okChecker) Ping(context.Context) error { return c.err }

type apiFixture struct {
	handler http.Handler
	ext     *stubExtractor
	batches *stubBatches
	rec     *reconciler.Reconciler
	live    *orchestrator.LiveQueue
	docType *entity.DocumentType
}

func newAPIFixture(t *testing.T, docs map[uuid.UUID]*entity.Document) *apiFixture {
	t.Helper()

	docType := &entity.DocumentType{ID: uuid.New(), Name: "invoice", Schema: json.RawMessage(`{"type":"object"}`)}
	docRepo := &stubDocs{docs: docs}
	typeRepo := &stubTypes{types: map[uuid.UUID]*entity.DocumentType{docType.ID: docType}}
	partials := cache.NewMemoryCache()
	rec := reconciler.New(docRepo, typeRepo, partials, nil, nil)

	ext := &stubExtractor{errBy: map[uuid.UUID]error{}}
	ledger := newStubLedger()
	batches := newStubBatches()
	claims := orchestrator.NewClaims()
	live := orchestrator.NewLiveQueue(ext, ledger, claims, rec.OnPartial, rec.OnSettled, nil)
	runner := orchestrator.NewBatchRunner(ext, batches, ledger, claims, rec.OnSettled, nil, 2, nil)

	srv := New(Config{
		Live:    live,
		Runner:  runner,
		Batches: batches,
		Jobs:    ledger,
		Docs:    docRepo,
		Rec:     rec,
		Export:  export.NewService(batches, ledger, docRepo, nil),
		DB:      okChecker{},
		Cache:   partials,
	})
	return &apiFixture{handler: srv.Router(), ext: ext, batches: batches, rec: rec, live: live, docType: docType}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthOK(t *testing.T) {
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})
	w := doJSON(t, f.handler, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSubmitLiveValidatesBody(t *testing.T) {
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})

	w := doJSON(t, f.handler, http.MethodPost, "/api/v1/extract/live", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, f.handler, http.MethodPost, "/api/v1/extract/live", map[string]any{"document_ids": []string{"not-a-uuid"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestSubmitLiveEnqueues(t *testing.T) {
	id := uuid.New()
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})

	w := doJSON(t, f.handler, http.MethodPost, "/api/v1/extract/live", map[string]any{"document_ids": []string{id.String()}})
	assert.Equal(t, http.StatusAccepted, w.Code)

	f.live.Wait()
	assert.Equal(t, []uuid.UUID{id}, f.ext.seen)
}

func TestBatchLifecycleOverHTTP(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})

	w := doJSON(t, f.handler, http.MethodPost, "/api/v1/batches", map[string]any{
		"document_type_id": f.docType.ID.String(),
		"document_ids":     []string{ids[0].String(), ids[1].String()},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data entity.Batch `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.Data.ID)
	assert.Equal(t, 2, created.Data.Total)

	// the batch runs on a background goroutine; poll until it settles
	require.Eventually(t, func() bool {
		b, err := f.batches.GetByID(context.Background(), created.Data.ID)
		return err == nil && b.Status == "COMPLETED"
	}, 2*time.Second, 10*time.Millisecond)

	w = doJSON(t, f.handler, http.MethodGet, "/api/v1/batches/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":2`)
}

func TestCreateBatchRejectsNegativeConcurrency(t *testing.T) {
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})

	w := doJSON(t, f.handler, http.MethodPost, "/api/v1/batches", map[string]any{
		"document_type_id": f.docType.ID.String(),
		"document_ids":     []string{uuid.NewString()},
		"concurrency":      -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "concurrency")
}

func TestGetBatchNotFound(t *testing.T) {
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})
	w := doJSON(t, f.handler, http.MethodGet, "/api/v1/batches/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCancelUnknownBatch(t *testing.T) {
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})
	w := doJSON(t, f.handler, http.MethodDelete, "/api/v1/batches/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPartial(t *testing.T) {
	id := uuid.New()
	f := newAPIFixture(t, map[uuid.UUID]*entity.Document{})

	w := doJSON(t, f.handler, http.MethodGet, fmt.Sprintf("/api/v1/documents/%s/partial", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"partial":null`)

	f.rec.OnPartial(id, json.RawMessage(`{"vendor":"Ac"}`))
	w = doJSON(t, f.handler, http.MethodGet, fmt.Sprintf("/api/v1/documents/%s/partial", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vendor":"Ac"`)
}
