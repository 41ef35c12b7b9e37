package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/cache"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/notifier"
	"github.com/formlift/docextract/internal/orchestrator"
)

type fakeDocs struct {
	mu     sync.Mutex
	docs   map[uuid.UUID]*entity.Document
	resets int
}

func (f *fakeDocs) Create(context.Context, uuid.UUID, string, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocs) ListByIDs(context.Context, []uuid.UUID) ([]*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[id].Status = "PROCESSING"
	return nil
}

func (f *fakeDocs) MarkProcessed(_ context.Context, id uuid.UUID, extracted, snapshot json.RawMessage) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[id]
	d.Status = "PROCESSED"
	d.ExtractedData = extracted
	d.SchemaSnapshot = snapshot
	d.RejectionReason = nil
	return d, nil
}

func (f *fakeDocs) MarkRejected(_ context.Context, id uuid.UUID, reason string) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[id]
	d.Status = "REJECTED"
	d.RejectionReason = &reason
	return d, nil
}

func (f *fakeDocs) ResetToPending(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[id].Status = "PENDING"
	f.resets++
	return nil
}

type fakeTypes struct {
	types map[uuid.UUID]*entity.DocumentType
}

func (f *fakeTypes) GetByID(_ context.Context, id uuid.UUID) (*entity.DocumentType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (f *fakeTypes) GetOrCreateByName(context.Context, string, string, json.RawMessage) (*entity.DocumentType, error) {
	return nil, errors.New("not implemented")
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notifier.Event
}

func (n *recordingNotifier) Notify(_ context.Context, event notifier.Event, _ *entity.Document, _ *entity.DocumentType) {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
}

type fixture struct {
	rec      *Reconciler
	docs     *fakeDocs
	partials *cache.MemoryCache
	events   *recordingNotifier
	docID    uuid.UUID
	schema   json.RawMessage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	schema := json.RawMessage(`{"type":"object","properties":{"vendor":{"type":"string"}}}`)
	docType := &entity.DocumentType{ID: uuid.New(), Name: "invoice", Schema: schema}
	doc := &entity.Document{ID: uuid.New(), DocumentTypeID: docType.ID, Status: "PROCESSING"}

	docs := &fakeDocs{docs: map[uuid.UUID]*entity.Document{doc.ID: doc}}
	partials := cache.NewMemoryCache()
	events := &recordingNotifier{}
	rec := New(docs, &fakeTypes{types: map[uuid.UUID]*entity.DocumentType{docType.ID: docType}}, partials, events, nil)
	return &fixture{rec: rec, docs: docs, partials: partials, events: events, docID: doc.ID, schema: schema}
}

func TestOnPartialCachesUnconditionallyShowsOnlyFocused(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()

	var shown []string
	f.rec.SetVisibleFunc(func(id uuid.UUID, data json.RawMessage) {
		shown = append(shown, id.String()+":"+string(data))
	})
	f.rec.SetFocus(context.Background(), f.docID)

	f.rec.OnPartial(f.docID, json.RawMessage(`{"vendor":"Ac"}`))
	f.rec.OnPartial(other, json.RawMessage(`{"vendor":"Zz"}`))

	// both cached
	got, err := f.rec.GetPartial(context.Background(), f.docID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor":"Ac"}`, string(got))
	got, err = f.rec.GetPartial(context.Background(), other)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor":"Zz"}`, string(got))

	// only the focused one became visible
	require.Len(t, shown, 1)
	assert.Contains(t, shown[0], f.docID.String())
}

func TestFocusReturnReplaysCachedPartial(t *testing.T) {
	f := newFixture(t)
	var shown []json.RawMessage
	f.rec.SetVisibleFunc(func(_ uuid.UUID, data json.RawMessage) {
		shown = append(shown, data)
	})

	f.rec.OnPartial(f.docID, json.RawMessage(`{"vendor":"Acme"}`))
	require.Empty(t, shown, "unfocused partial stays invisible")

	f.rec.SetFocus(context.Background(), f.docID)
	require.Len(t, shown, 1)
	assert.JSONEq(t, `{"vendor":"Acme"}`, string(shown[0]))
}

func TestSettleSuccessPinsSchemaAndNotifiesOnce(t *testing.T) {
	f := newFixture(t)
	f.rec.OnPartial(f.docID, json.RawMessage(`{"vendor":"Ac"}`))

	settlement := orchestrator.Settlement{
		DocumentID: f.docID,
		Result:     engine.Result{Data: json.RawMessage(`{"vendor":"Acme"}`), Model: "gpt-4o"},
	}
	f.rec.OnSettled(context.Background(), settlement)

	doc := f.docs.docs[f.docID]
	assert.Equal(t, "PROCESSED", doc.Status)
	assert.JSONEq(t, `{"vendor":"Acme"}`, string(doc.ExtractedData))
	assert.JSONEq(t, string(f.schema), string(doc.SchemaSnapshot), "schema pinned at extraction time")

	got, err := f.rec.GetPartial(context.Background(), f.docID)
	require.NoError(t, err)
	assert.Nil(t, got, "partial cache cleared on success")

	require.Equal(t, []notifier.Event{notifier.EventProcessed}, f.events.events)

	// replaying the same outcome must not double-fire the webhook
	f.rec.OnSettled(context.Background(), settlement)
	assert.Len(t, f.events.events, 1)
}

func TestSettleRejectionLeavesRejectionInPlace(t *testing.T) {
	f := newFixture(t)
	reason := "not an invoice"
	// the engine persisted the rejection before settling
	_, err := f.docs.MarkRejected(context.Background(), f.docID, reason)
	require.NoError(t, err)
	f.rec.OnPartial(f.docID, json.RawMessage(`{"vendor":"Ac"}`))

	f.rec.OnSettled(context.Background(), orchestrator.Settlement{
		DocumentID: f.docID,
		Err:        common.ErrValidationRejected,
	})

	doc := f.docs.docs[f.docID]
	assert.Equal(t, "REJECTED", doc.Status)
	require.NotNil(t, doc.RejectionReason)
	assert.Equal(t, reason, *doc.RejectionReason)
	assert.Empty(t, f.events.events)

	got, err := f.rec.GetPartial(context.Background(), f.docID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSettleFailureResetsForRetrigger(t *testing.T) {
	f := newFixture(t)
	f.rec.OnSettled(context.Background(), orchestrator.Settlement{
		DocumentID: f.docID,
		Err:        errors.New("provider melted down"),
	})

	assert.Equal(t, "PENDING", f.docs.docs[f.docID].Status)
	assert.Nil(t, f.docs.docs[f.docID].ExtractedData)
	assert.Empty(t, f.events.events)
}

func TestSettleFailureLeavesProcessedDocumentAlone(t *testing.T) {
	f := newFixture(t)
	f.docs.docs[f.docID].Status = "PROCESSED"

	f.rec.OnSettled(context.Background(), orchestrator.Settlement{
		DocumentID: f.docID,
		Err:        errors.New("provider melted down"),
	})

	// only a transient PROCESSING mark gets undone; a failed re-run must not
	// demote an earlier result
	assert.Equal(t, "PROCESSED", f.docs.docs[f.docID].Status)
	assert.Zero(t, f.docs.resets)
}

func TestSettleCancellationIsNotAFailure(t *testing.T) {
	f := newFixture(t)
	f.rec.OnSettled(context.Background(), orchestrator.Settlement{
		DocumentID: f.docID,
		Err:        context.Canceled,
	})

	assert.Equal(t, "PENDING", f.docs.docs[f.docID].Status)
	assert.Empty(t, f.events.events)
	assert.Equal(t, 1, f.docs.resets)
}

func TestGetPartialMissIsNil(t *testing.T) {
	f := newFixture(t)
	got, err := f.rec.GetPartial(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}
