package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/gateway"
	"github.com/formlift/docextract/internal/storage"
	"github.com/formlift/docextract/internal/validator"
)

type fakeDocs struct {
	docs     map[uuid.UUID]*entity.Document
	rejected map[uuid.UUID]string
}

func newFakeDocs(docs ...*entity.Document) *fakeDocs {
	f := &fakeDocs{docs: map[uuid.UUID]*entity.Document{}, rejected: map[uuid.UUID]string{}}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return f
}

func (f *fakeDocs) Create(context.Context, uuid.UUID, string, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocs) ListByIDs(context.Context, []uuid.UUID) ([]*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error { return nil }

func (f *fakeDocs) MarkProcessed(_ context.Context, id uuid.UUID, extracted, snapshot json.RawMessage) (*entity.Document, error) {
	d := f.docs[id]
	d.Status = "PROCESSED"
	d.ExtractedData = extracted
	d.SchemaSnapshot = snapshot
	return d, nil
}

func (f *fakeDocs) MarkRejected(_ context.Context, id uuid.UUID, reason string) (*entity.Document, error) {
	f.rejected[id] = reason
	d := f.docs[id]
	d.Status = "REJECTED"
	d.RejectionReason = &reason
	return d, nil
}

func (f *fakeDocs) ResetToPending(context.Context, uuid.UUID) error { return nil }

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

type fakeGate struct {
	verdict validator.Verdict
	err     error
	calls   int
}

func (f *fakeGate) Validate(context.Context, string, []byte, string, string) (validator.Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

type fakeGateway struct {
	completeText string
	completeErr  error
	lastReq      gateway.Request
	chunks       []gateway.StreamChunk
}

func (f *fakeGateway) Complete(_ context.Context, req gateway.Request) (string, error) {
	f.lastReq = req
	return f.completeText, f.completeErr
}

func (f *fakeGateway) Stream(ctx context.Context, req gateway.Request) (<-chan gateway.StreamChunk, error) {
	f.lastReq = req
	out := make(chan gateway.StreamChunk, len(f.chunks))
	go func() {
		defer close(out)
		for _, c := range f.chunks {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

const invoiceSchema = `{
	"type": "object",
	"properties": {
		"vendor": {"type": "string"},
		"total": {"type": "number"}
	},
	"required": ["vendor", "total"]
}`

func fixture(t *testing.T) (*Engine, *fakeDocs, *fakeGate, *fakeGateway, uuid.UUID) {
	t.Helper()

	store := storage.NewMemoryStore()
	ref, err := store.Upload(context.Background(), []byte("%PDF-1.4 fake"), "application/pdf")
	require.NoError(t, err)

	docType := &entity.DocumentType{
		ID:        uuid.New(),
		Name:      "invoice",
		ModelName: "gpt-4o",
		Schema:    json.RawMessage(invoiceSchema),
	}
	doc := &entity.Document{
		ID:             uuid.New(),
		DocumentTypeID: docType.ID,
		Filename:       "invoice.pdf",
		StorageRef:     ref,
		Status:         "PENDING",
	}

	docs := newFakeDocs(doc)
	gate := &fakeGate{verdict: validator.Verdict{IsValid: true}}
	gw := &fakeGateway{completeText: `{"vendor":"Acme","total":12.5}`}
	eng := New(docs, &fakeTypes{types: map[uuid.UUID]*entity.DocumentType{docType.ID: docType}}, store, gate, gw, nil)
	return eng, docs, gate, gw, doc.ID
}

func TestExtractHappyPath(t *testing.T) {
	eng, _, gate, gw, docID := fixture(t)

	res, err := eng.Extract(context.Background(), docID, Options{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"vendor":"Acme","total":12.5}`, string(res.Data))
	assert.Equal(t, "gpt-4o", res.Model)
	assert.Equal(t, 1, gate.calls)
	require.NotNil(t, res.Validation)
	assert.True(t, res.Validation.IsValid)
	assert.Equal(t, "application/pdf", gw.lastReq.Parts[1].MIME)
}

func TestExtractUnknownDocumentIsNotFound(t *testing.T) {
	eng, _, _, _, _ := fixture(t)

	_, err := eng.Extract(context.Background(), uuid.New(), Options{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestExtractSkipValidation(t *testing.T) {
	eng, _, gate, _, docID := fixture(t)

	res, err := eng.Extract(context.Background(), docID, Options{SkipValidation: true})
	require.NoError(t, err)
	assert.Zero(t, gate.calls)
	assert.Nil(t, res.Validation)
}

func TestExtractValidationRejectionPersistsAndClassifies(t *testing.T) {
	eng, docs, gate, _, docID := fixture(t)
	gate.verdict = validator.Verdict{IsValid: false, Reason: "this is a menu, not an invoice"}

	res, err := eng.Extract(context.Background(), docID, Options{})
	assert.ErrorIs(t, err, common.ErrValidationRejected)
	assert.Equal(t, "this is a menu, not an invoice", docs.rejected[docID])
	require.NotNil(t, res.Validation)
	assert.False(t, res.Validation.IsValid)
	assert.Equal(t, common.OutcomeRejected, common.Classify(err))
}

func TestExtractOverrideRequiresElevation(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)

	res, err := eng.Extract(context.Background(), docID, Options{OverrideModel: "gpt-5"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", res.Model)
	assert.Equal(t, "gpt-4o", gw.lastReq.Model)

	elevated := common.WithElevated(context.Background(), true)
	res, err = eng.Extract(elevated, docID, Options{OverrideModel: "gpt-5"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", res.Model)
	assert.Equal(t, "gpt-5", gw.lastReq.Model)
}

func TestExtractLoosensRequiredForOmittedFields(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	gw.completeText = `{"vendor":"Acme"}` // total omitted per prompt contract

	res, err := eng.Extract(context.Background(), docID, Options{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor":"Acme"}`, string(res.Data))
}

func TestExtractGarbageOutputIsInvalidModelOutput(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	gw.completeText = "I could not read the document, sorry."

	_, err := eng.Extract(context.Background(), docID, Options{})
	assert.ErrorIs(t, err, common.ErrInvalidModelOutput)
	assert.False(t, common.IsRetryable(err))
}

func TestExtractWrongShapeIsInvalidModelOutput(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	gw.completeText = `{"vendor":123}`

	_, err := eng.Extract(context.Background(), docID, Options{})
	assert.ErrorIs(t, err, common.ErrInvalidModelOutput)
}

func TestExtractStreamingForwardsGrowingPartials(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	gw.chunks = []gateway.StreamChunk{
		{Text: `{"vendor":"Ac`},
		{Text: `{"vendor":"Acme","tot`},
		{Text: `{"vendor":"Acme","total":12.5}`},
		{Text: `{"vendor":"Acme","total":12.5}`, Done: true},
	}

	var partials []string
	res, err := eng.Extract(context.Background(), docID, Options{
		Streaming: true,
		OnPartial: func(id uuid.UUID, partial json.RawMessage) {
			assert.Equal(t, docID, id)
			partials = append(partials, string(partial))
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor":"Acme","total":12.5}`, string(res.Data))

	require.NotEmpty(t, partials)
	for _, p := range partials {
		assert.True(t, json.Valid([]byte(p)), "partial %q must be valid JSON", p)
	}
	assert.JSONEq(t, `{"vendor":"Acme","total":12.5}`, partials[len(partials)-1])
}

func TestExtractStreamErrChunkPropagates(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	gw.chunks = []gateway.StreamChunk{
		{Text: `{"ven`},
		{Err: common.ErrRateLimited},
	}

	_, err := eng.Extract(context.Background(), docID, Options{Streaming: true})
	assert.ErrorIs(t, err, common.ErrRateLimited)
	assert.True(t, common.IsRetryable(err))
}

func TestExtractStreamClosedByCancellation(t *testing.T) {
	eng, _, _, gw, docID := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gw.chunks = nil // producer sees the dead context and closes immediately

	_, err := eng.Extract(ctx, docID, Options{Streaming: true})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, common.OutcomeCancelled, common.Classify(err))
}
