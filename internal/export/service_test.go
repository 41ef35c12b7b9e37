package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/entity"
)

type fakeBatches struct {
	batch *entity.Batch
}

func (f *fakeBatches) Create(context.Context, uuid.UUID, int, *string, string) (*entity.Batch, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBatches) GetByID(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	if f.batch == nil || f.batch.ID != id {
		return nil, common.ErrNotFound
	}
	return f.batch, nil
}

func (f *fakeBatches) MarkProcessing(context.Context, uuid.UUID) error { return nil }

func (f *fakeBatches) RecordItem(context.Context, uuid.UUID, bool) (*entity.Batch, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBatches) Cancel(context.Context, uuid.UUID) (*entity.Batch, error) {
	return nil, errors.New("not implemented")
}

type fakeJobs struct {
	jobs []*entity.ExtractJob
}

func (f *fakeJobs) Create(context.Context, uuid.UUID, *uuid.UUID, string) (*entity.ExtractJob, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.ExtractJob, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobs) HasActive(context.Context, uuid.UUID) (bool, error) { return false, nil }

func (f *fakeJobs) Start(context.Context, uuid.UUID) error { return nil }

func (f *fakeJobs) UpdateProgress(context.Context, uuid.UUID, int, json.RawMessage) error {
	return nil
}

func (f *fakeJobs) FinishSuccess(context.Context, uuid.UUID) error { return nil }

func (f *fakeJobs) FinishFailure(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeJobs) FinishCancelled(context.Context, uuid.UUID) error { return nil }

func (f *fakeJobs) ListByBatch(context.Context, uuid.UUID) ([]*entity.ExtractJob, error) {
	return f.jobs, nil
}

func (f *fakeJobs) DeletePendingForBatch(context.Context, uuid.UUID) (int, error) { return 0, nil }

type fakeDocs struct {
	docs []*entity.Document
}

func (f *fakeDocs) Create(context.Context, uuid.UUID, string, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) ListByIDs(context.Context, []uuid.UUID) ([]*entity.Document, error) {
	return f.docs, nil
}

func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error { return nil }

func (f *fakeDocs) MarkProcessed(context.Context, uuid.UUID, json.RawMessage, json.RawMessage) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) MarkRejected(context.Context, uuid.UUID, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) ResetToPending(context.Context, uuid.UUID) error { return nil }

func TestExportBatchXLSX(t *testing.T) {
	batchID := uuid.New()
	docA := &entity.Document{ID: uuid.New(), Filename: "invoice-a.pdf", Status: "PROCESSED", ExtractedData: json.RawMessage(`{"vendor":"Acme"}`)}
	docB := &entity.Document{ID: uuid.New(), Filename: "invoice-b.pdf", Status: "PENDING"}
	errMsg := "inference: provider melted down"
	completed := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

	svc := NewService(
		&fakeBatches{batch: &entity.Batch{ID: batchID, Status: "COMPLETED", Total: 2}},
		&fakeJobs{jobs: []*entity.ExtractJob{
			{ID: uuid.New(), DocumentID: docA.ID, Status: "COMPLETED", CompletedAt: &completed},
			{ID: uuid.New(), DocumentID: docB.ID, Status: "FAILED", ErrorMessage: &errMsg},
		}},
		&fakeDocs{docs: []*entity.Document{docA, docB}},
		nil,
	)

	data, err := svc.ExportBatchXLSX(context.Background(), batchID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Document ID", rows[0][0])
	assert.Equal(t, docA.ID.String(), rows[1][0])
	assert.Equal(t, "invoice-a.pdf", rows[1][1])
	assert.Equal(t, "COMPLETED", rows[1][3])
	assert.Contains(t, rows[1][5], "Acme")
	assert.Equal(t, "2026-08-30 14:05:00", rows[1][6])

	assert.Equal(t, "FAILED", rows[2][3])
	assert.Equal(t, errMsg, rows[2][4])
}

func TestExportBatchXLSXUnknownBatch(t *testing.T) {
	svc := NewService(&fakeBatches{}, &fakeJobs{}, &fakeDocs{}, nil)
	_, err := svc.ExportBatchXLSX(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
