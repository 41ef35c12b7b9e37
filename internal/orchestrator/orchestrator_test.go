package orchestrator

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/notifier"
)

// fakeExtractor records extraction order and lets tests fail or block
// individual documents.
type fakeExtractor struct {
	mu       sync.Mutex
	order    []uuid.UUID
	results  map[uuid.UUID]error
	gates    map[uuid.UUID]chan struct{}
	partials map[uuid.UUID][]json.RawMessage
	running  int
	maxSeen  int
	started  chan uuid.UUID
}

func newFakeExtractor() *fakeExtractor {
	return &fakeExtractor{
		results:  map[uuid.UUID]error{},
		gates:    map[uuid.UUID]chan struct{}{},
		partials: map[uuid.UUID][]json.RawMessage{},
	}
}

func (f *fakeExtractor) gate(id uuid.UUID) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[id] = ch
	return ch
}

func (f *fakeExtractor) extracted() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uuid.UUID, len(f.order))
	copy(out, f.order)
	return out
}

func (f *fakeExtractor) Extract(ctx context.Context, documentID uuid.UUID, opts engine.Options) (engine.Result, error) {
	f.mu.Lock()
	f.order = append(f.order, documentID)
	f.running++
	if f.running > f.maxSeen {
		f.maxSeen = f.running
	}
	gate := f.gates[documentID]
	err := f.results[documentID]
	partials := f.partials[documentID]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.running--
		f.mu.Unlock()
	}()

	if f.started != nil {
		f.started <- documentID
	}
	if opts.OnPartial != nil {
		for _, p := range partials {
			opts.OnPartial(documentID, p)
		}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return engine.Result{}, ctx.Err()
		}
	}
	if err != nil {
		return engine.Result{}, err
	}
	return engine.Result{Data: json.RawMessage(`{"ok":true}`), Model: "gpt-4o"}, nil
}

// fakeLedger is an in-memory JobLedger.
type fakeLedger struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*entity.ExtractJob
	progress []int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{jobs: map[uuid.UUID]*entity.ExtractJob{}}
}

func (f *fakeLedger) Create(_ context.Context, documentID uuid.UUID, batchID *uuid.UUID, createdBy string) (*entity.ExtractJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := &entity.ExtractJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		BatchID:    batchID,
		Status:     "PENDING",
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeLedger) HasActive(_ context.Context, documentID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.DocumentID == documentID && (j.Status == "PENDING" || j.Status == "PROCESSING") {
			return true, nil
		}
	}
	return false, nil
}

// jobLocked mirrors the real repository: updating a removed row is NotFound,
// never a crash.
func (f *fakeLedger) jobLocked(jobID uuid.UUID) (*entity.ExtractJob, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return j, nil
}

func (f *fakeLedger) Start(_ context.Context, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, err := f.jobLocked(jobID)
	if err != nil {
		return err
	}
	j.Status = "PROCESSING"
	return nil
}

func (f *fakeLedger) UpdateProgress(_ context.Context, jobID uuid.UUID, percent int, partial json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, err := f.jobLocked(jobID)
	if err != nil {
		return err
	}
	j.ProgressPercent = percent
	j.PartialData = partial
	f.progress = append(f.progress, percent)
	return nil
}

func (f *fakeLedger) FinishSuccess(_ context.Context, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, err := f.jobLocked(jobID)
	if err != nil {
		return err
	}
	j.Status = "COMPLETED"
	j.ProgressPercent = 100
	return nil
}

func (f *fakeLedger) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, err := f.jobLocked(jobID)
	if err != nil {
		return err
	}
	j.Status = "FAILED"
	j.ErrorMessage = &message
	return nil
}

func (f *fakeLedger) FinishCancelled(_ context.Context, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, err := f.jobLocked(jobID)
	if err != nil {
		return err
	}
	j.Status = "CANCELLED"
	return nil
}

func (f *fakeLedger) ListByBatch(_ context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ExtractJob
	for _, j := range f.jobs {
		if j.BatchID != nil && *j.BatchID == batchID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeLedger) DeletePendingForBatch(_ context.Context, batchID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, j := range f.jobs {
		if j.BatchID != nil && *j.BatchID == batchID && j.Status == "PENDING" {
			delete(f.jobs, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeLedger) jobFor(documentID uuid.UUID) *entity.ExtractJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.DocumentID == documentID {
			return j
		}
	}
	return nil
}

// fakeBatches mirrors the real repository's counter and flip semantics.
type fakeBatches struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*entity.Batch
}

func newFakeBatches() *fakeBatches {
	return &fakeBatches{batches: map[uuid.UUID]*entity.Batch{}}
}

func (f *fakeBatches) Create(_ context.Context, documentTypeID uuid.UUID, total int, webhookURL *string, createdBy string) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := &entity.Batch{
		ID:             uuid.New(),
		DocumentTypeID: documentTypeID,
		Total:          total,
		Status:         "PENDING",
		WebhookURL:     webhookURL,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}
	f.batches[b.ID] = b
	return b, nil
}

func (f *fakeBatches) GetByID(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBatches) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b := f.batches[id]; b != nil && b.Status == "PENDING" {
		b.Status = "PROCESSING"
	}
	return nil
}

func (f *fakeBatches) RecordItem(_ context.Context, id uuid.UUID, failed bool) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.batches[id]
	if failed {
		b.Failed++
	} else {
		b.Completed++
	}
	if b.Completed+b.Failed >= b.Total && b.Status != "CANCELLED" {
		b.Status = "COMPLETED"
		now := time.Now()
		b.CompletedAt = &now
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBatches) Cancel(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	b.Status = "CANCELLED"
	copied := *b
	return &copied, nil
}

// batchNotifyRecorder captures batch webhook deliveries.
type batchNotifyRecorder struct {
	mu     sync.Mutex
	events []notifier.Event
}

func (n *batchNotifyRecorder) NotifyBatch(_ context.Context, event notifier.Event, _ *entity.Batch) {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
}

func (n *batchNotifyRecorder) all() []notifier.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notifier.Event, len(n.events))
	copy(out, n.events)
	return out
}

// settleRecorder captures every settlement in order.
type settleRecorder struct {
	mu          sync.Mutex
	settlements []Settlement
}

func (s *settleRecorder) fn(_ context.Context, st Settlement) {
	s.mu.Lock()
	s.settlements = append(s.settlements, st)
	s.mu.Unlock()
}

func (s *settleRecorder) all() []Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Settlement, len(s.settlements))
	copy(out, s.settlements)
	return out
}
