package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/notifier"
)

type batchFixture struct {
	ext     *fakeExtractor
	batches *fakeBatches
	ledger  *fakeLedger
	claims  *Claims
	rec     *settleRecorder
	hooks   *batchNotifyRecorder
	runner  *BatchRunner
}

func newBatchFixture(t *testing.T, concurrency int) *batchFixture {
	t.Helper()
	f := &batchFixture{
		ext:     newFakeExtractor(),
		batches: newFakeBatches(),
		ledger:  newFakeLedger(),
		claims:  NewClaims(),
		rec:     &settleRecorder{},
		hooks:   &batchNotifyRecorder{},
	}
	f.runner = NewBatchRunner(f.ext, f.batches, f.ledger, f.claims, f.rec.fn, f.hooks, concurrency, nil)
	return f
}

func (f *batchFixture) submit(t *testing.T, n int) (*entity.Batch, []uuid.UUID) {
	t.Helper()
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	batch, err := f.runner.Submit(context.Background(), uuid.New(), ids, nil)
	require.NoError(t, err)
	return batch, ids
}

func TestBatchRunnerCompletesAll(t *testing.T) {
	f := newBatchFixture(t, 2)
	batch, ids := f.submit(t, 4)

	result, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, ids, result.Completed)
	assert.Empty(t, result.Failed)

	got, err := f.batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", got.Status)
	assert.Equal(t, 4, got.Completed)
	assert.Zero(t, got.Failed)
	require.NotNil(t, got.CompletedAt)

	for _, id := range ids {
		assert.Equal(t, "COMPLETED", f.ledger.jobFor(id).Status)
	}
	assert.Len(t, f.rec.all(), 4)
}

func TestBatchRunnerEmptySubmitRejected(t *testing.T) {
	f := newBatchFixture(t, 2)
	_, err := f.runner.Submit(context.Background(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestBatchRunnerIsolatesFailures(t *testing.T) {
	f := newBatchFixture(t, 2)
	batch, ids := f.submit(t, 3)
	boom := errors.New("model output is garbage")
	f.ext.results[ids[1]] = boom

	result, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uuid.UUID{ids[0], ids[2]}, result.Completed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, ids[1], result.Failed[0].DocumentID)
	assert.ErrorIs(t, result.Failed[0].Err, boom)

	// one failure never aborts the batch and still settles it
	got, _ := f.batches.GetByID(context.Background(), batch.ID)
	assert.Equal(t, "COMPLETED", got.Status)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, "FAILED", f.ledger.jobFor(ids[1]).Status)
}

func TestBatchRunnerRespectsConcurrencyLimit(t *testing.T) {
	f := newBatchFixture(t, 2)
	batch, ids := f.submit(t, 6)

	_, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, f.ext.maxSeen, 2)
}

func TestBatchRunnerProgressFiresInSettlementOrder(t *testing.T) {
	f := newBatchFixture(t, 3)
	batch, ids := f.submit(t, 5)

	var mu sync.Mutex
	var counts []int
	_, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0,
		func(settled, total int, _ uuid.UUID, _ error) {
			mu.Lock()
			counts = append(counts, settled)
			mu.Unlock()
			assert.Equal(t, 5, total)
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, counts)
}

func TestBatchRunnerSkipsClaimedDocuments(t *testing.T) {
	f := newBatchFixture(t, 2)
	batch, ids := f.submit(t, 3)
	require.True(t, f.claims.Claim(ids[0])) // live extraction owns it

	result, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{ids[0]}, result.Skipped)
	assert.ElementsMatch(t, []uuid.UUID{ids[1], ids[2]}, result.Completed)
	assert.Empty(t, result.Failed, "a skipped duplicate is not a user-facing failure")
	assert.NotContains(t, f.ext.extracted(), ids[0])

	// the skip still settles the batch counters
	got, _ := f.batches.GetByID(context.Background(), batch.ID)
	assert.Equal(t, "COMPLETED", got.Status)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 1, got.Failed)
	assert.True(t, f.claims.Held(ids[0]), "foreign claim must survive the skip")
}

func TestBatchRunnerCancelStopsNewWorkAndFiltersCancellation(t *testing.T) {
	f := newBatchFixture(t, 1)
	batch, ids := f.submit(t, 4)
	f.ext.started = make(chan uuid.UUID, 4)
	for _, id := range ids {
		f.ext.gate(id) // every item blocks until cancelled
	}

	done := make(chan BatchResult, 1)
	go func() {
		result, _ := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
		done <- result
	}()

	first := <-f.ext.started
	cancelled, err := f.runner.Cancel(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)

	var result BatchResult
	select {
	case result = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not settle after cancel")
	}

	// the in-flight item is cancelled, not failed; the rest never started
	assert.Equal(t, []uuid.UUID{first}, result.Cancelled)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Completed)
	assert.Len(t, f.ext.extracted(), 1)

	// unstarted pending jobs were removed, settled ones kept as history with
	// the stop recorded as CANCELLED, not FAILED
	jobs, err := f.ledger.ListByBatch(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, first, jobs[0].DocumentID)
	assert.Equal(t, "CANCELLED", jobs[0].Status)

	// a cancelled batch never flips to COMPLETED afterwards, and the stopped
	// item leaves the failed counter alone
	got, _ := f.batches.GetByID(context.Background(), batch.ID)
	assert.Equal(t, "CANCELLED", got.Status)
	assert.Zero(t, got.Failed)
	assert.Equal(t, []notifier.Event{notifier.EventBatchCancelled}, f.hooks.all())
}

// ctxCheckedBatches refuses work on a dead context, as the pgx-backed
// repository does.
type ctxCheckedBatches struct{ *fakeBatches }

func (c ctxCheckedBatches) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakeBatches.MarkProcessing(ctx, id)
}

type ctxCheckedLedger struct{ *fakeLedger }

func (c ctxCheckedLedger) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*entity.ExtractJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.fakeLedger.ListByBatch(ctx, batchID)
}

func TestBatchRunnerOutlivesSubmittingContext(t *testing.T) {
	ext := newFakeExtractor()
	batches := newFakeBatches()
	ledger := newFakeLedger()
	runner := NewBatchRunner(ext, ctxCheckedBatches{batches}, ctxCheckedLedger{ledger}, NewClaims(), nil, nil, 2, nil)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	batch, err := runner.Submit(context.Background(), uuid.New(), ids, nil)
	require.NoError(t, err)

	// the request that submitted the batch is gone before the run starts
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, result.Completed)

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", got.Status)
	for _, id := range ids {
		assert.Equal(t, "COMPLETED", ledger.jobFor(id).Status)
	}
}

func TestBatchRunnerPerRunConcurrencyOverride(t *testing.T) {
	f := newBatchFixture(t, 4)
	batch, ids := f.submit(t, 4)
	f.ext.started = make(chan uuid.UUID, 4)
	gates := make([]chan struct{}, 0, len(ids))
	for _, id := range ids {
		gates = append(gates, f.ext.gate(id))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 2, nil)
		assert.NoError(t, err)
	}()

	<-f.ext.started
	<-f.ext.started
	select {
	case id := <-f.ext.started:
		t.Fatalf("item %s started beyond the per-run limit", id)
	case <-time.After(150 * time.Millisecond):
	}

	for _, gate := range gates {
		close(gate)
	}
	<-done
	assert.LessOrEqual(t, f.ext.maxSeen, 2)
}

func TestBatchRunnerDeliversCompletionWebhook(t *testing.T) {
	f := newBatchFixture(t, 2)
	url := "https://example.com/hooks/batches"
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	batch, err := f.runner.Submit(context.Background(), uuid.New(), ids, &url)
	require.NoError(t, err)

	_, err = f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []notifier.Event{notifier.EventBatchCompleted}, f.hooks.all())
}

func TestBatchRunnerReleasesClaims(t *testing.T) {
	f := newBatchFixture(t, 2)
	batch, ids := f.submit(t, 3)

	_, err := f.runner.Run(context.Background(), batch.ID, ids, engine.Options{}, 0, nil)
	require.NoError(t, err)
	for _, id := range ids {
		assert.False(t, f.claims.Held(id))
	}
}
