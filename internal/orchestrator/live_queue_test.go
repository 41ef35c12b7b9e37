package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlift/docextract/internal/common"
)

func TestLiveQueueProcessesInSubmissionOrder(t *testing.T) {
	ext := newFakeExtractor()
	rec := &settleRecorder{}
	q := NewLiveQueue(ext, newFakeLedger(), NewClaims(), nil, rec.fn, nil)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	q.Enqueue(context.Background(), []uuid.UUID{a, b, c})
	q.Wait()

	assert.Equal(t, []uuid.UUID{a, b, c}, ext.extracted())
	require.Len(t, rec.all(), 3)
	for _, s := range rec.all() {
		assert.NoError(t, s.Err)
	}
}

func TestLiveQueueResubmissionIsNoOp(t *testing.T) {
	ext := newFakeExtractor()
	a, b := uuid.New(), uuid.New()
	gate := ext.gate(a)
	ext.started = make(chan uuid.UUID, 4)

	q := NewLiveQueue(ext, newFakeLedger(), NewClaims(), nil, nil, nil)
	q.Enqueue(context.Background(), []uuid.UUID{a})
	<-ext.started // a occupies the slot

	// a is processing, b gets queued; neither duplicate takes effect
	q.Enqueue(context.Background(), []uuid.UUID{a, b, b})
	close(gate)
	q.Wait()

	assert.Equal(t, []uuid.UUID{a, b}, ext.extracted())
}

func TestLiveQueueAdvancesPastFailures(t *testing.T) {
	ext := newFakeExtractor()
	a, b := uuid.New(), uuid.New()
	boom := errors.New("inference blew up")
	ext.results[a] = boom

	rec := &settleRecorder{}
	ledger := newFakeLedger()
	q := NewLiveQueue(ext, ledger, NewClaims(), nil, rec.fn, nil)
	q.Enqueue(context.Background(), []uuid.UUID{a, b})
	q.Wait()

	// the failing document never stalls the queue
	assert.Equal(t, []uuid.UUID{a, b}, ext.extracted())

	settlements := rec.all()
	require.Len(t, settlements, 2)
	assert.ErrorIs(t, settlements[0].Err, boom)
	assert.NoError(t, settlements[1].Err)

	assert.Equal(t, "FAILED", ledger.jobFor(a).Status)
	assert.Equal(t, "COMPLETED", ledger.jobFor(b).Status)
}

func TestLiveQueueStopCurrentAdvances(t *testing.T) {
	ext := newFakeExtractor()
	a, b := uuid.New(), uuid.New()
	ext.gate(a) // a blocks until cancelled
	ext.started = make(chan uuid.UUID, 4)

	rec := &settleRecorder{}
	ledger := newFakeLedger()
	q := NewLiveQueue(ext, ledger, NewClaims(), nil, rec.fn, nil)
	q.Enqueue(context.Background(), []uuid.UUID{a, b})
	<-ext.started

	q.StopCurrent()
	<-ext.started // b was promoted after a settled
	q.Wait()

	assert.Equal(t, []uuid.UUID{a, b}, ext.extracted())

	settlements := rec.all()
	require.Len(t, settlements, 2)
	assert.Equal(t, a, settlements[0].DocumentID)
	assert.Equal(t, common.OutcomeCancelled, common.Classify(settlements[0].Err))
	assert.NoError(t, settlements[1].Err)

	// the stop is recorded as CANCELLED, not FAILED
	assert.Equal(t, "CANCELLED", ledger.jobFor(a).Status)
	assert.Equal(t, "COMPLETED", ledger.jobFor(b).Status)
}

func TestLiveQueuePersistsStreamProgress(t *testing.T) {
	ext := newFakeExtractor()
	doc := uuid.New()
	p1 := json.RawMessage(`{"vendor":"ac"}`)
	p2 := json.RawMessage(`{"vendor":"acme"}`)
	ext.partials[doc] = []json.RawMessage{p1, p2}

	var forwarded []json.RawMessage
	ledger := newFakeLedger()
	q := NewLiveQueue(ext, ledger, NewClaims(), func(_ uuid.UUID, partial json.RawMessage) {
		forwarded = append(forwarded, partial)
	}, nil, nil)
	q.Enqueue(context.Background(), []uuid.UUID{doc})
	q.Wait()

	// every chunk lands on the job and still reaches the downstream hook
	assert.Equal(t, []int{10, 20}, ledger.progress)
	job := ledger.jobFor(doc)
	assert.Equal(t, "COMPLETED", job.Status)
	assert.Equal(t, 100, job.ProgressPercent)
	assert.Equal(t, []json.RawMessage{p1, p2}, forwarded)
}

func TestLiveQueueRefusesActiveJobElsewhere(t *testing.T) {
	ext := newFakeExtractor()
	doc := uuid.New()
	ledger := newFakeLedger()
	// some other instance already has a job in flight for this document
	_, err := ledger.Create(context.Background(), doc, nil, "other")
	require.NoError(t, err)

	rec := &settleRecorder{}
	q := NewLiveQueue(ext, ledger, NewClaims(), nil, rec.fn, nil)
	q.Enqueue(context.Background(), []uuid.UUID{doc})
	q.Wait()

	assert.Empty(t, ext.extracted())
	settlements := rec.all()
	require.Len(t, settlements, 1)
	assert.ErrorIs(t, settlements[0].Err, common.ErrDuplicateJob)
}

func TestLiveQueueStopAllClearsQueue(t *testing.T) {
	ext := newFakeExtractor()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ext.gate(a)
	ext.started = make(chan uuid.UUID, 4)

	rec := &settleRecorder{}
	q := NewLiveQueue(ext, newFakeLedger(), NewClaims(), nil, rec.fn, nil)
	q.Enqueue(context.Background(), []uuid.UUID{a, b, c})
	<-ext.started

	q.StopAll()
	q.Wait()

	// only a ever started; b and c were dropped without running
	assert.Equal(t, []uuid.UUID{a}, ext.extracted())
	settlements := rec.all()
	require.Len(t, settlements, 1)
	assert.Equal(t, common.OutcomeCancelled, common.Classify(settlements[0].Err))

	// the queue accepts work again afterwards
	d := uuid.New()
	q.Enqueue(context.Background(), []uuid.UUID{d})
	q.Wait()
	assert.Equal(t, []uuid.UUID{a, d}, ext.extracted())
}

func TestLiveQueueRefusesClaimedDocument(t *testing.T) {
	ext := newFakeExtractor()
	claims := NewClaims()
	a, b := uuid.New(), uuid.New()
	require.True(t, claims.Claim(a)) // held by a batch elsewhere

	q := NewLiveQueue(ext, newFakeLedger(), claims, nil, nil, nil)
	q.Enqueue(context.Background(), []uuid.UUID{a, b})
	q.Wait()

	assert.Equal(t, []uuid.UUID{b}, ext.extracted())
	assert.True(t, claims.Held(a), "foreign claim must survive")
	assert.False(t, claims.Held(b))
}

func TestLiveQueueReleasesSlotPromptly(t *testing.T) {
	ext := newFakeExtractor()
	q := NewLiveQueue(ext, newFakeLedger(), NewClaims(), nil, nil, nil)

	a := uuid.New()
	q.Enqueue(context.Background(), []uuid.UUID{a})
	q.Wait()

	require.Eventually(t, func() bool {
		return q.Current() == uuid.Nil
	}, time.Second, 5*time.Millisecond)
}
