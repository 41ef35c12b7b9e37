package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
)

// LiveQueue is the single-slot streaming scheduler. Documents start strictly
// in submission order and at most one streaming extraction is in flight at any
// instant. All queue state lives behind one mutex; the extraction itself runs
// on its own goroutine with a per-stream cancel.
type LiveQueue struct {
	extractor Extractor
	ledger    JobLedger
	claims    *Claims
	onPartial func(documentID uuid.UUID, partial json.RawMessage)
	onSettled SettleFunc
	log       *slog.Logger

	mu      sync.Mutex
	queue   []uuid.UUID
	queued  map[uuid.UUID]struct{}
	current uuid.UUID
	cancel  context.CancelFunc
	stopped bool

	wg sync.WaitGroup
}

func NewLiveQueue(
	extractor Extractor,
	ledger JobLedger,
	claims *Claims,
	onPartial func(uuid.UUID, json.RawMessage),
	onSettled SettleFunc,
	logger *slog.Logger,
) *LiveQueue {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveQueue{
		extractor: extractor,
		ledger:    ledger,
		claims:    claims,
		onPartial: onPartial,
		onSettled: onSettled,
		log:       logger,
		queued:    make(map[uuid.UUID]struct{}),
	}
}

// Enqueue submits documents for live extraction. IDs already queued or
// currently processing are filtered out, so re-submission is a no-op. When the
// slot is free the first new ID starts immediately.
func (q *LiveQueue) Enqueue(ctx context.Context, documentIDs []uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopped = false
	for _, id := range documentIDs {
		if _, dup := q.queued[id]; dup || id == q.current {
			q.log.Debug("live_queue.duplicate_filtered", "document_id", id)
			continue
		}
		q.queued[id] = struct{}{}
		q.queue = append(q.queue, id)
	}
	if q.current == uuid.Nil {
		q.promoteLocked(ctx)
	}
}

// StopCurrent cancels the in-flight streaming extraction only. Its settlement
// advances the queue as usual.
func (q *LiveQueue) StopCurrent() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cancel != nil {
		q.log.Info("live_queue.stop_current", "document_id", q.current)
		q.cancel()
	}
}

// StopAll cancels the in-flight extraction and clears the queue without
// advancing. The next Enqueue re-arms the queue.
func (q *LiveQueue) StopAll() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopped = true
	q.queue = nil
	q.queued = make(map[uuid.UUID]struct{})
	if q.cancel != nil {
		q.log.Info("live_queue.stop_all", "document_id", q.current)
		q.cancel()
	}
}

// Current returns the document occupying the slot, or uuid.Nil.
func (q *LiveQueue) Current() uuid.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Wait blocks until the slot is free and the queue is empty. Test and
// shutdown helper.
func (q *LiveQueue) Wait() {
	q.wg.Wait()
}

// promoteLocked pops queue entries until one wins its claim and starts it.
// Caller holds q.mu; the slot must be free.
func (q *LiveQueue) promoteLocked(ctx context.Context) {
	for len(q.queue) > 0 {
		id := q.queue[0]
		q.queue = q.queue[1:]
		delete(q.queued, id)

		if !q.claims.Claim(id) {
			q.log.Warn("live_queue.claim_refused", "document_id", id)
			continue
		}

		runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		q.current = id
		q.cancel = cancel
		q.wg.Add(1)
		go q.run(runCtx, id)
		return
	}
}

// run drives one streaming extraction and then settles the slot. It is the
// only writer of job terminal states for live runs.
func (q *LiveQueue) run(ctx context.Context, documentID uuid.UUID) {
	defer q.wg.Done()

	// Cross-process backstop: the in-memory claim only covers this instance.
	// A pending or processing job recorded by anyone else refuses the run.
	if active, err := q.ledger.HasActive(ctx, documentID); err != nil {
		q.log.Warn("live_queue.active_check_failed", "document_id", documentID, "error", err)
	} else if active {
		q.log.Warn("live_queue.duplicate_job_refused", "document_id", documentID)
		q.settle(ctx, documentID, engine.Result{}, fmt.Errorf("document %s: %w", documentID, common.ErrDuplicateJob))
		return
	}

	job, err := q.ledger.Create(ctx, documentID, nil, common.UserIDFromContext(ctx))
	if err == nil {
		if serr := q.ledger.Start(ctx, job.ID); serr != nil {
			q.log.Warn("live_queue.job_start_failed", "job_id", job.ID, "error", serr)
		}
	} else {
		q.log.Error("live_queue.job_create_failed", "document_id", documentID, "error", err)
	}

	onPartial := q.onPartial
	if job != nil {
		jobID := job.ID
		chunks := 0
		// The engine delivers partials sequentially from the stream loop.
		// A stream has no denominator: percent climbs toward 90 with each
		// chunk and the terminal write settles it at 100.
		onPartial = func(id uuid.UUID, partial json.RawMessage) {
			chunks++
			percent := 10 * chunks
			if percent > 90 {
				percent = 90
			}
			if uerr := q.ledger.UpdateProgress(ctx, jobID, percent, partial); uerr != nil {
				q.log.Warn("live_queue.progress_update_failed", "job_id", jobID, "error", uerr)
			}
			if q.onPartial != nil {
				q.onPartial(id, partial)
			}
		}
	}

	res, extractErr := q.extractor.Extract(ctx, documentID, engine.Options{
		Streaming: true,
		OnPartial: onPartial,
	})

	if job != nil {
		// Job terminal state survives the cancelled context.
		finishCtx := context.WithoutCancel(ctx)
		switch common.Classify(extractErr) {
		case common.OutcomeCompleted:
			err = q.ledger.FinishSuccess(finishCtx, job.ID)
		case common.OutcomeCancelled:
			err = q.ledger.FinishCancelled(finishCtx, job.ID)
		default:
			err = q.ledger.FinishFailure(finishCtx, job.ID, extractErr.Error())
		}
		if err != nil {
			q.log.Warn("live_queue.job_finish_failed", "job_id", job.ID, "error", err)
		}
	}

	q.settle(ctx, documentID, res, extractErr)
}

// settle frees the slot and starts the next queued document. Advancing is
// mandatory on every outcome, including error and cancel, so one failing
// document never stalls the rest of the queue.
func (q *LiveQueue) settle(ctx context.Context, documentID uuid.UUID, res engine.Result, err error) {
	q.claims.Release(documentID)

	if q.onSettled != nil {
		q.onSettled(context.WithoutCancel(ctx), Settlement{DocumentID: documentID, Result: res, Err: err})
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.current = uuid.Nil
	q.cancel = nil
	if !q.stopped {
		q.promoteLocked(ctx)
	}
}
