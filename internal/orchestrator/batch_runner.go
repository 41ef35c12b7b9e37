package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/engine"
	"github.com/formlift/docextract/internal/entity"
	"github.com/formlift/docextract/internal/notifier"
	"github.com/formlift/docextract/internal/repository"
)

// DefaultBatchConcurrency bounds the fan-out when the caller does not choose.
const DefaultBatchConcurrency = 3

// ItemError pairs a document with the genuine error that settled it.
type ItemError struct {
	DocumentID uuid.UUID `json:"document_id"`
	Err        error     `json:"-"`
	Message    string    `json:"error"`
}

// BatchResult is the settlement report for one batch run. Cancelled items are
// deliberately absent from Failed: a stop request is not a failure.
type BatchResult struct {
	Completed []uuid.UUID `json:"completed"`
	Failed    []ItemError `json:"failed"`
	// Skipped holds documents refused because another extraction already held
	// their claim.
	Skipped []uuid.UUID `json:"skipped,omitempty"`
	// Cancelled holds documents whose extraction was stopped mid-flight.
	Cancelled []uuid.UUID `json:"cancelled,omitempty"`
}

// ProgressFunc fires after every settled item, in settlement order.
// settledErr is nil for a success and carries the item's error otherwise,
// including cancellation; callers classify with common.Classify.
type ProgressFunc func(settled, total int, documentID uuid.UUID, settledErr error)

// BatchRunner executes batches of non-streaming extractions with bounded
// concurrency and per-item isolation: one failing document never aborts the
// rest of its batch.
type BatchRunner struct {
	extractor   Extractor
	batches     repository.BatchRepository
	ledger      JobLedger
	claims      *Claims
	onSettled   SettleFunc
	notify      notifier.BatchNotifier
	concurrency int
	log         *slog.Logger

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

func NewBatchRunner(
	extractor Extractor,
	batches repository.BatchRepository,
	ledger JobLedger,
	claims *Claims,
	onSettled SettleFunc,
	notify notifier.BatchNotifier,
	concurrency int,
	logger *slog.Logger,
) *BatchRunner {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	if notify == nil {
		notify = notifier.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchRunner{
		extractor:   extractor,
		batches:     batches,
		ledger:      ledger,
		claims:      claims,
		onSettled:   onSettled,
		notify:      notify,
		concurrency: concurrency,
		log:         logger,
		cancels:     make(map[uuid.UUID]context.CancelFunc),
	}
}

// Submit creates the batch record and one pending job per document, then
// returns the handle. Run executes it; callers typically do so on a goroutine.
func (r *BatchRunner) Submit(ctx context.Context, documentTypeID uuid.UUID, documentIDs []uuid.UUID, webhookURL *string) (*entity.Batch, error) {
	if len(documentIDs) == 0 {
		return nil, fmt.Errorf("empty batch: %w", common.ErrInvalidInput)
	}
	batch, err := r.batches.Create(ctx, documentTypeID, len(documentIDs), webhookURL, common.UserIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	for _, id := range documentIDs {
		if _, err := r.ledger.Create(ctx, id, &batch.ID, batch.CreatedBy); err != nil {
			return nil, fmt.Errorf("create job for document %s: %w", id, err)
		}
	}
	r.log.Info("batch.submitted", "batch_id", batch.ID, "total", batch.Total)
	return batch, nil
}

// Run executes the batch. One shared cancellation scope covers the whole run:
// Cancel stops new items from starting and interrupts in-flight ones, which
// finish or abort per their own cancellation support. The run detaches from
// the caller's cancellation entirely; a batch submitted over HTTP keeps
// executing after the request returns. concurrency overrides the configured
// fan-out for this run only; 0 keeps the default.
func (r *BatchRunner) Run(ctx context.Context, batchID uuid.UUID, documentIDs []uuid.UUID, opts engine.Options, concurrency int, onProgress ProgressFunc) (BatchResult, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	r.mu.Lock()
	r.cancels[batchID] = cancel
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.cancels, batchID)
		r.mu.Unlock()
	}()

	if err := r.batches.MarkProcessing(runCtx, batchID); err != nil {
		return BatchResult{}, err
	}

	jobs := r.jobsByDocument(runCtx, batchID)

	opts.Streaming = false
	opts.OnPartial = nil

	var (
		resMu   sync.Mutex
		result  BatchResult
		settled int
	)
	total := len(documentIDs)

	record := func(documentID uuid.UUID, err error) {
		resMu.Lock()
		defer resMu.Unlock()
		settled++
		switch {
		case err == nil:
			result.Completed = append(result.Completed, documentID)
		case errors.Is(err, common.ErrDuplicateJob):
			result.Skipped = append(result.Skipped, documentID)
		case common.IsCancellation(err):
			result.Cancelled = append(result.Cancelled, documentID)
		default:
			result.Failed = append(result.Failed, ItemError{DocumentID: documentID, Err: err, Message: err.Error()})
		}
		if onProgress != nil {
			onProgress(settled, total, documentID, err)
		}
	}

	limit := r.concurrency
	if concurrency > 0 {
		limit = concurrency
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for _, documentID := range documentIDs {
		documentID := documentID
		g.Go(func() error {
			// Once the batch is cancelled no new item starts. Its job stays
			// pending and is removed by Cancel.
			if runCtx.Err() != nil {
				return nil
			}
			r.runItem(runCtx, batchID, documentID, jobs[documentID], opts, record)
			return nil
		})
	}
	_ = g.Wait()

	r.log.Info("batch.run_finished",
		"batch_id", batchID,
		"completed", len(result.Completed),
		"failed", len(result.Failed),
		"skipped", len(result.Skipped),
		"cancelled", len(result.Cancelled),
	)
	r.notifyFinished(runCtx, batchID)
	return result, nil
}

// notifyFinished delivers the batch's own webhook once the run has settled
// into a terminal state.
func (r *BatchRunner) notifyFinished(ctx context.Context, batchID uuid.UUID) {
	batch, err := r.batches.GetByID(ctx, batchID)
	if err != nil {
		r.log.Warn("batch.notify_load_failed", "batch_id", batchID, "error", err)
		return
	}
	switch constants.BatchStatus(batch.Status) {
	case constants.BatchStatusCompleted:
		r.notify.NotifyBatch(ctx, notifier.EventBatchCompleted, batch)
	case constants.BatchStatusCancelled:
		r.notify.NotifyBatch(ctx, notifier.EventBatchCancelled, batch)
	}
}

// jobsByDocument maps each batch document to its pre-created pending job.
func (r *BatchRunner) jobsByDocument(ctx context.Context, batchID uuid.UUID) map[uuid.UUID]uuid.UUID {
	out := make(map[uuid.UUID]uuid.UUID)
	jobs, err := r.ledger.ListByBatch(ctx, batchID)
	if err != nil {
		r.log.Error("batch.job_lookup_failed", "batch_id", batchID, "error", err)
		return out
	}
	for _, j := range jobs {
		out[j.DocumentID] = j.ID
	}
	return out
}

// runItem settles exactly one document: claim, job transitions, extraction,
// batch counters, reconciler hand-off.
func (r *BatchRunner) runItem(ctx context.Context, batchID, documentID, jobID uuid.UUID, opts engine.Options, record func(uuid.UUID, error)) {
	finishCtx := context.WithoutCancel(ctx)

	if !r.claims.Claim(documentID) {
		r.log.Warn("batch.duplicate_skipped", "batch_id", batchID, "document_id", documentID)
		err := fmt.Errorf("document %s: %w", documentID, common.ErrDuplicateJob)
		r.finishJob(finishCtx, jobID, err)
		r.recordItemCounters(finishCtx, batchID, true)
		record(documentID, err)
		return
	}
	defer r.claims.Release(documentID)

	if jobID != uuid.Nil {
		if err := r.ledger.Start(ctx, jobID); err != nil {
			r.log.Warn("batch.job_start_failed", "job_id", jobID, "error", err)
		}
	}

	res, err := r.extractor.Extract(ctx, documentID, opts)

	r.finishJob(finishCtx, jobID, err)
	// A stop is not a failure: cancelled items leave the counters alone. The
	// batch record is already CANCELLED and stays terminal without them.
	if !common.IsCancellation(err) {
		r.recordItemCounters(finishCtx, batchID, err != nil)
	}

	if r.onSettled != nil {
		r.onSettled(finishCtx, Settlement{DocumentID: documentID, Result: res, Err: err})
	}
	record(documentID, err)
}

func (r *BatchRunner) finishJob(ctx context.Context, jobID uuid.UUID, extractErr error) {
	if jobID == uuid.Nil {
		return
	}
	var err error
	switch common.Classify(extractErr) {
	case common.OutcomeCompleted:
		err = r.ledger.FinishSuccess(ctx, jobID)
	case common.OutcomeCancelled:
		err = r.ledger.FinishCancelled(ctx, jobID)
	default:
		err = r.ledger.FinishFailure(ctx, jobID, extractErr.Error())
	}
	if err != nil {
		r.log.Warn("batch.job_finish_failed", "job_id", jobID, "error", err)
	}
}

func (r *BatchRunner) recordItemCounters(ctx context.Context, batchID uuid.UUID, failed bool) {
	if _, err := r.batches.RecordItem(ctx, batchID, failed); err != nil {
		r.log.Error("batch.counter_update_failed", "batch_id", batchID, "failed_item", failed, "error", err)
	}
}

// Cancel stops the batch: the record flips to CANCELLED, in-flight items are
// interrupted, and unstarted pending jobs are deleted. The record flips first
// so the run observes a terminal batch when it settles.
func (r *BatchRunner) Cancel(ctx context.Context, batchID uuid.UUID) (*entity.Batch, error) {
	batch, err := r.batches.Cancel(ctx, batchID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	cancel, running := r.cancels[batchID]
	r.mu.Unlock()
	if running {
		cancel()
	}
	removed, err := r.ledger.DeletePendingForBatch(ctx, batchID)
	if err != nil {
		r.log.Warn("batch.pending_job_cleanup_failed", "batch_id", batchID, "error", err)
	}
	r.log.Info("batch.cancelled", "batch_id", batchID, "was_running", running, "pending_jobs_removed", removed)
	return batch, nil
}
