package reconciler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formlift/docextract/constants"
	"github.com/formlift/docextract/internal/cache"
	"github.com/formlift/docextract/internal/common"
	"github.com/formlift/docextract/internal/notifier"
	"github.com/formlift/docextract/internal/orchestrator"
	"github.com/formlift/docextract/internal/repository"
)

// DefaultPartialTTL bounds how long an abandoned mid-stream partial survives
// in the cache.
const DefaultPartialTTL = 30 * time.Minute

// VisibleFunc pushes data to whatever is displaying the focused document.
type VisibleFunc func(documentID uuid.UUID, data json.RawMessage)

// Reconciler merges extraction outcomes into the document's durable state and
// the transient per-document partial cache. It is the single writer of
// post-extraction document status.
type Reconciler struct {
	docs     repository.DocumentRepository
	docTypes repository.DocumentTypeRepository
	partials cache.PartialCache
	notify   notifier.Notifier
	log      *slog.Logger

	partialTTL time.Duration

	mu        sync.Mutex
	focused   uuid.UUID
	onVisible VisibleFunc
}

func New(
	docs repository.DocumentRepository,
	docTypes repository.DocumentTypeRepository,
	partials cache.PartialCache,
	notify notifier.Notifier,
	logger *slog.Logger,
) *Reconciler {
	if notify == nil {
		notify = notifier.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		docs:       docs,
		docTypes:   docTypes,
		partials:   partials,
		notify:     notify,
		log:        logger,
		partialTTL: DefaultPartialTTL,
	}
}

// SetVisibleFunc installs the focus display hook.
func (r *Reconciler) SetVisibleFunc(fn VisibleFunc) {
	r.mu.Lock()
	r.onVisible = fn
	r.mu.Unlock()
}

// SetFocus moves the viewer focus. When focus returns to a document that is
// still mid-stream, its most recent cached data is pushed immediately so the
// viewer does not wait for the next chunk.
func (r *Reconciler) SetFocus(ctx context.Context, documentID uuid.UUID) {
	r.mu.Lock()
	r.focused = documentID
	fn := r.onVisible
	r.mu.Unlock()

	if fn == nil || documentID == uuid.Nil {
		return
	}
	data, ok, err := r.partials.GetPartial(ctx, documentID)
	if err != nil {
		r.log.Warn("reconciler.focus_cache_read_failed", "document_id", documentID, "error", err)
		return
	}
	if ok {
		fn(documentID, data)
	}
}

// OnPartial records a mid-stream partial. The cache is updated for every
// document unconditionally; the visible state only follows the focused one.
func (r *Reconciler) OnPartial(documentID uuid.UUID, partial json.RawMessage) {
	ctx := context.Background()
	if err := r.partials.SetPartial(ctx, documentID, partial, r.partialTTL); err != nil {
		r.log.Warn("reconciler.partial_cache_write_failed", "document_id", documentID, "error", err)
	}

	r.mu.Lock()
	focused := r.focused == documentID
	fn := r.onVisible
	r.mu.Unlock()
	if focused && fn != nil {
		fn(documentID, partial)
	}
}

// GetPartial reads the latest cached partial for a document, nil when none.
func (r *Reconciler) GetPartial(ctx context.Context, documentID uuid.UUID) (json.RawMessage, error) {
	data, ok, err := r.partials.GetPartial(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return data, nil
}

// OnSettled merges a terminal extraction outcome into durable state. It is an
// orchestrator.SettleFunc.
//
// Success pins the schema in force at extraction time onto the document and
// clears the partial cache. A validation rejection was already persisted by
// the engine; only the cache is cleaned. A generic error or a cancellation
// puts a PROCESSING document back to pending for manual re-trigger and leaves
// any other state alone.
func (r *Reconciler) OnSettled(ctx context.Context, s orchestrator.Settlement) {
	switch common.Classify(s.Err) {
	case common.OutcomeCompleted:
		r.settleSuccess(ctx, s)
	case common.OutcomeRejected:
		r.clearPartial(ctx, s.DocumentID)
		r.log.Info("reconciler.settled_rejected", "document_id", s.DocumentID)
	case common.OutcomeCancelled:
		r.resetToPending(ctx, s.DocumentID)
		r.log.Info("reconciler.settled_cancelled", "document_id", s.DocumentID)
	default:
		r.resetToPending(ctx, s.DocumentID)
		r.log.Warn("reconciler.settled_failed", "document_id", s.DocumentID, "error", s.Err)
	}
}

func (r *Reconciler) settleSuccess(ctx context.Context, s orchestrator.Settlement) {
	doc, err := r.docs.GetByID(ctx, s.DocumentID)
	if err != nil {
		r.log.Error("reconciler.load_document_failed", "document_id", s.DocumentID, "error", err)
		return
	}
	docType, err := r.docTypes.GetByID(ctx, doc.DocumentTypeID)
	if err != nil {
		r.log.Error("reconciler.load_type_failed", "document_type_id", doc.DocumentTypeID, "error", err)
		return
	}

	// The status observed before the write gates downstream effects: applying
	// the same outcome twice must not double-fire the webhook.
	alreadyProcessed := doc.Status == string(constants.DocumentStatusProcessed) ||
		doc.Status == string(constants.DocumentStatusApproved)

	updated, err := r.docs.MarkProcessed(ctx, doc.ID, s.Result.Data, docType.Schema)
	if err != nil {
		r.log.Error("reconciler.persist_failed", "document_id", doc.ID, "error", err)
		return
	}
	r.clearPartial(ctx, doc.ID)

	if !alreadyProcessed {
		r.notify.Notify(ctx, notifier.EventProcessed, updated, docType)
	}
	r.log.Info("reconciler.settled_processed",
		"document_id", doc.ID,
		"model", s.Result.Model,
		"notified", !alreadyProcessed,
	)
}

// resetToPending undoes the transient PROCESSING mark after a failed or
// stopped run. A document in any other state is left untouched: a re-run
// that fails must not demote an earlier PROCESSED result.
func (r *Reconciler) resetToPending(ctx context.Context, documentID uuid.UUID) {
	doc, err := r.docs.GetByID(ctx, documentID)
	if err != nil {
		r.log.Warn("reconciler.reset_load_failed", "document_id", documentID, "error", err)
		return
	}
	if doc.Status != string(constants.DocumentStatusProcessing) {
		return
	}
	if err := r.docs.ResetToPending(ctx, documentID); err != nil {
		r.log.Warn("reconciler.reset_failed", "document_id", documentID, "error", err)
	}
}

func (r *Reconciler) clearPartial(ctx context.Context, documentID uuid.UUID) {
	if err := r.partials.DeletePartial(ctx, documentID); err != nil {
		r.log.Warn("reconciler.partial_cache_clear_failed", "document_id", documentID, "error", err)
	}
}
