// Package reconcile orchestrates one reconciliation batch: load the document
// index, run the pure matching policy, apply the resulting mutations, record
// the unmatched queue, and fire completion notifications.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
	"github.com/simdocs-io/report-reconciler/internal/notify"
)

// DocumentStore is the document persistence needed by reconciliation.
type DocumentStore interface {
	ListAwaiting(ctx context.Context) ([]*entity.Document, error)
	ListCompletedByKeys(ctx context.Context, keys []string) ([]*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	AssignReports(ctx context.Context, docID uuid.UUID, fills []match.SlotFill, complete bool) error
	FlagReview(ctx context.Context, docID uuid.UUID, reason string) error
	ClearReview(ctx context.Context, docID uuid.UUID) (*entity.Document, error)
}

// UnmatchedStore is the manual-resolution queue persistence.
type UnmatchedStore interface {
	Record(ctx context.Context, recs []*entity.UnmatchedReport) error
	List(ctx context.Context, onlyUnresolved bool) ([]*entity.UnmatchedReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UnmatchedReport, error)
	Resolve(ctx context.Context, id uuid.UUID, docID uuid.UUID) error
}

// Service wires the pure engine to its collaborators.
type Service struct {
	docs         DocumentStore
	unmatched    UnmatchedStore
	notifier     notify.CompletionNotifier
	applyTimeout time.Duration
	logger       *slog.Logger
}

// NewService creates a reconciliation service.
func NewService(docs DocumentStore, unmatched UnmatchedStore, notifier notify.CompletionNotifier, applyTimeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		docs:         docs,
		unmatched:    unmatched,
		notifier:     notifier,
		applyTimeout: applyTimeout,
		logger:       logger,
	}
}

// ReconcileBatch runs one batch end to end and returns the full result,
// including anomaly counts, for the manual-resolution UI. The computation is
// in-memory; only the index load and the mutation apply touch the database,
// both under a bounded-timeout context. Two concurrent batches naming
// overlapping documents are the caller's responsibility to serialize.
func (s *Service) ReconcileBatch(ctx context.Context, batch []entity.ReportFile) (*match.Result, error) {
	if len(batch) == 0 {
		return nil, common.NewAppError("EMPTY_BATCH", "batch contains no report files", common.ErrInvalidInput)
	}
	for _, f := range batch {
		if f.FileName == "" || f.FilePath == "" {
			return nil, common.NewAppError("MALFORMED_BATCH", "every report needs file_name and file_path", common.ErrInvalidInput)
		}
	}

	loadCtx, cancel := context.WithTimeout(ctx, s.applyTimeout)
	defer cancel()
	awaiting, err := s.docs.ListAwaiting(loadCtx)
	if err != nil {
		return nil, err
	}
	completed, err := s.docs.ListCompletedByKeys(loadCtx, match.CandidateKeys(batch))
	if err != nil {
		return nil, err
	}

	// Grouping consults the index: reports key to a document's exact base
	// name first, with counter stripping as the fallback.
	idx := match.BuildDocumentIndex(awaiting, completed)
	groups, keys := match.GroupReports(idx, batch)
	out := match.Reconcile(idx, groups, keys)
	s.logger.Info("batch reconciled",
		"total_reports", out.Result.Stats.TotalReports,
		"mapped", out.Result.Stats.MappedCount,
		"unmatched", out.Result.Stats.UnmatchedCount,
		"needs_review", out.Result.Stats.NeedsReviewCount,
		"completed", out.Result.Stats.CompletedCount,
	)

	res := s.apply(ctx, out)
	s.notifyCompleted(ctx, res)
	return res, nil
}

// notifyCompleted fires one trigger per newly completed document. Failures
// are logged and swallowed: a lost notification never reverts a durable
// status transition.
func (s *Service) notifyCompleted(ctx context.Context, res *match.Result) {
	for _, d := range res.Completed {
		ev := notify.CompletionEvent{
			DocumentID: d.ID,
			CustomerID: d.CustomerID,
			Filename:   d.Filename,
		}
		if err := s.notifier.NotifyCompleted(ctx, ev); err != nil {
			s.logger.Error("completion notification failed", "document_id", d.ID, "error", err)
		}
	}
}

// ListUnmatched returns the manual-resolution queue.
func (s *Service) ListUnmatched(ctx context.Context, onlyUnresolved bool) ([]*entity.UnmatchedReport, error) {
	return s.unmatched.List(ctx, onlyUnresolved)
}
