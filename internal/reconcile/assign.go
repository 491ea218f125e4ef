package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
	"github.com/simdocs-io/report-reconciler/internal/notify"
)

// AssignUnmatched manually attaches a queued report to a document, the staff
// follow-up for anything automatic matching declined. Slot may be empty, in
// which case the first empty slot wins, same as automatic assignment. The
// document invariants are identical: no overwrite of a filled slot, no writes
// to a completed document, completion requires both slots.
func (s *Service) AssignUnmatched(ctx context.Context, unmatchedID, docID uuid.UUID, slot constants.ReportSlot) (*entity.Document, bool, error) {
	rec, err := s.unmatched.GetByID(ctx, unmatchedID)
	if err != nil {
		return nil, false, err
	}
	if rec.Resolved {
		return nil, false, common.NewAppError("ALREADY_RESOLVED", "unmatched report already assigned", common.ErrConflict)
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, false, err
	}
	if doc.Status == constants.DocStatusCompleted {
		return nil, false, common.NewAppError("DOC_COMPLETED", "document already completed", common.ErrConflict)
	}

	if slot == "" {
		var ok bool
		if slot, ok = doc.EmptySlot(); !ok {
			return nil, false, common.NewAppError("SLOTS_FILLED", "document has no empty report slot", common.ErrConflict)
		}
	} else if p := doc.SlotPath(slot); p != nil && *p != "" && *p != rec.FilePath {
		return nil, false, common.NewAppError("SLOT_CONFLICT", "requested slot already holds a report", common.ErrConflict)
	}

	other := constants.SlotSimilarity
	if slot == constants.SlotSimilarity {
		other = constants.SlotAI
	}
	otherFilled := doc.SlotPath(other) != nil && *doc.SlotPath(other) != ""

	fill := match.SlotFill{Slot: slot, FileName: rec.Filename, FilePath: rec.FilePath}
	complete := otherFilled
	if err := s.docs.AssignReports(ctx, docID, []match.SlotFill{fill}, complete); err != nil {
		return nil, false, err
	}
	if err := s.unmatched.Resolve(ctx, unmatchedID, docID); err != nil {
		// The assignment is durable; the queue row just failed to flip. Safe
		// to retry, the slot write is idempotent.
		return nil, false, err
	}

	updated, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, false, err
	}
	if complete {
		ev := notify.CompletionEvent{
			DocumentID: updated.ID,
			CustomerID: updated.CustomerID,
			Filename:   updated.Filename,
		}
		if err := s.notifier.NotifyCompleted(ctx, ev); err != nil {
			s.logger.Error("completion notification failed", "document_id", updated.ID, "error", err)
		}
	}
	return updated, complete, nil
}

// ClearReview lifts a document's review flag so it re-enters automatic
// matching.
func (s *Service) ClearReview(ctx context.Context, docID uuid.UUID) (*entity.Document, error) {
	return s.docs.ClearReview(ctx, docID)
}
