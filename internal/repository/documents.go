package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/gen/ent"
	entdoc "github.com/simdocs-io/report-reconciler/gen/ent/document"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
	"github.com/simdocs-io/report-reconciler/internal/utils"
)

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

// NewDocumentRepository returns a Postgres-backed document store.
func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) *documentRepo {
	return &documentRepo{ent: entc, logger: logger}
}

// ListAwaiting returns every document eligible for automatic matching:
// status AWAITING and not flagged for review.
func (r *documentRepo) ListAwaiting(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.Status(string(constants.DocStatusAwaiting)),
			entdoc.NeedsReview(false),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list awaiting documents", "error", err)
		return nil, common.WrapError(err, "list awaiting documents")
	}
	return utils.ToDocuments(rows), nil
}

// ListCompletedByKeys returns completed documents whose identity key occurs
// in keys. The engine uses them only to recognize batch replays.
func (r *documentRepo) ListCompletedByKeys(ctx context.Context, keys []string) ([]*entity.Document, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.Status(string(constants.DocStatusCompleted)),
			entdoc.DocKeyIn(keys...),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list completed documents", "error", err)
		return nil, common.WrapError(err, "list completed documents")
	}
	return utils.ToDocuments(rows), nil
}

// GetByID returns one document.
func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get document")
	}
	return utils.ToDocument(row), nil
}

// AssignReports writes the slot fills and, when complete is set, the
// COMPLETED status, all in one transaction. The write is idempotent:
// re-assigning a path a slot already holds is a no-op, while writing a
// different path into a filled slot, or any slot of a completed document,
// fails with ErrConflict.
func (r *documentRepo) AssignReports(ctx context.Context, docID uuid.UUID, fills []match.SlotFill, complete bool) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(err, "begin assign tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := tx.Document.Query().
		Where(entdoc.ID(docID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return common.WrapError(err, "lock document")
	}

	upd := tx.Document.UpdateOneID(docID)
	dirty := false
	simPath, aiPath := row.SimilarityReportPath, row.AiReportPath

	for _, f := range fills {
		var current *string
		if f.Slot == constants.SlotAI {
			current = aiPath
		} else {
			current = simPath
		}
		if current != nil && *current != "" {
			if *current == f.FilePath {
				continue // replay, already durable
			}
			err = common.NewAppError("SLOT_CONFLICT",
				fmt.Sprintf("slot %s already holds a different report", f.Slot), common.ErrConflict)
			return err
		}
		if row.Status == string(constants.DocStatusCompleted) {
			err = common.NewAppError("DOC_COMPLETED",
				"cannot assign report to a completed document", common.ErrConflict)
			return err
		}
		p := f.FilePath
		if f.Slot == constants.SlotAI {
			upd = upd.SetAiReportPath(p)
			aiPath = &p
		} else {
			upd = upd.SetSimilarityReportPath(p)
			simPath = &p
		}
		dirty = true
	}

	if complete && row.Status != string(constants.DocStatusCompleted) {
		if simPath == nil || *simPath == "" || aiPath == nil || *aiPath == "" {
			err = common.NewAppError("INCOMPLETE_SLOTS",
				"completion requires both report slots", common.ErrConflict)
			return err
		}
		upd = upd.SetStatus(string(constants.DocStatusCompleted))
		dirty = true
	}

	if dirty {
		if _, err = upd.Save(ctx); err != nil {
			r.logger.Error("failed to assign reports", "document_id", docID, "error", err)
			return common.WrapError(err, "assign reports")
		}
	}
	if err = tx.Commit(); err != nil {
		return common.WrapError(err, "commit assign tx")
	}
	return nil
}

// FlagReview marks the document for manual review with a non-empty reason.
func (r *documentRepo) FlagReview(ctx context.Context, docID uuid.UUID, reason string) error {
	if reason == "" {
		return common.NewAppError("EMPTY_REASON", "review flag requires a reason", common.ErrInvalidInput)
	}
	_, err := r.ent.Document.UpdateOneID(docID).
		SetNeedsReview(true).
		SetReviewReason(reason).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to flag document for review", "document_id", docID, "error", err)
		return common.WrapError(err, "flag review")
	}
	return nil
}

// ClearReview removes the review flag so the document re-enters automatic
// matching.
func (r *documentRepo) ClearReview(ctx context.Context, docID uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.UpdateOneID(docID).
		SetNeedsReview(false).
		ClearReviewReason().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to clear review flag", "document_id", docID, "error", err)
		return nil, common.WrapError(err, "clear review")
	}
	return utils.ToDocument(row), nil
}
