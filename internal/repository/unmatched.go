package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/gen/ent"
	entunmatched "github.com/simdocs-io/report-reconciler/gen/ent/unmatchedreport"
	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/utils"
)

type unmatchedRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

// NewUnmatchedRepository returns a Postgres-backed unmatched-report store.
func NewUnmatchedRepository(entc *ent.Client, logger *slog.Logger) *unmatchedRepo {
	return &unmatchedRepo{ent: entc, logger: logger}
}

// Record persists one queue row per report file. The unique index on
// file_path makes replays a no-op instead of duplicating queue rows.
func (r *unmatchedRepo) Record(ctx context.Context, recs []*entity.UnmatchedReport) error {
	if len(recs) == 0 {
		return nil
	}
	builders := make([]*ent.UnmatchedReportCreate, 0, len(recs))
	for _, rec := range recs {
		builders = append(builders, r.ent.UnmatchedReport.Create().
			SetFilename(rec.Filename).
			SetReportKey(rec.ReportKey).
			SetFilePath(rec.FilePath).
			SetReason(rec.Reason))
	}
	err := r.ent.UnmatchedReport.CreateBulk(builders...).
		OnConflictColumns(entunmatched.FieldFilePath).
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		r.logger.Error("failed to record unmatched reports", "count", len(recs), "error", err)
		return common.WrapError(err, "record unmatched reports")
	}
	return nil
}

// List returns queue rows, optionally narrowed to unresolved ones, newest
// first.
func (r *unmatchedRepo) List(ctx context.Context, onlyUnresolved bool) ([]*entity.UnmatchedReport, error) {
	q := r.ent.UnmatchedReport.Query()
	if onlyUnresolved {
		q = q.Where(entunmatched.Resolved(false))
	}
	rows, err := q.Order(ent.Desc(entunmatched.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list unmatched reports", "error", err)
		return nil, common.WrapError(err, "list unmatched reports")
	}
	return utils.ToUnmatchedReports(rows), nil
}

// GetByID returns one queue row.
func (r *unmatchedRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.UnmatchedReport, error) {
	row, err := r.ent.UnmatchedReport.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get unmatched report")
	}
	return utils.ToUnmatchedReport(row), nil
}

// Resolve marks a queue row as manually assigned to a document.
func (r *unmatchedRepo) Resolve(ctx context.Context, id uuid.UUID, docID uuid.UUID) error {
	_, err := r.ent.UnmatchedReport.UpdateOneID(id).
		SetResolved(true).
		SetDocumentID(docID).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resolve unmatched report", "unmatched_id", id, "error", err)
		return common.WrapError(err, "resolve unmatched report")
	}
	return nil
}
