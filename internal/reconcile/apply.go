package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
)

// apply makes the engine's decisions durable. Each mutation is one document's
// whole outcome; a failed write demotes that document's fresh mappings to
// unmatched instead of reporting them as mapped, and the batch carries on.
func (s *Service) apply(ctx context.Context, out match.Outcome) *match.Result {
	res := out.Result

	applyCtx, cancel := context.WithTimeout(ctx, s.applyTimeout)
	defer cancel()

	for _, m := range out.Mutations {
		var err error
		if m.ReviewReason != "" {
			err = s.docs.FlagReview(applyCtx, m.Doc.ID, m.ReviewReason)
		} else {
			err = s.docs.AssignReports(applyCtx, m.Doc.ID, m.Fills, m.Complete)
		}
		if err == nil {
			continue
		}
		s.logger.Error("applying document mutation failed",
			"document_id", m.Doc.ID,
			"key", m.Key,
			"error", err,
		)
		res.Stats.ApplyFailures++
		if m.ReviewReason == "" {
			demoteMapped(&res, m.Doc.ID)
		}
	}

	if err := s.unmatched.Record(applyCtx, toUnmatchedRecords(res.Unmatched)); err != nil {
		// Queue rows are re-derivable from the returned result; surface the
		// failure in stats and keep the batch outcome intact.
		s.logger.Error("recording unmatched reports failed", "count", len(res.Unmatched), "error", err)
		res.Stats.ApplyFailures++
	}

	res.Stats.MappedCount = len(res.Mapped)
	res.Stats.UnmatchedCount = len(res.Unmatched)
	res.Stats.CompletedCount = len(res.Completed)
	return &res
}

// demoteMapped reroutes a document's freshly mapped reports to the unmatched
// queue after a failed write. Replayed mappings were durable before this
// batch and stay mapped.
func demoteMapped(res *match.Result, docID uuid.UUID) {
	kept := res.Mapped[:0]
	for _, m := range res.Mapped {
		if m.DocumentID != docID || m.AlreadyApplied {
			kept = append(kept, m)
			continue
		}
		res.Unmatched = append(res.Unmatched, match.UnmatchedEntry{
			Report: entity.ReportFile{FileName: m.FileName, FilePath: m.FilePath, Key: m.Key},
			Reason: match.ReasonApplyFailed,
		})
	}
	res.Mapped = kept

	completed := res.Completed[:0]
	for _, d := range res.Completed {
		if d.ID != docID {
			completed = append(completed, d)
		}
	}
	res.Completed = completed
}

func toUnmatchedRecords(entries []match.UnmatchedEntry) []*entity.UnmatchedReport {
	recs := make([]*entity.UnmatchedReport, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, &entity.UnmatchedReport{
			Filename:  e.Report.FileName,
			ReportKey: e.Report.Key,
			FilePath:  e.Report.FilePath,
			Reason:    e.Reason,
		})
	}
	return recs
}
