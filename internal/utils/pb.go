package utils

import (
	"time"

	reconcilerpb "github.com/simdocs-io/report-reconciler/gen/proto/reconciler/v1"
	"github.com/simdocs-io/report-reconciler/internal/entity"
	"github.com/simdocs-io/report-reconciler/internal/match"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToPBDocument converts a transfer entity into its wire shape.
func ToPBDocument(d *entity.Document) *reconcilerpb.Document {
	return &reconcilerpb.Document{
		Id:                   d.ID.String(),
		CustomerId:           d.CustomerID.String(),
		Filename:             d.Filename,
		DocKey:               d.DocKey,
		Status:               string(d.Status),
		SimilarityReportPath: strOrEmpty(d.SimilarityReportPath),
		AiReportPath:         strOrEmpty(d.AIReportPath),
		NeedsReview:          d.NeedsReview,
		ReviewReason:         strOrEmpty(d.ReviewReason),
		CreatedAt:            d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBUnmatchedReport converts a queue row into its wire shape.
func ToPBUnmatchedReport(r *entity.UnmatchedReport) *reconcilerpb.UnmatchedReport {
	out := &reconcilerpb.UnmatchedReport{
		Id:        r.ID.String(),
		Filename:  r.Filename,
		ReportKey: r.ReportKey,
		FilePath:  r.FilePath,
		Reason:    r.Reason,
		Resolved:  r.Resolved,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.DocumentID != nil {
		out.DocumentId = r.DocumentID.String()
	}
	if r.ResolvedAt != nil {
		out.ResolvedAt = r.ResolvedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// ToPBResult converts a batch result into the RPC response.
func ToPBResult(res *match.Result) *reconcilerpb.ReconcileBatchResponse {
	out := &reconcilerpb.ReconcileBatchResponse{
		Stats: &reconcilerpb.BatchStats{
			TotalReports:     int32(res.Stats.TotalReports),
			MappedCount:      int32(res.Stats.MappedCount),
			UnmatchedCount:   int32(res.Stats.UnmatchedCount),
			NeedsReviewCount: int32(res.Stats.NeedsReviewCount),
			CompletedCount:   int32(res.Stats.CompletedCount),
			ApplyFailures:    int32(res.Stats.ApplyFailures),
		},
	}
	for _, m := range res.Mapped {
		out.Mapped = append(out.Mapped, &reconcilerpb.Mapping{
			DocumentId:     m.DocumentID.String(),
			Key:            m.Key,
			FileName:       m.FileName,
			FilePath:       m.FilePath,
			Slot:           string(m.Slot),
			AlreadyApplied: m.AlreadyApplied,
		})
	}
	for _, u := range res.Unmatched {
		out.Unmatched = append(out.Unmatched, &reconcilerpb.UnmatchedEntry{
			FileName: u.Report.FileName,
			FilePath: u.Report.FilePath,
			Key:      u.Report.Key,
			Reason:   u.Reason,
		})
	}
	for _, f := range res.NeedsReview {
		out.NeedsReview = append(out.NeedsReview, &reconcilerpb.ReviewFlag{
			DocumentId: f.DocumentID.String(),
			Key:        f.Key,
			Reason:     f.Reason,
		})
	}
	for _, d := range res.Completed {
		out.CompletedDocuments = append(out.CompletedDocuments, &reconcilerpb.CompletedDocument{
			DocumentId: d.ID.String(),
			CustomerId: d.CustomerID.String(),
			Filename:   d.Filename,
		})
	}
	return out
}
