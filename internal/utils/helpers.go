package utils

import (
	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/gen/ent"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

// ToDocument converts an Ent row into the transfer entity used by the
// reconciliation core.
func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                   e.ID,
		CustomerID:           e.CustomerID,
		Filename:             e.Filename,
		DocKey:               e.DocKey,
		Status:               constants.DocStatus(e.Status),
		SimilarityReportPath: e.SimilarityReportPath,
		AIReportPath:         e.AiReportPath,
		NeedsReview:          e.NeedsReview,
		ReviewReason:         e.ReviewReason,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

// ToDocuments converts a slice of Ent rows.
func ToDocuments(rows []*ent.Document) []*entity.Document {
	out := make([]*entity.Document, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToDocument(r))
	}
	return out
}

// ToUnmatchedReport converts an Ent row into the transfer entity.
func ToUnmatchedReport(e *ent.UnmatchedReport) *entity.UnmatchedReport {
	return &entity.UnmatchedReport{
		ID:         e.ID,
		Filename:   e.Filename,
		ReportKey:  e.ReportKey,
		FilePath:   e.FilePath,
		Reason:     e.Reason,
		Resolved:   e.Resolved,
		DocumentID: e.DocumentID,
		CreatedAt:  e.CreatedAt,
		ResolvedAt: e.ResolvedAt,
	}
}

// ToUnmatchedReports converts a slice of Ent rows.
func ToUnmatchedReports(rows []*ent.UnmatchedReport) []*entity.UnmatchedReport {
	out := make([]*entity.UnmatchedReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToUnmatchedReport(r))
	}
	return out
}

// ToCustomer converts an Ent row into the transfer entity.
func ToCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
