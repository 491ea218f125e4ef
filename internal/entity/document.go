package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/constants"
)

// Document represents a customer submission for data transfer between layers.
type Document struct {
	ID                   uuid.UUID           `json:"id"`
	CustomerID           uuid.UUID           `json:"customer_id"`
	Filename             string              `json:"filename"`
	DocKey               string              `json:"doc_key"`
	Status               constants.DocStatus `json:"status"`
	SimilarityReportPath *string             `json:"similarity_report_path,omitempty"`
	AIReportPath         *string             `json:"ai_report_path,omitempty"`
	NeedsReview          bool                `json:"needs_review"`
	ReviewReason         *string             `json:"review_reason,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// SlotPath returns the current value of the named report slot.
func (d *Document) SlotPath(slot constants.ReportSlot) *string {
	if slot == constants.SlotAI {
		return d.AIReportPath
	}
	return d.SimilarityReportPath
}

// EmptySlot returns the first empty slot in fixed order (similarity, then AI)
// and whether one exists.
func (d *Document) EmptySlot() (constants.ReportSlot, bool) {
	if d.SimilarityReportPath == nil || *d.SimilarityReportPath == "" {
		return constants.SlotSimilarity, true
	}
	if d.AIReportPath == nil || *d.AIReportPath == "" {
		return constants.SlotAI, true
	}
	return "", false
}

// HoldsPath reports whether either slot already references path.
func (d *Document) HoldsPath(path string) bool {
	if d.SimilarityReportPath != nil && *d.SimilarityReportPath == path {
		return true
	}
	return d.AIReportPath != nil && *d.AIReportPath == path
}
