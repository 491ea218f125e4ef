package match

import (
	"github.com/google/uuid"

	"github.com/simdocs-io/report-reconciler/constants"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

// Unmatched reasons recorded alongside UnmatchedReport rows.
const (
	ReasonNoDocument       = "no awaiting document matches report key"
	ReasonAmbiguousKey     = "document identity key is ambiguous"
	ReasonExcessReports    = "more than two reports matched a single document"
	ReasonSlotsFilled      = "document report slots already filled"
	ReasonAlreadyCompleted = "document already completed"
	ReasonApplyFailed      = "persisting assignment failed"
)

// Mapping records one report assigned (or recognized as already assigned) to
// a document slot.
type Mapping struct {
	DocumentID uuid.UUID           `json:"document_id"`
	Key        string              `json:"key"`
	FileName   string              `json:"file_name"`
	FilePath   string              `json:"file_path"`
	Slot       constants.ReportSlot `json:"slot"`
	// AlreadyApplied marks a replay of an assignment that was durable before
	// this batch ran; the mapping carries no new mutation. A duplicate of a
	// path first assigned within the same batch does not set it.
	AlreadyApplied bool `json:"already_applied"`
}

// UnmatchedEntry is a report the engine declined to assign, with the policy
// reason. No report is ever silently dropped: every batch item ends up in
// either Mapped or Unmatched.
type UnmatchedEntry struct {
	Report entity.ReportFile `json:"report"`
	Reason string            `json:"reason"`
}

// ReviewFlag marks a document routed to manual review.
type ReviewFlag struct {
	DocumentID uuid.UUID `json:"document_id"`
	Key        string    `json:"key"`
	Reason     string    `json:"reason"`
}

// Stats aggregates per-batch counters. ApplyFailures is zero as the engine
// produces the result; the state updater raises it when a write fails.
type Stats struct {
	TotalReports     int `json:"total_reports"`
	MappedCount      int `json:"mapped_count"`
	UnmatchedCount   int `json:"unmatched_count"`
	NeedsReviewCount int `json:"needs_review_count"`
	CompletedCount   int `json:"completed_count"`
	ApplyFailures    int `json:"apply_failures"`
}

// Result is the return contract of one reconciliation batch.
type Result struct {
	Mapped      []Mapping          `json:"mapped"`
	Unmatched   []UnmatchedEntry   `json:"unmatched"`
	NeedsReview []ReviewFlag       `json:"needs_review"`
	Completed   []*entity.Document `json:"completed_documents"`
	Stats       Stats              `json:"stats"`
}

// SlotFill is one slot write within a document mutation.
type SlotFill struct {
	Slot     constants.ReportSlot
	FileName string
	FilePath string
}

// DocumentMutation is the unit of durable work for one document. Either
// Fills/Complete describe a slot assignment outcome, or ReviewReason flags
// the document for manual review. All writes of one mutation are applied
// together.
type DocumentMutation struct {
	Doc          *entity.Document
	Key          string
	Fills        []SlotFill
	Complete     bool
	ReviewReason string
}

// Outcome pairs the batch result with the mutations required to make it
// durable.
type Outcome struct {
	Result    Result
	Mutations []DocumentMutation
}
