package constants

// DocStatus is the canonical lifecycle status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusAwaiting  DocStatus = "AWAITING"  // uploaded, reports outstanding
	DocStatusCompleted DocStatus = "COMPLETED" // both report slots filled
)

// ReportSlot names one of a document's two report reference fields.
type ReportSlot string

const (
	SlotSimilarity ReportSlot = "SIMILARITY"
	SlotAI         ReportSlot = "AI"
)

// Review reasons written by the reconciliation engine. Keep these stable:
// the dashboard filters on them.
const (
	ReasonDuplicateKey = "multiple documents share normalized identity key"
)
