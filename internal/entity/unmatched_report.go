package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnmatchedReport is a durable record of a report file the engine could not
// reconcile automatically. It stays queued until staff resolve it manually.
type UnmatchedReport struct {
	ID         uuid.UUID  `json:"id"`
	Filename   string     `json:"filename"`
	ReportKey  string     `json:"report_key"`
	FilePath   string     `json:"file_path"`
	Reason     string     `json:"reason"`
	Resolved   bool       `json:"resolved"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
