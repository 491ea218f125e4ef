// Package notify carries the completion-notification trigger contract: fire
// at-least-once per newly completed document, after its state mutation has
// durably succeeded. Delivery mechanics (push, email) live behind the topic.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// CompletionEvent is the payload of one completion trigger.
type CompletionEvent struct {
	DocumentID uuid.UUID `json:"document_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Filename   string    `json:"filename"`
}

// CompletionNotifier fires the trigger. Implementations must tolerate being
// called more than once for the same document.
type CompletionNotifier interface {
	NotifyCompleted(ctx context.Context, ev CompletionEvent) error
}

// LogNotifier only logs the trigger. Used when no topic is configured and in
// dry runs.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) NotifyCompleted(_ context.Context, ev CompletionEvent) error {
	n.Logger.Info("document completed",
		"document_id", ev.DocumentID,
		"customer_id", ev.CustomerID,
		"filename", ev.Filename,
	)
	return nil
}
