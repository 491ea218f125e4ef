package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"cloud.google.com/go/pubsub"

	"github.com/simdocs-io/report-reconciler/internal/common"
)

// PubSubNotifier publishes completion events to a Pub/Sub topic consumed by
// the push/email dispatcher.
type PubSubNotifier struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewPubSubNotifier connects a client and resolves the configured topic.
func NewPubSubNotifier(ctx context.Context, cfg common.NotifyConfig, logger *slog.Logger) (*PubSubNotifier, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, common.WrapError(err, "pubsub client")
	}
	return &PubSubNotifier{
		topic:  client.Topic(cfg.TopicID),
		logger: logger,
	}, nil
}

// NotifyCompleted publishes one event and waits for the server ack. The
// dispatcher on the other side retries delivery and prunes dead
// subscriptions; publishing twice for the same document is acceptable.
func (n *PubSubNotifier) NotifyCompleted(ctx context.Context, ev CompletionEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return common.WrapError(err, "marshal completion event")
	}
	res := n.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event":       "document.completed",
			"document_id": ev.DocumentID.String(),
		},
	})
	id, err := res.Get(ctx)
	if err != nil {
		return common.WrapError(err, "publish completion event")
	}
	n.logger.Debug("published completion event", "message_id", id, "document_id", ev.DocumentID)
	return nil
}

// Stop flushes pending publishes.
func (n *PubSubNotifier) Stop() {
	n.topic.Stop()
}
