package pubsub

import (
	"context"
	"fmt"
	"log/slog"
)

// Audit writes one structured log line per application event.
type Audit struct {
	logger *slog.Logger
}

// NewAudit creates an audit subscriber writing to logger.
func NewAudit(logger *slog.Logger) *Audit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Audit{logger: logger.With("component", "audit")}
}

// Start subscribes to every application topic.
func (a *Audit) Start(ctx context.Context, sub Subscriber) error {
	for _, topic := range Topics() {
		if err := sub.Subscribe(ctx, topic, a.Handle); err != nil {
			return fmt.Errorf("audit: subscribe %s: %w", topic, err)
		}
	}
	a.logger.Debug("Audit subscriber started", "topics", len(Topics()))
	return nil
}

// Handle logs a single message.
func (a *Audit) Handle(ctx context.Context, msg Message) error {
	attrs := []any{"topic", msg.Topic, "source", msg.Source}
	if id := msg.Metadata[metaKeyRequestID]; id != "" {
		attrs = append(attrs, "request_id", id)
	}

	var summary string
	switch msg.Topic {
	case SessionLogin.Name():
		summary = SessionLogin.Description()
	case SessionLogout.Name():
		summary = SessionLogout.Description()
	case AssessmentCompleted.Name():
		p, err := Decode(AssessmentCompleted, msg)
		if err != nil {
			return err
		}
		summary = AssessmentCompleted.Description()
		attrs = append(attrs, "pcos_risk", p.Risk, "confidence", p.Confidence)
	case AccountRegistered.Name():
		if _, err := Decode(AccountRegistered, msg); err != nil {
			return err
		}
		summary = AccountRegistered.Description()
	default:
		return fmt.Errorf("audit: unexpected topic %q", msg.Topic)
	}

	a.logger.InfoContext(ctx, summary, attrs...)
	return nil
}
