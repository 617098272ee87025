package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"safesignal/internal/domain"
)

// Stub logs each would-be SMS instead of dispatching it. Swap in a real
// provider without touching ingestion.
type Stub struct {
	logger *slog.Logger
}

func NewStub(logger *slog.Logger) *Stub {
	return &Stub{logger: logger}
}

func (s *Stub) Notify(ctx context.Context, record domain.AlertRecord) error {
	for _, phone := range record.Notified {
		s.logger.InfoContext(ctx, "would send SMS",
			"message_id", uuid.NewString(),
			"alert_id", record.ID,
			"to", phone,
			"triggered_at", record.TriggeredAt,
		)
	}
	return nil
}
