// Package notify is the integration point for real alert delivery (SMS,
// email, dispatch systems). The alert log records who would be notified
// regardless of transport outcome, so implementations may fail without
// affecting the ingestion contract.
package notify

import (
	"context"

	"safesignal/internal/domain"
)

// Notifier delivers an ingested alert to its notified contacts.
type Notifier interface {
	Notify(ctx context.Context, record domain.AlertRecord) error
}
