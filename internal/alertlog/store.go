package alertlog

import (
	"context"

	"safesignal/internal/domain"
)

// Store is the append-only alert log. Records are never mutated or deleted;
// List returns them in insertion order.
type Store interface {
	Append(ctx context.Context, record domain.AlertRecord) error
	List(ctx context.Context) ([]domain.AlertRecord, error)
}
