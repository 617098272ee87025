package contacts

import (
	"context"

	"safesignal/internal/domain"
)

// Store persists the emergency contact collection.
//
// Error contract:
// - Delete returns sentinel.ErrNotFound (wrapped) when no record has the id
// - infrastructure failures are returned wrapped with context
//
// Create assigns the next id from a counter that only increases, so deleted
// ids are never reassigned.
type Store interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Delete(ctx context.Context, id int64) error
}
