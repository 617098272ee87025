package contacts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/internal/platform/metrics"
	dErrors "safesignal/pkg/domain-errors"
	"safesignal/pkg/platform/sentinel"
)

// Service owns the contact collection for the lifetime of the process. It
// keeps orchestration out of handlers and translates store sentinels into
// domain errors.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.store.List(ctx)
}

// Add validates and appends a new contact, returning it with its assigned id.
func (s *Service) Add(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, err
	}
	created, err := s.store.Create(ctx, contact)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("add contact: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ContactsCreated.Inc()
	}
	s.logger.InfoContext(ctx, "contact added", "id", created.ID, "name", created.Name)
	return created, nil
}

// Remove deletes the contact with the given id.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "contact %d not found", id)
		}
		return fmt.Errorf("remove contact: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ContactsDeleted.Inc()
	}
	s.logger.InfoContext(ctx, "contact removed", "id", id)
	return nil
}

// Phones returns the current contact phone numbers in insertion order. The
// alert service snapshots this at ingestion time.
func (s *Service) Phones(ctx context.Context) ([]string, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	phones := make([]string, 0, len(list))
	for _, c := range list {
		phones = append(phones, c.Phone)
	}
	return phones, nil
}

// SeedDefaults populates an empty store with the two starter contacts so a
// fresh process has someone to notify.
func (s *Service) SeedDefaults(ctx context.Context) error {
	list, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("seed contacts: %w", err)
	}
	if len(list) > 0 {
		return nil
	}
	defaults := []domain.Contact{
		{Name: "Mom", Phone: "+1-555-0101", Relation: "Mother"},
		{Name: "Dad", Phone: "+1-555-0102", Relation: "Father"},
	}
	for _, c := range defaults {
		if _, err := s.store.Create(ctx, c); err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
	}
	return nil
}
