// Package roster manages the client's locally persisted emergency contacts.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"safesignal/internal/domain"
	dErrors "safesignal/pkg/domain-errors"
)

// Manager keeps the in-memory contact list and its persisted representation
// in sync: every mutation persists before it commits, so the two can never
// diverge. Contacts are identified by position; there are no ids.
type Manager struct {
	kv       KV
	logger   *slog.Logger
	contacts []domain.Contact
}

func NewManager(kv KV, logger *slog.Logger) *Manager {
	return &Manager{kv: kv, logger: logger}
}

// Load reads the persisted list. An absent entry seeds the two starter
// contacts and persists them.
func (m *Manager) Load(ctx context.Context) error {
	payload, ok, err := m.kv.Load(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if !ok {
		seed := []domain.Contact{
			{Name: "Mum", Phone: "+254 712 345 678"},
			{Name: "Police Station", Phone: "999"},
		}
		if err := m.persist(ctx, seed); err != nil {
			return err
		}
		m.contacts = seed
		m.logger.InfoContext(ctx, "roster seeded", "contacts", len(seed))
		return nil
	}

	var contacts []domain.Contact
	if err := json.Unmarshal(payload, &contacts); err != nil {
		return fmt.Errorf("decode roster: %w", err)
	}
	m.contacts = contacts
	return nil
}

// Add appends a contact after trimming and validating both fields.
func (m *Manager) Add(ctx context.Context, name, phone string) error {
	contact := domain.Contact{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	if err := contact.Validate(); err != nil {
		return err
	}
	next := append(m.snapshot(), contact)
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.contacts = next
	return nil
}

// DeleteAt removes the contact at index. Without confirmation it is a no-op;
// remaining entries keep their relative order.
func (m *Manager) DeleteAt(ctx context.Context, index int, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if index < 0 || index >= len(m.contacts) {
		return dErrors.Newf(dErrors.CodeNotFound, "no contact at index %d", index)
	}
	next := m.snapshot()
	next = append(next[:index], next[index+1:]...)
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.contacts = next
	return nil
}

// Contacts returns a copy of the current list in order.
func (m *Manager) Contacts() []domain.Contact {
	return m.snapshot()
}

// Render produces the visible list, one line per contact, with an
// empty-state message when there is nothing to show.
func (m *Manager) Render() []string {
	if len(m.contacts) == 0 {
		return []string{"No contacts yet. Add one below."}
	}
	lines := make([]string, len(m.contacts))
	for i, c := range m.contacts {
		lines[i] = fmt.Sprintf("%s  %s", c.Name, c.Phone)
	}
	return lines
}

// persist writes the candidate list before it becomes visible in memory, so
// a failed write leaves both representations unchanged.
func (m *Manager) persist(ctx context.Context, contacts []domain.Contact) error {
	payload, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := m.kv.Save(ctx, payload); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}

func (m *Manager) snapshot() []domain.Contact {
	return append([]domain.Contact{}, m.contacts...)
}
