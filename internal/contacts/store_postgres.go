package contacts

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"safesignal/internal/domain"
	"safesignal/pkg/platform/sentinel"
)

// PostgresStore persists contacts in PostgreSQL. The route contracts are
// identical to the in-memory store; only durability changes.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed contact store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the contacts table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS emergency_contacts (
			id       BIGSERIAL PRIMARY KEY,
			name     TEXT NOT NULL,
			phone    TEXT NOT NULL,
			relation TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("ensure contacts schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, relation FROM emergency_contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Relation); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *PostgresStore) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO emergency_contacts (name, phone, relation) VALUES ($1, $2, $3) RETURNING id`,
		contact.Name, contact.Phone, contact.Relation,
	).Scan(&contact.ID)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("contact %d: %w", id, sentinel.ErrNotFound)
	}
	return nil
}
