package alertlog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"safesignal/internal/domain"
)

// PostgresStore persists the alert log in PostgreSQL for deployments that
// must survive restarts. Append-only by construction: no UPDATE or DELETE.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed alert log.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the alert log table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alert_log (
			id           BIGINT PRIMARY KEY,
			triggered_at TIMESTAMPTZ NOT NULL,
			latitude     DOUBLE PRECISION,
			longitude    DOUBLE PRECISION,
			device_info  TEXT NOT NULL,
			status       TEXT NOT NULL,
			notified     TEXT[] NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure alert log schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, record domain.AlertRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO alert_log (id, triggered_at, latitude, longitude, device_info, status, notified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.TriggeredAt,
		record.Location.Latitude, record.Location.Longitude,
		record.DeviceInfo, string(record.Status), record.Notified,
	)
	if err != nil {
		return fmt.Errorf("append alert %d: %w", record.ID, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.AlertRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, triggered_at, latitude, longitude, device_info, status, notified
		FROM alert_log ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var records []domain.AlertRecord
	for rows.Next() {
		var r domain.AlertRecord
		var status string
		if err := rows.Scan(&r.ID, &r.TriggeredAt,
			&r.Location.Latitude, &r.Location.Longitude,
			&r.DeviceInfo, &status, &r.Notified); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		r.Status = domain.AlertStatus(status)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return records, nil
}
