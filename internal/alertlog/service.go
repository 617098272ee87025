package alertlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"safesignal/internal/domain"
	"safesignal/internal/notify"
	"safesignal/internal/platform/metrics"
)

const unknownDevice = "Unknown device"

// ContactsSource provides the phone numbers to snapshot at ingestion time.
type ContactsSource interface {
	Phones(ctx context.Context) ([]string, error)
}

// TriggerInput is the (fully optional) payload of an alert trigger. Missing
// coordinates are recorded as null; a missing device description is defaulted.
type TriggerInput struct {
	Latitude   *float64
	Longitude  *float64
	DeviceInfo string
}

// Service ingests alerts into the append-only log. By the time Trigger
// returns, the record reflects who would be notified, independent of whether
// the transport actually dispatched anything.
type Service struct {
	store    Store
	contacts ContactsSource
	notifier notify.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

func NewService(store Store, contacts ContactsSource, notifier notify.Notifier, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:    store,
		contacts: contacts,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("safesignal/alertlog"),
		now:      time.Now,
	}
}

// nextID derives a record id from the clock, bumped when two triggers land in
// the same millisecond so ids stay strictly increasing within the process.
func (s *Service) nextID(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Trigger builds an AlertRecord with a snapshot of all current contact
// phones, appends it to the log, and hands it to the notifier. Notification
// failure is logged but never fails the trigger: the record already captures
// who would be notified.
func (s *Service) Trigger(ctx context.Context, input TriggerInput) (domain.AlertRecord, error) {
	ctx, span := s.tracer.Start(ctx, "alert.trigger")
	defer span.End()

	phones, err := s.contacts.Phones(ctx)
	if err != nil {
		return domain.AlertRecord{}, fmt.Errorf("snapshot contacts: %w", err)
	}
	if phones == nil {
		phones = []string{}
	}

	deviceInfo := input.DeviceInfo
	if deviceInfo == "" {
		deviceInfo = unknownDevice
	}

	now := s.now()
	record := domain.AlertRecord{
		ID:          s.nextID(now),
		TriggeredAt: now.UTC(),
		Location: domain.AlertLocation{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		DeviceInfo: deviceInfo,
		Status:     domain.AlertStatusSent,
		Notified:   phones,
	}

	if err := s.store.Append(ctx, record); err != nil {
		return domain.AlertRecord{}, fmt.Errorf("append alert: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("alert.id", record.ID),
		attribute.Int("alert.notified", len(record.Notified)),
	)
	if s.metrics != nil {
		s.metrics.ObserveAlert(len(record.Notified))
	}
	s.logger.InfoContext(ctx, "alert triggered",
		"alert_id", record.ID,
		"notified", len(record.Notified),
		"device", deviceSummary(record.DeviceInfo),
	)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, record); err != nil {
			s.logger.ErrorContext(ctx, "alert notification failed",
				"alert_id", record.ID,
				"error", err.Error(),
			)
		}
	}

	return record, nil
}

// List returns the full alert log in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.AlertRecord, error) {
	return s.store.List(ctx)
}

// deviceSummary condenses a raw User-Agent style device string for log lines.
func deviceSummary(info string) string {
	ua := useragent.New(info)
	name, version := ua.Browser()
	if name == "" || ua.OS() == "" {
		return info
	}
	return fmt.Sprintf("%s %s on %s", name, version, ua.OS())
}
