//go:build integration

package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"safesignal/internal/domain"
	"safesignal/internal/notify"
	"safesignal/internal/platform/config"
	"safesignal/pkg/testutil/containers"
)

func TestKafkaPublisher(t *testing.T) {
	kc := containers.NewKafkaContainer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.Kafka{Brokers: []string{kc.Broker}, Topic: "safesignal.alerts"}
	publisher, err := notify.NewKafkaPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(publisher.Close)

	lat, lon := -1.2921, 36.8219
	record := domain.AlertRecord{
		ID:          1700000000000,
		TriggeredAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Location:    domain.AlertLocation{Latitude: &lat, Longitude: &lon},
		DeviceInfo:  "Mozilla/5.0",
		Status:      domain.AlertStatusSent,
		Notified:    []string{"+1-555-0101"},
	}
	require.NoError(t, publisher.Notify(ctx, record))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(kc.Broker),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	pollCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(pollCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "1700000000000", string(records[0].Key))

	var got domain.AlertRecord
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Notified, got.Notified)
	require.NotNil(t, got.Location.Latitude)
	assert.Equal(t, lat, *got.Location.Latitude)
}
