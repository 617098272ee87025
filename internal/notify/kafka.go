package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"safesignal/internal/domain"
	"safesignal/internal/platform/config"
)

// KafkaPublisher publishes ingested alerts to a Kafka topic so downstream
// delivery workers (SMS gateway, dispatch console) can consume them. Keyed by
// alert id to keep per-alert ordering within a partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to the brokers and ensures the alert topic
// exists. Topic creation failures on already-existing topics are ignored.
func NewKafkaPublisher(ctx context.Context, cfg config.Kafka, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	if _, err := admin.CreateTopic(ctx, 1, 1, nil, cfg.Topic); err != nil {
		// Existing topics are fine; anything else surfaces on first produce.
		logger.Debug("create alert topic", "topic", cfg.Topic, "error", err.Error())
	}

	return &KafkaPublisher{client: client, topic: cfg.Topic, logger: logger}, nil
}

func (p *KafkaPublisher) Notify(ctx context.Context, record domain.AlertRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal alert record: %w", err)
	}

	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(record.ID, 10)),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("publish alert %d: %w", record.ID, err)
	}

	p.logger.InfoContext(ctx, "alert published",
		"alert_id", record.ID,
		"topic", p.topic,
		"notified", len(record.Notified),
	)
	return nil
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
