package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"auction-market/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// Producer publishes domain events. Publishing is best-effort: callers log
// failures but never fail the originating operation over them.
type Producer interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(cfg config.KafkaConfig) Producer {
	if !cfg.Enabled {
		return NopProducer{}
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaProducer{writer: writer}
}

type envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func (p *KafkaProducer) Publish(ctx context.Context, eventType, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		slog.Error("failed to publish event",
			"type", eventType,
			"key", key,
			"error", err)
		return err
	}

	slog.Debug("event published", "type", eventType, "key", key)
	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// NopProducer stands in when Kafka is disabled (tests, local development).
type NopProducer struct{}

func (NopProducer) Publish(context.Context, string, string, any) error { return nil }
func (NopProducer) Close() error                                       { return nil }
