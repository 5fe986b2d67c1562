package kafka

import (
	"context"

	kafkaGo "github.com/segmentio/kafka-go"

	"belleza/internal/config"
)

// NewWriter creates a Kafka writer for the configured topic.
func NewWriter(cfg config.KafkaConfig) *kafkaGo.Writer {
	return &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafkaGo.LeastBytes{},
	}
}

// PublishJSON writes a JSON-encoded message keyed for partition affinity.
func PublishJSON(ctx context.Context, w *kafkaGo.Writer, key, value []byte) error {
	return w.WriteMessages(ctx, kafkaGo.Message{
		Key:   key,
		Value: value,
	})
}
