package inventory

import (
	"context"
	"encoding/json"
	"strconv"

	"belleza/internal/infrastructure/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
)

// KafkaPublisher emits replenishment events keyed by product id so all
// events for one product land on the same partition.
type KafkaPublisher struct {
	writer *kafkaGo.Writer
}

func NewKafkaPublisher(writer *kafkaGo.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishStockReplenished(ctx context.Context, event StockReplenishedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := []byte(strconv.Itoa(event.ProductID))
	return kafka.PublishJSON(ctx, p.writer, key, value)
}
