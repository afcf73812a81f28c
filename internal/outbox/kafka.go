package outbox

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher routes every message to the topic stored with it,
// keyed by order id so events of one order stay in one partition.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs ...domain.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, toKafkaMessages(msgs)...); err != nil {
		return fmt.Errorf("writer.WriteMessages: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessages(msgs []domain.OutboxMessage) []kafka.Message {
	out := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, kafka.Message{
			Topic: msg.Topic,
			Key:   []byte(msg.Key),
			Value: msg.Payload,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(msg.EventID.String())},
			},
			Time: msg.CreatedAt.UTC(),
		})
	}

	return out
}
