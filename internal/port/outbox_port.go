package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type OutboxRepository interface {
	// Enqueue marshals payload to JSON and stores it for the relay.
	Enqueue(ctx context.Context, eventID uuid.UUID, topic, key string, payload any) error
	FetchPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error)
	MarkSent(ctx context.Context, ids []int64) error
}

type Publisher interface {
	Publish(ctx context.Context, msgs ...domain.OutboxMessage) error
	Close() error
}
