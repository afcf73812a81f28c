package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type outboxRepository struct {
	q *db.Queries
}

func NewOutbox(pool *pgxpool.Pool) port.OutboxRepository {
	return &outboxRepository{
		q: db.New(pool),
	}
}

func (r *outboxRepository) Enqueue(ctx context.Context, eventID uuid.UUID, topic, key string, payload any) error {
	if eventID == uuid.Nil {
		return fmt.Errorf("eventID is empty")
	}
	if topic == "" {
		return fmt.Errorf("topic is empty")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	err = r.q.InsertOutbox(ctx, db.InsertOutboxParams{
		EventID: eventID,
		Topic:   topic,
		Key:     key,
		Payload: data,
	})
	if err != nil {
		return fmt.Errorf("q.InsertOutbox: %w", err)
	}

	return nil
}

// FetchPending skips rows locked by another relay; call it inside a transaction
// so the lock is held until MarkSent commits.
func (r *outboxRepository) FetchPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0")
	}

	rows, err := r.q.FetchPendingOutbox(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("q.FetchPendingOutbox: %w", err)
	}

	msgs := make([]domain.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, domain.OutboxMessage{
			ID:        row.ID,
			EventID:   row.EventID,
			Topic:     row.Topic,
			Key:       row.Key,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}

	return msgs, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.q.MarkOutboxSent(ctx, ids); err != nil {
		return fmt.Errorf("q.MarkOutboxSent: %w", err)
	}

	return nil
}
