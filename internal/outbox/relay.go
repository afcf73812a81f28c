package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

// Relay moves committed outbox records to the broker. Delivery is at least once:
// a crash between publish and commit republishes the batch.
type Relay struct {
	tx        port.Transactor
	publisher port.Publisher
	interval  time.Duration
	batchSize int
	metrics   *metrics.Metrics
	log       logrus.FieldLogger
}

func NewRelay(tx port.Transactor, publisher port.Publisher, interval time.Duration, batchSize int, m *metrics.Metrics, log logrus.FieldLogger) *Relay {
	return &Relay{
		tx:        tx,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		metrics:   m,
		log:       log.WithField("component", "outbox-relay"),
	}
}

// Run polls until ctx is cancelled. A full batch triggers an immediate next poll.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		n, err := r.RelayOnce(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			r.log.WithError(err).Warn("outbox relay failed")
			if r.metrics != nil {
				r.metrics.OutboxFailures.Inc()
			}
		}

		if n == r.batchSize && err == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many records were sent.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var sent int

	err := r.tx.InTx(ctx, func(repos port.Repositories) error {
		msgs, err := repos.Outbox().FetchPending(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("repos.FetchPending: %w", err)
		}

		if len(msgs) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, msgs...); err != nil {
			return fmt.Errorf("publisher.Publish: %w", err)
		}

		ids := make([]int64, 0, len(msgs))
		for _, msg := range msgs {
			ids = append(ids, msg.ID)
		}

		if err := repos.Outbox().MarkSent(ctx, ids); err != nil {
			return fmt.Errorf("repos.MarkSent: %w", err)
		}

		sent = len(msgs)

		return nil
	})
	if err != nil {
		return 0, err
	}

	if sent > 0 {
		r.log.WithField("count", sent).Debug("outbox batch relayed")
		if r.metrics != nil {
			r.metrics.OutboxPublished.Add(float64(sent))
		}
	}

	return sent, nil
}
