package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mkovridov/schedcore/internal/model"
)

var (
	ErrLeaseNotFound        = errors.New("lease not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Repository provides methods to interact with the leases and subscriptions
// tables. Subscriptions live here because their per-topic count is the
// authoritative "is this lease still needed" check at renewal time.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new lease repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpsertLease creates the lease row for a topic or extends an existing one.
func (r *Repository) UpsertLease(ctx context.Context, topicID string, renewAt time.Time) error {
	query := `
		INSERT INTO leases (topic_id, renew_at)
		VALUES ($1, $2)
		ON CONFLICT (topic_id) DO UPDATE SET renew_at = EXCLUDED.renew_at;
    `

	if _, err := r.db.ExecContext(ctx, query, topicID, renewAt); err != nil {
		return fmt.Errorf("failed to upsert lease: %w", err)
	}

	return nil
}

// UpdateRenewAt moves an existing lease's renewal deadline.
func (r *Repository) UpdateRenewAt(ctx context.Context, topicID string, renewAt time.Time) error {
	query := `
		UPDATE leases
		SET renew_at = $1
		WHERE topic_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, renewAt, topicID)
	if err != nil {
		return fmt.Errorf("failed to update lease: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrLeaseNotFound
	}

	return nil
}

// DeleteLease removes a single lease row.
func (r *Repository) DeleteLease(ctx context.Context, topicID string) error {
	query := `
		DELETE FROM leases
		WHERE topic_id = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, topicID); err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}

	return nil
}

// BulkDeleteLeases removes every listed lease in one statement. Startup
// reconciliation collects stale leases and deletes them in a single round
// trip instead of one delete per topic.
func (r *Repository) BulkDeleteLeases(ctx context.Context, topicIDs []string) error {
	if len(topicIDs) == 0 {
		return nil
	}

	query := `
		DELETE FROM leases
		WHERE topic_id = ANY($1);
    `

	if _, err := r.db.ExecContext(ctx, query, pq.Array(topicIDs)); err != nil {
		return fmt.Errorf("failed to bulk delete leases: %w", err)
	}

	return nil
}

// GetAllLeases retrieves every lease. Used once at startup reconciliation.
func (r *Repository) GetAllLeases(ctx context.Context) ([]model.Lease, error) {
	query := `
		SELECT topic_id, renew_at
		FROM leases
		ORDER BY renew_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all leases: %w", err)
	}
	defer rows.Close()

	var leases []model.Lease
	for rows.Next() {
		var l model.Lease
		if err := rows.Scan(&l.TopicID, &l.RenewAt); err != nil {
			return nil, err
		}

		leases = append(leases, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leases, nil
}

// CountConsumers returns how many channels still subscribe to the topic.
func (r *Repository) CountConsumers(ctx context.Context, topicID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM subscriptions
		WHERE topic_id = $1;
    `

	var count int64
	if err := r.db.Master.QueryRowContext(ctx, query, topicID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count consumers: %w", err)
	}

	return count, nil
}

// AddConsumer registers a channel as a consumer of the topic. Re-adding an
// existing consumer is a no-op.
func (r *Repository) AddConsumer(ctx context.Context, channelID, topicID string) error {
	query := `
		INSERT INTO subscriptions (channel_id, topic_id)
		VALUES ($1, $2)
		ON CONFLICT (channel_id, topic_id) DO NOTHING;
    `

	if _, err := r.db.ExecContext(ctx, query, channelID, topicID); err != nil {
		return fmt.Errorf("failed to add consumer: %w", err)
	}

	return nil
}

// RemoveConsumer drops a channel's subscription to the topic. The lease
// itself is left alone; it is cleaned up lazily at its next renewal.
func (r *Repository) RemoveConsumer(ctx context.Context, channelID, topicID string) error {
	query := `
		DELETE FROM subscriptions
		WHERE channel_id = $1 AND topic_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, channelID, topicID)
	if err != nil {
		return fmt.Errorf("failed to remove consumer: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
