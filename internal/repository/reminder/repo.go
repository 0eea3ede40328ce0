package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mkovridov/schedcore/internal/model"
)

var ErrReminderNotFound = errors.New("reminder not found")

// Repository provides methods to interact with the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new pending reminder and returns its ID.
func (r *Repository) CreateReminder(ctx context.Context, rem model.Reminder) (uuid.UUID, error) {
	query := `
		INSERT INTO reminders (
		    owner_id, message, remind_at, delay_seconds, repeat_seconds
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, rem.OwnerID, rem.Message, rem.RemindAt,
		int64(rem.Delay.Seconds()), int64(rem.Repeat.Seconds()),
	).Scan(&rem.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem.ID, nil
}

// DeleteReminderByOwner removes a reminder filtered by both owner and id, so
// a reminder can only be cancelled by its owner. Zero rows affected means
// the reminder does not exist (or already fired) and maps to
// ErrReminderNotFound.
func (r *Repository) DeleteReminderByOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	query := `
		DELETE FROM reminders
		WHERE id = $1 AND owner_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes a reminder by id alone. Used after a one-shot
// reminder fired; a missing row is not an error there.
func (r *Repository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM reminders
		WHERE id = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

// UpdateSchedule rewrites a repeating reminder's stored delay and due time
// after it fired, so a later reconciliation arms the next cycle correctly.
func (r *Repository) UpdateSchedule(ctx context.Context, id uuid.UUID, delay time.Duration, remindAt time.Time) error {
	query := `
		UPDATE reminders
		SET delay_seconds = $1, remind_at = $2
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, int64(delay.Seconds()), remindAt, id)
	if err != nil {
		return fmt.Errorf("failed to update reminder schedule: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// GetRemindersByOwner retrieves a user's pending reminders ordered by due
// time.
func (r *Repository) GetRemindersByOwner(ctx context.Context, ownerID string) ([]model.Reminder, error) {
	query := `
		SELECT id, owner_id, message, remind_at, delay_seconds, repeat_seconds, created_at
		FROM reminders
		WHERE owner_id = $1
		ORDER BY remind_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// GetAllReminders retrieves every pending reminder. Used once at startup
// reconciliation.
func (r *Repository) GetAllReminders(ctx context.Context) ([]model.Reminder, error) {
	query := `
		SELECT id, owner_id, message, remind_at, delay_seconds, repeat_seconds, created_at
		FROM reminders
		ORDER BY remind_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanReminders(rows rowScanner) ([]model.Reminder, error) {
	var reminders []model.Reminder
	for rows.Next() {
		var (
			rem           model.Reminder
			delaySeconds  int64
			repeatSeconds int64
		)
		if err := rows.Scan(
			&rem.ID, &rem.OwnerID, &rem.Message, &rem.RemindAt,
			&delaySeconds, &repeatSeconds, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}

		rem.Delay = time.Duration(delaySeconds) * time.Second
		rem.Repeat = time.Duration(repeatSeconds) * time.Second

		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}
