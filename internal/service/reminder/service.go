package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/benbjohnson/clock"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/deferred"
	"github.com/mkovridov/schedcore/internal/model"
	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	reminderrepo "github.com/mkovridov/schedcore/internal/repository/reminder"
	"github.com/mkovridov/schedcore/internal/timer"
)

const (
	// MaxMessageLength bounds the reminder payload.
	MaxMessageLength = 1500
	// MinRepeatInterval is the floor for repeating reminders.
	MinRepeatInterval = 30 * time.Second

	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusSent      = "sent"
	StatusFailed    = "failed"

	timerKind = "reminder"
)

var (
	ErrMessageTooLong = errors.New("reminder message exceeds 1500 characters")
	ErrRepeatTooShort = errors.New("repeat interval must be at least 30 seconds")

	// ErrReminderNotFound is re-exported so handlers depend on the service
	// package only.
	ErrReminderNotFound = reminderrepo.ErrReminderNotFound
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type reminderRepository interface {
	CreateReminder(context.Context, model.Reminder) (uuid.UUID, error)
	DeleteReminderByOwner(ctx context.Context, ownerID string, id uuid.UUID) error
	DeleteReminder(ctx context.Context, id uuid.UUID) error
	UpdateSchedule(ctx context.Context, id uuid.UUID, delay time.Duration, remindAt time.Time) error
	GetRemindersByOwner(ctx context.Context, ownerID string) ([]model.Reminder, error)
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns the reminder lifecycle: schedule on creation, cancel on
// removal, re-fire and reschedule on repeat, reconcile with the store on
// startup.
type Service struct {
	repo     reminderRepository
	queue    deliveryPublisher
	cache    cache
	runner   *deferred.Runner
	clock    clock.Clock
	strategy retry.Strategy
}

func NewService(
	repo reminderRepository,
	queue deliveryPublisher,
	cache cache,
	runner *deferred.Runner,
	clk clock.Clock,
	strategy retry.Strategy,
) *Service {
	return &Service{
		repo:     repo,
		queue:    queue,
		cache:    cache,
		runner:   runner,
		clock:    clk,
		strategy: strategy,
	}
}

func timerKey(id uuid.UUID) timer.Key {
	return timer.Key{Kind: timerKind, ID: id.String()}
}

// Create validates, persists and arms a new reminder. The durable write
// happens before the timer is armed: if the write fails nothing is scheduled
// and the error is returned to the caller.
func (s *Service) Create(ctx context.Context, ownerID string, delay, repeat time.Duration, message string) (uuid.UUID, error) {
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return uuid.Nil, ErrMessageTooLong
	}
	if repeat > 0 && repeat < MinRepeatInterval {
		return uuid.Nil, ErrRepeatTooShort
	}

	rem := model.Reminder{
		OwnerID:  ownerID,
		Message:  message,
		RemindAt: s.clock.Now().Add(delay),
		Delay:    delay,
		Repeat:   repeat,
	}

	id, err := s.repo.CreateReminder(ctx, rem)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create reminder: %w", err)
	}
	rem.ID = id

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), StatusPending); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache reminder status")
	}

	s.runner.Arm(&task{svc: s, rem: rem}, delay)

	return id, nil
}

// Cancel removes the durable record filtered by owner and id, then cancels
// the in-memory timer. A missing record (never created, someone else's, or
// already fired) surfaces as ErrReminderNotFound and leaves the timer
// untouched.
func (s *Service) Cancel(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := s.repo.DeleteReminderByOwner(ctx, ownerID, id); err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			return err
		}

		return fmt.Errorf("cancel reminder: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), StatusCancelled); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache reminder status")
	}

	s.runner.Disarm(timerKey(id))

	return nil
}

// ListByOwner returns a user's pending reminders.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]model.Reminder, error) {
	reminders, err := s.repo.GetRemindersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	return reminders, nil
}

// Status returns the delivery status for a reminder. Delivery workers use it
// to skip reminders cancelled after their fire was already in flight. A
// cache miss reads as pending: delivering once too often is the accepted
// side of at-least-once.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, s.strategy, id.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return StatusPending, nil
		}

		return "", fmt.Errorf("get reminder status: %w", err)
	}

	return status, nil
}

// SetStatus records the delivery outcome for a reminder.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), status); err != nil {
		return fmt.Errorf("set reminder status: %w", err)
	}

	return nil
}

// Reconcile rebuilds timers from the stored reminders. Overdue reminders
// fire on the calling goroutine instead of being armed with a zero delay;
// future ones are armed for the remaining duration.
func (s *Service) Reconcile(ctx context.Context, reminders []model.Reminder) {
	now := s.clock.Now()

	for _, rem := range reminders {
		t := &task{svc: s, rem: rem}

		remaining := rem.RemindAt.Sub(now)
		if remaining <= 0 {
			s.runner.FireNow(t)
		} else {
			s.runner.Arm(t, remaining)
		}
	}
}

// fire delivers the reminder and decides what happens next. Delivery is a
// queue publish, so the timer goroutine never blocks on the send itself.
// Store failures are logged and do not stop the repeat cycle; the store is
// reconciled at next restart.
func (s *Service) fire(ctx context.Context, rem *model.Reminder) deferred.NextAction {
	msg := queue.DeliveryMessage{
		ID:      rem.ID,
		OwnerID: rem.OwnerID,
		Message: rem.Message,
		FiredAt: s.clock.Now(),
	}

	if err := s.queue.Publish(msg, s.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", rem.ID.String()).Msg("failed to publish reminder delivery")
	}

	if !rem.Repeating() {
		if err := s.repo.DeleteReminder(ctx, rem.ID); err != nil {
			zlog.Logger.Error().Err(err).Str("id", rem.ID.String()).Msg("failed to delete fired reminder")
		}

		return deferred.Terminate()
	}

	rem.Delay = rem.Repeat
	rem.RemindAt = s.clock.Now().Add(rem.Repeat)

	if err := s.repo.UpdateSchedule(ctx, rem.ID, rem.Delay, rem.RemindAt); err != nil {
		// A missing row means a concurrent cancel deleted the reminder while
		// this fire was in flight. The record is gone, so the repeat cycle
		// ends here instead of re-arming a timer with no backing row.
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			return deferred.Terminate()
		}

		zlog.Logger.Error().Err(err).Str("id", rem.ID.String()).Msg("failed to update reminder schedule")
	}

	return deferred.RescheduleAfter(rem.Repeat)
}

// task adapts one reminder to the deferred task contract. It carries the
// payload captured at schedule time; fire never reloads the record.
type task struct {
	svc *Service
	rem model.Reminder
}

func (t *task) Key() timer.Key {
	return timerKey(t.rem.ID)
}

func (t *task) OnDue(ctx context.Context) deferred.NextAction {
	return t.svc.fire(ctx, &t.rem)
}
