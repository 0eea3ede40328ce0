// Package reconcile rebuilds in-memory timers from persistent state at
// startup.
package reconcile

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/model"
)

//go:generate mockgen -source=reconciler.go -destination=../mocks/reconcile/mock.go -package=mocks

type reminderSource interface {
	GetAllReminders(ctx context.Context) ([]model.Reminder, error)
}

type leaseSource interface {
	GetAllLeases(ctx context.Context) ([]model.Lease, error)
}

type reminderScheduler interface {
	Reconcile(ctx context.Context, reminders []model.Reminder)
}

type leaseManager interface {
	Reconcile(ctx context.Context, leases []model.Lease)
}

// Reconciler loads all pending deferred tasks and hands them to their owning
// schedulers. The surrounding system guarantees Run is invoked exactly once
// per process, after the store is reachable and before any user command can
// create or cancel tasks.
type Reconciler struct {
	reminders reminderSource
	leases    leaseSource
	scheduler reminderScheduler
	manager   leaseManager
}

func New(
	reminders reminderSource,
	leases leaseSource,
	scheduler reminderScheduler,
	manager leaseManager,
) *Reconciler {
	return &Reconciler{
		reminders: reminders,
		leases:    leases,
		scheduler: scheduler,
		manager:   manager,
	}
}

// Run performs the two bulk reads and delegates to the schedulers. A failed
// read of one collection does not prevent reconciliation of the other; the
// joined error is returned for logging.
func (r *Reconciler) Run(ctx context.Context) error {
	var errs []error

	reminders, err := r.reminders.GetAllReminders(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load pending reminders")
		errs = append(errs, err)
	} else {
		r.scheduler.Reconcile(ctx, reminders)
		zlog.Logger.Info().Int("count", len(reminders)).Msg("reconciled reminders")
	}

	leases, err := r.leases.GetAllLeases(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load pending leases")
		errs = append(errs, err)
	} else {
		r.manager.Reconcile(ctx, leases)
		zlog.Logger.Info().Int("count", len(leases)).Msg("reconciled leases")
	}

	return errors.Join(errs...)
}
