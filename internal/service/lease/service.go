package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/deferred"
	"github.com/mkovridov/schedcore/internal/model"
	leaserepo "github.com/mkovridov/schedcore/internal/repository/lease"
	"github.com/mkovridov/schedcore/internal/timer"
)

const timerKind = "lease"

// ErrSubscriptionNotFound is re-exported so handlers depend on the service
// package only.
var ErrSubscriptionNotFound = leaserepo.ErrSubscriptionNotFound

//go:generate mockgen -source=service.go -destination=../../mocks/service/lease/mock.go -package=mocks

type leaseRepository interface {
	UpsertLease(ctx context.Context, topicID string, renewAt time.Time) error
	UpdateRenewAt(ctx context.Context, topicID string, renewAt time.Time) error
	DeleteLease(ctx context.Context, topicID string) error
	BulkDeleteLeases(ctx context.Context, topicIDs []string) error
	CountConsumers(ctx context.Context, topicID string) (int64, error)
	AddConsumer(ctx context.Context, channelID, topicID string) error
	RemoveConsumer(ctx context.Context, channelID, topicID string) error
}

type hubClient interface {
	Subscribe(ctx context.Context, topicID string) error
}

// Service owns the push-subscription lease lifecycle: establish on first
// consumer, renew before expiry, delete lazily once no consumer needs the
// topic anymore.
type Service struct {
	repo         leaseRepository
	hub          hubClient
	runner       *deferred.Runner
	clock        clock.Clock
	defaultLease time.Duration
}

func NewService(
	repo leaseRepository,
	hub hubClient,
	runner *deferred.Runner,
	clk clock.Clock,
	defaultLease time.Duration,
) *Service {
	return &Service{
		repo:         repo,
		hub:          hub,
		runner:       runner,
		clock:        clk,
		defaultLease: defaultLease,
	}
}

func timerKey(topicID string) timer.Key {
	return timer.Key{Kind: timerKind, ID: topicID}
}

// AddConsumer registers a channel as a consumer of the topic and makes sure
// a lease exists for it. The handshake error is surfaced so the caller can
// report the subscription as failed; the consumer row stays, and the next
// attempt re-runs the handshake.
func (s *Service) AddConsumer(ctx context.Context, channelID, topicID string) error {
	if err := s.repo.AddConsumer(ctx, channelID, topicID); err != nil {
		return fmt.Errorf("add consumer: %w", err)
	}

	return s.EnsureSubscribed(ctx, topicID)
}

// RemoveConsumer drops a channel's subscription. The lease is not revoked
// here: the zero-consumer check is authoritative at renewal time only, which
// bounds cleanup latency to one lease period.
func (s *Service) RemoveConsumer(ctx context.Context, channelID, topicID string) error {
	if err := s.repo.RemoveConsumer(ctx, channelID, topicID); err != nil {
		if errors.Is(err, leaserepo.ErrSubscriptionNotFound) {
			return err
		}

		return fmt.Errorf("remove consumer: %w", err)
	}

	return nil
}

// EnsureSubscribed establishes a lease for the topic unless a renewal timer
// is already armed. The handshake is a single attempt; on success the lease
// row is written before the renewal timer is armed.
func (s *Service) EnsureSubscribed(ctx context.Context, topicID string) error {
	if s.runner.Armed(timerKey(topicID)) {
		return nil
	}

	if err := s.hub.Subscribe(ctx, topicID); err != nil {
		return fmt.Errorf("subscribe to hub: %w", err)
	}

	renewAt := s.clock.Now().Add(s.defaultLease)
	if err := s.repo.UpsertLease(ctx, topicID, renewAt); err != nil {
		return fmt.Errorf("persist lease: %w", err)
	}

	// The hub's synchronous verification may have landed already and armed
	// the timer with the granted lease length; don't clobber it.
	if s.runner.Armed(timerKey(topicID)) {
		return nil
	}

	s.runner.Arm(&task{svc: s, topicID: topicID}, s.defaultLease)

	return nil
}

// ExtendLease applies a hub-granted lease length received during
// verification. It overrides the default: the stored deadline moves and the
// renewal timer is replaced.
func (s *Service) ExtendLease(ctx context.Context, topicID string, leaseSeconds int64) error {
	if leaseSeconds <= 0 {
		return nil
	}

	granted := time.Duration(leaseSeconds) * time.Second
	renewAt := s.clock.Now().Add(granted)

	if err := s.repo.UpsertLease(ctx, topicID, renewAt); err != nil {
		return fmt.Errorf("extend lease: %w", err)
	}

	s.runner.Arm(&task{svc: s, topicID: topicID}, granted)

	return nil
}

// Reconcile rebuilds renewal timers from the stored leases. Overdue leases
// are handled now: the ones that still have consumers get a fresh handshake,
// the stale ones are collected and removed with a single batched delete.
// A failure on one lease never aborts the rest of the pass.
func (s *Service) Reconcile(ctx context.Context, leases []model.Lease) {
	now := s.clock.Now()

	var stale []string
	for _, l := range leases {
		remaining := l.RenewAt.Sub(now)
		if remaining > 0 {
			s.runner.Arm(&task{svc: s, topicID: l.TopicID}, remaining)
			continue
		}

		count, err := s.repo.CountConsumers(ctx, l.TopicID)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("topic", l.TopicID).Msg("failed to count consumers")
			continue
		}

		if count == 0 {
			stale = append(stale, l.TopicID)
			continue
		}

		if err := s.hub.Subscribe(ctx, l.TopicID); err != nil {
			zlog.Logger.Warn().Err(err).Str("topic", l.TopicID).Msg("failed to resubscribe, lease lapses")
			continue
		}

		renewAt := now.Add(s.defaultLease)
		if err := s.repo.UpdateRenewAt(ctx, l.TopicID, renewAt); err != nil {
			zlog.Logger.Error().Err(err).Str("topic", l.TopicID).Msg("failed to update lease")
		}

		s.runner.Arm(&task{svc: s, topicID: l.TopicID}, s.defaultLease)
	}

	if len(stale) > 0 {
		if err := s.repo.BulkDeleteLeases(ctx, stale); err != nil {
			zlog.Logger.Error().Err(err).Int("count", len(stale)).Msg("failed to bulk delete stale leases")
		}
	}
}

// renew is the timer callback. The consumer count decides the lease's fate:
// zero consumers deletes it, otherwise the handshake runs and the timer
// re-arms. A failed handshake lets the lease lapse; the next AddConsumer
// re-establishes it.
func (s *Service) renew(ctx context.Context, topicID string) deferred.NextAction {
	count, err := s.repo.CountConsumers(ctx, topicID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("topic", topicID).Msg("failed to count consumers, lease lapses")
		return deferred.Terminate()
	}

	if count == 0 {
		if err := s.repo.DeleteLease(ctx, topicID); err != nil {
			zlog.Logger.Error().Err(err).Str("topic", topicID).Msg("failed to delete stale lease")
		}

		return deferred.Terminate()
	}

	if err := s.hub.Subscribe(ctx, topicID); err != nil {
		zlog.Logger.Warn().Err(err).Str("topic", topicID).Msg("failed to renew subscription, lease lapses")
		return deferred.Terminate()
	}

	renewAt := s.clock.Now().Add(s.defaultLease)
	if err := s.repo.UpdateRenewAt(ctx, topicID, renewAt); err != nil {
		zlog.Logger.Error().Err(err).Str("topic", topicID).Msg("failed to update lease")
	}

	return deferred.RescheduleAfter(s.defaultLease)
}

// task adapts one topic's renewal to the deferred task contract.
type task struct {
	svc     *Service
	topicID string
}

func (t *task) Key() timer.Key {
	return timerKey(t.topicID)
}

func (t *task) OnDue(ctx context.Context) deferred.NextAction {
	return t.svc.renew(ctx, t.topicID)
}
