package delivery

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	"github.com/mkovridov/schedcore/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type notifier interface {
	Send(to, message string) error
}

type statusService interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Handler performs the actual send for a fired reminder. Delivery is a
// single attempt: an unreachable user is logged, never retried, and does not
// keep the reminder alive.
type Handler struct {
	notifier notifier
	service  statusService
}

func NewHandler(n notifier, s statusService) *Handler {
	return &Handler{notifier: n, service: s}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy) {
	if err := h.notifier.Send(msg.OwnerID, msg.Message); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", msg.ID.String()).Str("owner", msg.OwnerID).
			Msg("failed to deliver reminder")

		if err := h.service.SetStatus(ctx, msg.ID, reminder.StatusFailed); err != nil {
			zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to record delivery status")
		}

		return
	}

	zlog.Logger.Info().Str("id", msg.ID.String()).Msg("reminder delivered")

	if err := h.service.SetStatus(ctx, msg.ID, reminder.StatusSent); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to record delivery status")
	}
}
