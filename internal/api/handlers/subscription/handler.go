package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/api/dto"
	"github.com/mkovridov/schedcore/internal/api/respond"
	leasesvc "github.com/mkovridov/schedcore/internal/service/lease"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/subscription/mock.go -package=mocks

// subscriptionService defines the interface that the Handler depends on.
type subscriptionService interface {
	AddConsumer(ctx context.Context, channelID, topicID string) error
	RemoveConsumer(ctx context.Context, channelID, topicID string) error
}

// Handler handles HTTP requests for channel subscriptions to topics.
type Handler struct {
	service   subscriptionService
	validator *validator.Validate
}

func NewHandler(s subscriptionService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Add handles POST requests subscribing a channel to a topic. The first
// consumer of a topic triggers the hub handshake; a handshake failure is
// reported as 502 and can simply be retried.
func (h *Handler) Add(c *ginext.Context) {
	var req dto.SubscriptionRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if err := h.service.AddConsumer(c.Request.Context(), req.ChannelID, req.TopicID); err != nil {
		zlog.Logger.Error().Err(err).Str("topic", req.TopicID).Msg("failed to add subscription")
		respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("failed to subscribe"))
		return
	}

	respond.Created(c.Writer, "subscribed")
}

// Remove handles DELETE requests dropping a channel's subscription. The
// lease itself is cleaned up lazily at its next renewal.
func (h *Handler) Remove(c *ginext.Context) {
	channelID := c.Query("channel_id")
	topicID := c.Query("topic_id")
	if channelID == "" || topicID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing channel_id or topic_id"))
		return
	}

	err := h.service.RemoveConsumer(c.Request.Context(), channelID, topicID)
	if err != nil {
		if errors.Is(err, leasesvc.ErrSubscriptionNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("subscription not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("topic", topicID).Msg("failed to remove subscription")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "unsubscribed")
}
