package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/api/dto"
	"github.com/mkovridov/schedcore/internal/api/respond"
	"github.com/mkovridov/schedcore/internal/model"
	remindersvc "github.com/mkovridov/schedcore/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks

// reminderService defines the interface that the Handler depends on.
type reminderService interface {
	Create(ctx context.Context, ownerID string, delay, repeat time.Duration, message string) (uuid.UUID, error)
	Cancel(ctx context.Context, ownerID string, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Reminder, error)
}

// Handler handles HTTP requests related to reminders.
type Handler struct {
	service   reminderService
	validator *validator.Validate
}

func NewHandler(s reminderService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create handles POST requests to create a new reminder. Validation errors
// (message too long, repeat below the floor) come back as 400 with nothing
// persisted or scheduled.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateReminderRequest

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

	delay := time.Duration(req.DelaySeconds) * time.Second
	repeat := time.Duration(req.RepeatSeconds) * time.Second

	id, err := h.service.Create(c.Request.Context(), req.OwnerID, delay, repeat, req.Message)
	if err != nil {
		if errors.Is(err, remindersvc.ErrMessageTooLong) || errors.Is(err, remindersvc.ErrRepeatTooShort) {
			zlog.Logger.Warn().Err(err).Str("owner", req.OwnerID).Msg("rejected reminder")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("owner", req.OwnerID).Msg("failed to create reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// List handles GET requests for a user's pending reminders.
func (h *Handler) List(c *ginext.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing owner_id"))
		return
	}

	reminders, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("owner", ownerID).Msg("failed to list reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reminders)
}

// Cancel handles DELETE requests for a single reminder. A missing reminder
// (bad id, someone else's, or already fired) is a 404 and changes nothing.
func (h *Handler) Cancel(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	ownerID := c.Query("owner_id")
	if ownerID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing owner_id"))
		return
	}

	err = h.service.Cancel(c.Request.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, remindersvc.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "reminder cancelled")
}
