package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/mkovridov/schedcore/internal/mocks/rabbitmq/handlers/delivery"
	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	"github.com/mkovridov/schedcore/internal/service/reminder"
)

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMocknotifier(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	h := NewHandler(mockNotifier, mockService)

	msg := queue.DeliveryMessage{
		ID:      uuid.New(),
		OwnerID: "owner-1",
		Message: "Hello",
		FiredAt: time.Now(),
	}

	mockNotifier.EXPECT().Send("owner-1", "Hello").Return(nil)
	mockService.EXPECT().SetStatus(gomock.Any(), msg.ID, reminder.StatusSent).Return(nil)

	h.HandleMessage(context.Background(), msg, retry.Strategy{})
}

func TestHandler_HandleMessage_SingleAttemptOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMocknotifier(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	h := NewHandler(mockNotifier, mockService)

	msg := queue.DeliveryMessage{ID: uuid.New(), OwnerID: "owner-1", Message: "Hello"}

	mockNotifier.EXPECT().Send("owner-1", "Hello").Return(errors.New("user unreachable")).Times(1)
	mockService.EXPECT().SetStatus(gomock.Any(), msg.ID, reminder.StatusFailed).Return(nil)

	h.HandleMessage(context.Background(), msg, retry.Strategy{Attempts: 3, Delay: time.Millisecond})
}

func TestHandler_HandleMessage_StatusWriteFailureIsLoggedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMocknotifier(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	h := NewHandler(mockNotifier, mockService)

	msg := queue.DeliveryMessage{ID: uuid.New(), OwnerID: "owner-1", Message: "Hello"}

	mockNotifier.EXPECT().Send("owner-1", "Hello").Return(nil)
	mockService.EXPECT().SetStatus(gomock.Any(), msg.ID, reminder.StatusSent).Return(errors.New("cache down"))

	h.HandleMessage(context.Background(), msg, retry.Strategy{})
}
