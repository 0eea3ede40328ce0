package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/mkovridov/schedcore/internal/mocks/worker"
	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	"github.com/mkovridov/schedcore/internal/service/reminder"
)

func TestDispatcher_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.DeliveryMessage{
		ID:      uuid.New(),
		OwnerID: "owner-1",
		Message: "Hello",
		FiredAt: time.Now(),
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().Status(gomock.Any(), msg.ID).Return(reminder.StatusPending, nil)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_CancelledStatusSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{ID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().Status(gomock.Any(), msg.ID).Return(reminder.StatusCancelled, nil)

	go d.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_StatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{ID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().Status(gomock.Any(), msg.ID).Return("", errors.New("cache down"))

	go d.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockstatusService(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).Return(nil)

	done := make(chan struct{})
	go func() {
		d.Run(ctx, strategy, 2)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after context cancel")
	}
}
