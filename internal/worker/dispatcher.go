package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	"github.com/mkovridov/schedcore/internal/service/reminder"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy)
}

type statusService interface {
	Status(ctx context.Context, id uuid.UUID) (string, error)
}

// Dispatcher consumes fired reminders and spreads delivery across a worker
// pool. Before handing a message off it re-checks the reminder status, so a
// cancel that raced an in-flight fire suppresses the send.
type Dispatcher struct {
	queue   deliveryConsumer
	handler messageHandler
	service statusService
}

func NewDispatcher(q deliveryConsumer, h messageHandler, s statusService) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
		service: s,
	}
}

func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DeliveryMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					status, err := d.service.Status(ctx, msg.ID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", msg.ID, err)
						continue
					}

					if status == reminder.StatusCancelled {
						zlog.Logger.Printf("reminder %s cancelled, skipping", msg.ID)
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
