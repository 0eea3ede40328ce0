package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/mkovridov/schedcore/internal/deferred"
	mocks "github.com/mkovridov/schedcore/internal/mocks/service/reminder"
	"github.com/mkovridov/schedcore/internal/model"
	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	reminderrepo "github.com/mkovridov/schedcore/internal/repository/reminder"
	"github.com/mkovridov/schedcore/internal/timer"
)

type fixture struct {
	repo   *mocks.MockreminderRepository
	queue  *mocks.MockdeliveryPublisher
	cache  *mocks.Mockcache
	mock   *clock.Mock
	reg    *timer.Registry
	runner *deferred.Runner
	svc    *Service
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mocks.NewMockreminderRepository(ctrl),
		queue: mocks.NewMockdeliveryPublisher(ctrl),
		cache: mocks.NewMockcache(ctrl),
		mock:  clock.NewMock(),
	}
	f.reg = timer.NewRegistry(f.mock)
	f.runner = deferred.NewRunner(f.reg)
	f.svc = NewService(f.repo, f.queue, f.cache, f.runner, f.mock, retry.Strategy{})

	return f, ctrl
}

func TestService_Create_PersistsThenArms(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().
		CreateReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rem model.Reminder) (uuid.UUID, error) {
			assert.Equal(t, "owner-1", rem.OwnerID)
			assert.Equal(t, "drink water", rem.Message)
			assert.Equal(t, f.mock.Now().Add(time.Minute), rem.RemindAt)
			return id, nil
		})
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	got, err := f.svc.Create(context.Background(), "owner-1", time.Minute, 0, "drink water")
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.True(t, f.runner.Armed(timerKey(id)))
}

func TestService_Create_MessageTooLong(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := f.svc.Create(context.Background(), "owner-1", time.Minute, 0, strings.Repeat("a", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestService_Create_MessageLengthCountsRunes(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	// Two bytes per rune; the limit applies to characters, not bytes.
	_, err := f.svc.Create(context.Background(), "owner-1", time.Minute, 0, strings.Repeat("ю", MaxMessageLength))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), "owner-1", time.Minute, 0, strings.Repeat("ю", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestService_Create_RepeatTooShort(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := f.svc.Create(context.Background(), "owner-1", time.Minute, 10*time.Second, "hi")
	assert.ErrorIs(t, err, ErrRepeatTooShort)
}

func TestService_Create_PersistFailureArmsNothing(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().
		CreateReminder(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, errors.New("db down"))

	_, err := f.svc.Create(context.Background(), "owner-1", time.Minute, 0, "hi")
	assert.Error(t, err)
	assert.Equal(t, 0, f.reg.Len())
}

func TestService_Cancel_DeletesThenDisarms(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	_, err := f.svc.Create(context.Background(), "owner-1", time.Hour, 0, "hi")
	require.NoError(t, err)

	f.repo.EXPECT().DeleteReminderByOwner(gomock.Any(), "owner-1", id).Return(nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusCancelled).Return(nil)

	require.NoError(t, f.svc.Cancel(context.Background(), "owner-1", id))
	assert.False(t, f.runner.Armed(timerKey(id)))
}

func TestService_Cancel_NotFound(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().
		DeleteReminderByOwner(gomock.Any(), "other", id).
		Return(reminderrepo.ErrReminderNotFound)

	err := f.svc.Cancel(context.Background(), "other", id)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestService_Fire_OneShotDeletesRecord(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	_, err := f.svc.Create(context.Background(), "owner-1", 5*time.Second, 0, "hi")
	require.NoError(t, err)

	f.queue.EXPECT().
		Publish(gomock.Any(), retry.Strategy{}).
		DoAndReturn(func(msg queue.DeliveryMessage, _ retry.Strategy) error {
			assert.Equal(t, id, msg.ID)
			assert.Equal(t, "owner-1", msg.OwnerID)
			assert.Equal(t, "hi", msg.Message)
			return nil
		})
	f.repo.EXPECT().DeleteReminder(gomock.Any(), id).Return(nil)

	f.mock.Add(5 * time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.False(t, f.runner.Armed(timerKey(id)))
}

func TestService_Fire_RepeatingReschedules(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	_, err := f.svc.Create(context.Background(), "owner-1", time.Second, MinRepeatInterval, "hydrate")
	require.NoError(t, err)

	f.queue.EXPECT().Publish(gomock.Any(), retry.Strategy{}).Return(nil).Times(3)
	f.repo.EXPECT().UpdateSchedule(gomock.Any(), id, MinRepeatInterval, gomock.Any()).Return(nil).Times(3)

	f.mock.Add(time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.True(t, f.runner.Armed(timerKey(id)))

	f.mock.Add(MinRepeatInterval)
	time.Sleep(10 * time.Millisecond)
	f.mock.Add(MinRepeatInterval)
	time.Sleep(10 * time.Millisecond)

	assert.True(t, f.runner.Armed(timerKey(id)))
}

func TestService_Fire_RowDeletedMidFireStopsRepeat(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	_, err := f.svc.Create(context.Background(), "owner-1", time.Second, MinRepeatInterval, "hydrate")
	require.NoError(t, err)

	f.queue.EXPECT().Publish(gomock.Any(), retry.Strategy{}).Return(nil)
	f.repo.EXPECT().
		UpdateSchedule(gomock.Any(), id, MinRepeatInterval, gomock.Any()).
		Return(reminderrepo.ErrReminderNotFound)

	f.mock.Add(time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.False(t, f.runner.Armed(timerKey(id)))
	assert.Equal(t, 0, f.reg.Len())
}

func TestService_CancelDuringFire_SingleDeliveryNoRearm(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().CreateReminder(gomock.Any(), gomock.Any()).Return(id, nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusPending).Return(nil)

	_, err := f.svc.Create(context.Background(), "owner-1", time.Second, MinRepeatInterval, "hydrate")
	require.NoError(t, err)

	fireStarted := make(chan struct{})
	cancelDone := make(chan struct{})

	f.queue.EXPECT().
		Publish(gomock.Any(), retry.Strategy{}).
		DoAndReturn(func(queue.DeliveryMessage, retry.Strategy) error {
			close(fireStarted)
			<-cancelDone
			return nil
		}).
		Times(1)
	f.repo.EXPECT().DeleteReminderByOwner(gomock.Any(), "owner-1", id).Return(nil)
	f.cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, id.String(), StatusCancelled).Return(nil)
	// The cancel already deleted the row, so the reschedule write misses it.
	f.repo.EXPECT().
		UpdateSchedule(gomock.Any(), id, MinRepeatInterval, gomock.Any()).
		Return(reminderrepo.ErrReminderNotFound)

	go f.mock.Add(time.Second)

	<-fireStarted
	require.NoError(t, f.svc.Cancel(context.Background(), "owner-1", id))
	close(cancelDone)

	require.Eventually(t, func() bool {
		return !f.runner.Armed(timerKey(id))
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, f.reg.Len())
}

func TestService_Status(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, id.String()).Return(StatusSent, nil)

	status, err := f.svc.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
}

func TestService_Status_CacheMissReadsPending(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, id.String()).Return("", redis.Nil)

	status, err := f.svc.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)
}

func TestService_ListByOwner(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	reminders := []model.Reminder{
		{ID: uuid.New(), OwnerID: "owner-1", Message: "one"},
		{ID: uuid.New(), OwnerID: "owner-1", Message: "two"},
	}
	f.repo.EXPECT().GetRemindersByOwner(gomock.Any(), "owner-1").Return(reminders, nil)

	got, err := f.svc.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, reminders, got)
}

func TestService_Reconcile_OverdueFiresSynchronously(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	rem := model.Reminder{
		ID:       id,
		OwnerID:  "owner-1",
		Message:  "missed",
		RemindAt: f.mock.Now().Add(-time.Hour),
	}

	f.queue.EXPECT().Publish(gomock.Any(), retry.Strategy{}).Return(nil)
	f.repo.EXPECT().DeleteReminder(gomock.Any(), id).Return(nil)

	f.svc.Reconcile(context.Background(), []model.Reminder{rem})

	assert.False(t, f.runner.Armed(timerKey(id)))
}

func TestService_Reconcile_FutureArmsRemaining(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	rem := model.Reminder{
		ID:       id,
		OwnerID:  "owner-1",
		Message:  "later",
		RemindAt: f.mock.Now().Add(time.Minute),
	}

	f.svc.Reconcile(context.Background(), []model.Reminder{rem})
	assert.True(t, f.runner.Armed(timerKey(id)))

	f.queue.EXPECT().Publish(gomock.Any(), retry.Strategy{}).Return(nil)
	f.repo.EXPECT().DeleteReminder(gomock.Any(), id).Return(nil)

	f.mock.Add(time.Minute)
	time.Sleep(10 * time.Millisecond)

	assert.False(t, f.runner.Armed(timerKey(id)))
}
