//go:build unit

package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-api/internal/infra/scheduler"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
	sharedmock "parking-api/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jobNow = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

type jobMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	outbox      *sharedmock.MockOutboxRepository
	idempotency *sharedmock.MockIdempotencyRepository
	publisher   *sharedmock.MockPublisher
	jobs        *scheduler.Jobs
}

func newJobMocks(t *testing.T) *jobMocks {
	ctrl := gomock.NewController(t)
	m := &jobMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		outbox:      sharedmock.NewMockOutboxRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		publisher:   sharedmock.NewMockPublisher(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m.jobs = scheduler.NewJobs(m.uow, m.publisher, clock.NewMockClock(jobNow), logger)
	return m
}

func pending(ids ...int64) []shared.OutboxMessage {
	msgs := make([]shared.OutboxMessage, 0, len(ids))
	for _, id := range ids {
		msgs = append(msgs, shared.OutboxMessage{ID: id, Type: shared.EventPaymentCreated, Payload: []byte(`{}`)})
	}
	return msgs
}

func TestJobs_RelayOutbox(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes in order and marks everything sent", func(t *testing.T) {
		m := newJobMocks(t)
		m.outbox.EXPECT().LockPending(gomock.Any(), gomock.Any(), int32(50)).Return(pending(1, 2, 3), nil)
		var published []int64
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg shared.OutboxMessage) error {
				published = append(published, msg.ID)
				return nil
			}).Times(3)
		m.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), []int64{1, 2, 3}, jobNow).Return(nil)

		n, err := m.jobs.RelayOutbox(ctx, 50)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int64{1, 2, 3}, published)
	})

	t.Run("stops at the first broker failure", func(t *testing.T) {
		m := newJobMocks(t)
		m.outbox.EXPECT().LockPending(gomock.Any(), gomock.Any(), int32(50)).Return(pending(1, 2, 3), nil)
		gomock.InOrder(
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError),
		)
		m.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), []int64{1}, jobNow).Return(nil)

		n, err := m.jobs.RelayOutbox(ctx, 50)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("lock failure is returned", func(t *testing.T) {
		m := newJobMocks(t)
		m.outbox.EXPECT().LockPending(gomock.Any(), gomock.Any(), int32(50)).Return(nil, assert.AnError)

		n, err := m.jobs.RelayOutbox(ctx, 50)

		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, n)
	})
}

func TestJobs_PurgeIdempotencyKeys(t *testing.T) {
	m := newJobMocks(t)
	m.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), jobNow).Return(int64(4), nil)

	n, err := m.jobs.PurgeIdempotencyKeys(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestNew_RejectsBadSpec(t *testing.T) {
	m := newJobMocks(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := scheduler.New(scheduler.Config{OutboxRelaySpec: "not a spec", IdempotencyGCSpec: "@hourly"}, m.jobs, logger)
	require.Error(t, err)

	s, err := scheduler.New(scheduler.Config{OutboxRelaySpec: "@every 5s", IdempotencyGCSpec: "@hourly"}, m.jobs, logger)
	require.NoError(t, err)
	s.Start()
	require.NoError(t, s.Stop(context.Background()))
}
