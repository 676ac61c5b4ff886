//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-api/internal/infra"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
	sharedmock "parking-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	users        *sharedmock.MockUserRepository
	lots         *sharedmock.MockLotRepository
	vehicles     *sharedmock.MockVehicleRepository
	reservations *sharedmock.MockReservationRepository
	sessions     *sharedmock.MockSessionRepository
	payments     *sharedmock.MockPaymentRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	outbox       *sharedmock.MockOutboxRepository
	cache        *sharedmock.MockBillingCache
	clock        *clock.MockClock
	logger       *slog.Logger
}

// newTxMocks wires a unit of work whose Within runs the callback once against a mocked
// transaction. Repository calls still need explicit expectations.
func newTxMocks(t *testing.T) *txMocks {
	ctrl := gomock.NewController(t)
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		lots:         sharedmock.NewMockLotRepository(ctrl),
		vehicles:     sharedmock.NewMockVehicleRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		sessions:     sharedmock.NewMockSessionRepository(ctrl),
		payments:     sharedmock.NewMockPaymentRepository(ctrl),
		idempotency:  sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox:       sharedmock.NewMockOutboxRepository(ctrl),
		cache:        sharedmock.NewMockBillingCache(ctrl),
		clock:        clock.NewMockClock(testNow),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Lots().Return(m.lots).AnyTimes()
	m.tx.EXPECT().Vehicles().Return(m.vehicles).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Sessions().Return(m.sessions).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	return m
}

// expectEvents records the types of every appended outbox event.
func (m *txMocks) expectEvents(types *[]string) {
	m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlstore.DBTX, ev shared.OutboxEvent) error {
			*types = append(*types, ev.Type)
			return nil
		}).AnyTimes()
}

func repoNotFound() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

func repoConflict() error {
	return infra.WrapRepoErr("version moved", nil, infra.KindVersionConflict)
}

func repoDuplicate() error {
	return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
}
