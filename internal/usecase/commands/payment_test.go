//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/shared"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testIdempotencyTTL = 24 * time.Hour

func newPaymentCommands(m *txMocks) commands.PaymentCommands {
	return commands.NewPaymentCommands(m.uow, m.cache, m.clock, testIdempotencyTTL, m.logger)
}

func hashOf(reservationID, method string) string {
	sum := sha256.Sum256([]byte(reservationID + "|" + method))
	return hex.EncodeToString(sum[:])
}

// expectSettle primes the reads and writes of a first-time payment for the default
// reservation and captures the created payment.
func expectSettle(m *txMocks, res *reservation.Reservation, created **payment.Payment) {
	m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
	m.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlstore.DBTX, p *payment.Payment) error {
			*created = p
			return nil
		})
	m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), res).Return(nil)
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("settles the reservation cost", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		res := builder.NewReservationBuilder().BuildDomain()
		var created *payment.Payment
		expectSettle(m, res, &created)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		result, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID: " " + res.ID() + " ",
			Method:        "card",
		})

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Same(t, created, result.Payment)
		assert.Equal(t, int64(2000), result.Payment.Amount().Cents())
		assert.Equal(t, int64(2000), result.Payment.TAmount().Cents())
		assert.Equal(t, payment.StatusCompleted, result.Payment.Status())
		assert.Equal(t, "test@example.com", result.Payment.Initiator())
		assert.Equal(t, testNow, result.Payment.CreatedAt())
		assert.Len(t, result.Payment.TransactionID(), 32)
		assert.Equal(t, reservation.StatusPaid, res.Status())
		assert.Equal(t, []string{shared.EventPaymentCreated, shared.EventReservationUpdated}, events)
	})

	t.Run("fresh idempotency key is completed with the transaction", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		res := builder.NewReservationBuilder().BuildDomain()
		var created *payment.Payment
		expectSettle(m, res, &created)

		m.idempotency.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), "key-1", int64(1), hashOf(res.ID(), "card"), testNow, testNow.Add(testIdempotencyTTL)).
			Return(true, nil)
		var completedWith string
		m.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), "key-1", int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlstore.DBTX, _ string, _ int64, txID string) error {
				completedWith = txID
				return nil
			})
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		result, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID:  res.ID(),
			Method:         "card",
			IdempotencyKey: "key-1",
		})

		require.NoError(t, err)
		assert.Equal(t, result.Payment.TransactionID(), completedWith)
	})

	t.Run("replay returns the stored payment without writing", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewPaymentBuilder().BuildDomain()
		txID := stored.TransactionID()

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "key-1", int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), "key-1", int64(1)).Return(&shared.IdempotencyRecord{
			Key:           "key-1",
			UserID:        1,
			RequestHash:   hashOf(stored.ReservationID(), "card"),
			TransactionID: &txID,
		}, nil)
		m.reads.EXPECT().PaymentByTransaction(gomock.Any(), txID).Return(stored, nil)

		result, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID:  stored.ReservationID(),
			Method:         "card",
			IdempotencyKey: "key-1",
		})

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Same(t, stored, result.Payment)
	})

	t.Run("key reused with another payload", func(t *testing.T) {
		m := newTxMocks(t)
		txID := "fedcba9876543210fedcba9876543210"
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "key-1", int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), "key-1", int64(1)).Return(&shared.IdempotencyRecord{
			RequestHash:   hashOf("another-reservation", "card"),
			TransactionID: &txID,
		}, nil)

		_, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID:  "0123456789abcdef0123456789abcdef",
			Method:         "card",
			IdempotencyKey: "key-1",
		})

		require.ErrorIs(t, err, payment.ErrIdempotencyReuse)
		kind, _ := errs.KindOf(err)
		assert.Equal(t, errs.KindConflict, kind)
	})

	t.Run("key held by an unfinished request", func(t *testing.T) {
		m := newTxMocks(t)
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "key-1", int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), "key-1", int64(1)).Return(&shared.IdempotencyRecord{
			RequestHash: hashOf("0123456789abcdef0123456789abcdef", "card"),
		}, nil)

		_, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID:  "0123456789abcdef0123456789abcdef",
			Method:         "card",
			IdempotencyKey: "key-1",
		})

		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("reservation state", func(t *testing.T) {
		testCases := []struct {
			name   string
			status reservation.Status
			errIs  error
			kind   errs.Kind
		}{
			{name: "already paid", status: reservation.StatusPaid, errIs: reservation.ErrAlreadyPaid, kind: errs.KindConflict},
			{name: "cancelled", status: reservation.StatusCancelled, errIs: reservation.ErrCancelledNotPayable, kind: errs.KindState},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := newTxMocks(t)
				res := builder.NewReservationBuilder().WithStatus(tc.status).BuildDomain()
				m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
				m.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)

				_, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
					ReservationID: res.ID(),
					Method:        "card",
				})

				require.ErrorIs(t, err, tc.errIs)
				kind, _ := errs.KindOf(err)
				assert.Equal(t, tc.kind, kind)
			})
		}
	})

	t.Run("other user's reservation", func(t *testing.T) {
		m := newTxMocks(t)
		res := builder.NewReservationBuilder().WithUserID(2).BuildDomain()
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
		m.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := newPaymentCommands(m).CreatePayment(ctx, 1, commands.CreatePaymentRequest{
			ReservationID: res.ID(),
			Method:        "card",
		})

		require.ErrorIs(t, err, reservation.ErrNotOwner)
	})

	t.Run("missing fields", func(t *testing.T) {
		m := newTxMocks(t)
		cmds := newPaymentCommands(m)

		_, err := cmds.CreatePayment(ctx, 1, commands.CreatePaymentRequest{Method: "card"})
		require.ErrorIs(t, err, payment.ErrMissingReservation)

		_, err = cmds.CreatePayment(ctx, 1, commands.CreatePaymentRequest{ReservationID: "abc", Method: "  "})
		require.ErrorIs(t, err, payment.ErrMissingMethod)
	})
}

func TestCancelPayment(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		status payment.Status
		want   payment.Status
		errIs  error
	}{
		{name: "completed is refunded", status: payment.StatusCompleted, want: payment.StatusRefunded},
		{name: "pending fails", status: payment.StatusPending, want: payment.StatusFailed},
		{name: "refunded is terminal", status: payment.StatusRefunded, errIs: payment.ErrNotCancellable},
		{name: "failed is terminal", status: payment.StatusFailed, errIs: payment.ErrNotCancellable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			var events []string
			m.expectEvents(&events)
			stored := builder.NewPaymentBuilder().WithStatus(tc.status).BuildDomain()
			m.reads.EXPECT().PaymentByTransaction(gomock.Any(), stored.TransactionID()).Return(stored, nil)
			if tc.errIs == nil {
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)
			}

			got, err := newPaymentCommands(m).CancelPayment(ctx, stored.TransactionID())

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status())
			assert.Equal(t, testNow, got.CompletedAt())
			assert.Equal(t, []string{shared.EventPaymentCancelled}, events)
		})
	}

	t.Run("unknown transaction", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().PaymentByTransaction(gomock.Any(), "missing").Return(nil, repoNotFound())

		_, err := newPaymentCommands(m).CancelPayment(ctx, "missing")

		require.ErrorIs(t, err, payment.ErrPaymentNotFound)
	})
}

func TestAmendPayment(t *testing.T) {
	ctx := context.Background()
	ptr := func(s string) *string { return &s }

	t.Run("applies the changed fields", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		stored := builder.NewPaymentBuilder().BuildDomain()
		amount := int64(1500)
		m.reads.EXPECT().PaymentByTransaction(gomock.Any(), stored.TransactionID()).Return(stored, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)

		got, err := newPaymentCommands(m).AmendPayment(ctx, stored.TransactionID(), commands.AmendPaymentRequest{
			AmountCents: &amount,
			Status:      ptr("Refunded"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1500), got.Amount().Cents())
		assert.Equal(t, int64(1500), got.TAmount().Cents())
		assert.Equal(t, payment.StatusRefunded, got.Status())
		assert.Equal(t, "card", got.Method())
		assert.Equal(t, testNow, got.CompletedAt())
		assert.Equal(t, []string{shared.EventPaymentUpdated}, events)
	})

	t.Run("identical values write nothing", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewPaymentBuilder().BuildDomain()
		before := stored.CompletedAt()
		m.reads.EXPECT().PaymentByTransaction(gomock.Any(), stored.TransactionID()).Return(stored, nil)

		got, err := newPaymentCommands(m).AmendPayment(ctx, stored.TransactionID(), commands.AmendPaymentRequest{
			Method: ptr("card"),
		})

		require.NoError(t, err)
		assert.Equal(t, before, got.CompletedAt())
	})

	t.Run("unknown status is rejected before loading", func(t *testing.T) {
		m := newTxMocks(t)

		_, err := newPaymentCommands(m).AmendPayment(ctx, "tx", commands.AmendPaymentRequest{Status: ptr("Lost")})

		require.ErrorIs(t, err, payment.ErrInvalidStatus)
	})

	t.Run("zero amount", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewPaymentBuilder().BuildDomain()
		zero := int64(0)
		m.reads.EXPECT().PaymentByTransaction(gomock.Any(), stored.TransactionID()).Return(stored, nil)

		_, err := newPaymentCommands(m).AmendPayment(ctx, stored.TransactionID(), commands.AmendPaymentRequest{AmountCents: &zero})

		require.ErrorIs(t, err, payment.ErrInvalidAmount)
		assert.Equal(t, int64(2000), stored.Amount().Cents())
	})
}
