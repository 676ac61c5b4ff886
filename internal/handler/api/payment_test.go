//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/reservation"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/handler/middleware"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/queries"
	"parking-api/tests/common/builder"
	"parking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	h *apiHarness
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.h = newAPIHarness(s.T())
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

const reservationID = "0123456789abcdef0123456789abcdef"

func paymentBody() map[string]any {
	return map[string]any{"reservation_id": reservationID, "method": "card"}
}

// performWithKey sends a payment request carrying an Idempotency-Key header.
func performWithKey(s *PaymentHandlerTestSuite, router *gin.Engine, key string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequestWithHeaders(s.T(), router, http.MethodPost, "/api/payments", paymentBody(),
		map[string]string{middleware.IdempotencyKeyHeader: key}, userToken)
}

func (s *PaymentHandlerTestSuite) TestCreate() {
	s.Run("success: new payment is 201", func() {
		p := builder.NewPaymentBuilder().BuildDomain()
		s.h.paymentCommands.EXPECT().CreatePayment(gomock.Any(), int64(1), commands.CreatePaymentRequest{
			ReservationID:  reservationID,
			Method:         "card",
			IdempotencyKey: "key-1",
		}).Return(&commands.CreatePaymentResult{Payment: p}, nil)

		rec := performWithKey(s, s.h.router, "key-1")

		var res resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(p.TransactionID(), res.TransactionID)
		s.Equal(20.0, res.Amount)
		s.Equal(20.0, res.TAmount)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": ""})
	})

	s.Run("success: replay is 200 with the replay header", func() {
		p := builder.NewPaymentBuilder().BuildDomain()
		s.h.paymentCommands.EXPECT().CreatePayment(gomock.Any(), int64(1), gomock.Any()).
			Return(&commands.CreatePaymentResult{Payment: p, IsReplayed: true}, nil)

		rec := performWithKey(s, s.h.router, "key-1")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("success: no key is forwarded as empty", func() {
		p := builder.NewPaymentBuilder().BuildDomain()
		s.h.paymentCommands.EXPECT().CreatePayment(gomock.Any(), int64(1), commands.CreatePaymentRequest{
			ReservationID: reservationID,
			Method:        "card",
		}).Return(&commands.CreatePaymentResult{Payment: p}, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, "/api/payments", paymentBody(), userToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: outcome kinds map to statuses", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "key reused with another body", err: payment.ErrIdempotencyReuse, code: http.StatusConflict},
			{name: "first request still running", err: commands.ErrIdempotencyInProgress, code: http.StatusConflict},
			{name: "already paid", err: reservation.ErrAlreadyPaid, code: http.StatusConflict},
			{name: "cancelled reservation", err: reservation.ErrCancelledNotPayable, code: http.StatusBadRequest},
			{name: "not the owner", err: reservation.ErrNotOwner, code: http.StatusForbidden},
			{name: "unknown reservation", err: reservation.ErrReservationNotFound, code: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.h.paymentCommands.EXPECT().CreatePayment(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.err)

				rec := performWithKey(s, s.h.router, "key-2")

				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.err.Error())
			})
		}
	})

	s.Run("error: malformed reservation id is 400", func() {
		body := paymentBody()
		body["reservation_id"] = "not-hex"

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, "/api/payments", body, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PaymentHandlerTestSuite) TestList() {
	views := []*queries.PaymentView{{TransactionID: "tx-1", AmountCents: 1250, Status: "Completed"}}

	s.Run("completed=true filters", func() {
		s.h.paymentQueries.EXPECT().Query(gomock.Any(), int64(1), true).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/payments?completed=true", nil, userToken)

		var res []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(12.5, res[0].Amount)
	})

	s.Run("completed=false keeps the rest", func() {
		s.h.paymentQueries.EXPECT().Query(gomock.Any(), int64(1), false).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/payments?completed=false", nil, userToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("no filter returns everything", func() {
		s.h.paymentQueries.EXPECT().History(gomock.Any(), int64(1)).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/payments", nil, userToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: non-boolean filter is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/payments?completed=maybe", nil, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PaymentHandlerTestSuite) TestCancel() {
	tx := "fedcba9876543210fedcba9876543210"
	url := "/api/admin/payments/" + tx + "/cancel"

	s.Run("success: admin refunds", func() {
		refunded := builder.NewPaymentBuilder().WithStatus(payment.StatusRefunded).BuildDomain()
		s.h.paymentCommands.EXPECT().CancelPayment(gomock.Any(), tx).Return(refunded, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, nil, adminToken)

		var res resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Refunded", res.Status)
	})

	s.Run("error: terminal payment is 400", func() {
		s.h.paymentCommands.EXPECT().CancelPayment(gomock.Any(), tx).Return(nil, payment.ErrNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, nil, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: regular user is 403", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, nil, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *PaymentHandlerTestSuite) TestAmend() {
	tx := "fedcba9876543210fedcba9876543210"
	url := "/api/admin/payments/" + tx

	s.Run("success: amount converted to cents", func() {
		cents := int64(1999)
		status := "Completed"
		s.h.paymentCommands.EXPECT().AmendPayment(gomock.Any(), tx, commands.AmendPaymentRequest{
			AmountCents: &cents,
			Status:      &status,
		}).Return(builder.NewPaymentBuilder().BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, url,
			map[string]any{"amount": 19.99, "status": "Completed"}, adminToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, url,
			map[string]any{"status": "Lost"}, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: amount beyond the cent range is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, url,
			map[string]any{"amount": 1e17}, adminToken)

		httptest.AssertFieldError(s.T(), rec, "amount", "lte")
	})

	s.Run("error: unknown transaction is 404", func() {
		s.h.paymentCommands.EXPECT().AmendPayment(gomock.Any(), tx, gomock.Any()).Return(nil, payment.ErrPaymentNotFound)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPatch, url,
			map[string]any{"method": "cash"}, adminToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
