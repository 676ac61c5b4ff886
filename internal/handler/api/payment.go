package api

import (
	"net/http"

	reqdto "parking-api/internal/handler/dto/request"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/handler/httperr"
	"parking-api/internal/handler/middleware"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const replayedHeader = "Idempotent-Replayed"

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Pay a reservation
// @Description Settles the reservation cost. A repeated Idempotency-Key returns the stored payment.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Success 200 {object} resdto.PaymentResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	key := c.GetHeader(middleware.IdempotencyKeyHeader)
	result, err := h.paymentCommands.CreatePayment(c.Request.Context(), userID, req.ToCommand(key))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPayment(result.Payment))
}

// @Summary List my payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param completed query bool false "true keeps Completed payments, false keeps every other status"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var q reqdto.ListPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	var (
		views []*queries.PaymentView
		err   error
	)
	if q.Completed != nil {
		views, err = h.paymentQueries.Query(c.Request.Context(), userID, *q.Completed)
	} else {
		views, err = h.paymentQueries.History(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Cancel payment
// @Description Completed payments become Refunded and Pending ones Failed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param transaction path string true "Transaction ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/payments/{transaction}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	p, err := h.paymentCommands.CancelPayment(c.Request.Context(), c.Param("transaction"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(p))
}

// @Summary Amend payment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction path string true "Transaction ID"
// @Param request body reqdto.AmendPaymentRequest true "Changed fields"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/payments/{transaction} [patch]
func (h *PaymentHandler) Amend(c *gin.Context) {
	var req reqdto.AmendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	p, err := h.paymentCommands.AmendPayment(c.Request.Context(), c.Param("transaction"), cmd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(p))
}
