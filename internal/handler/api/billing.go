package api

import (
	"context"
	"net/http"

	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/handler/httperr"
	"parking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingQueries queries.BillingQueries
}

func NewBillingHandler(billingQueries queries.BillingQueries) *BillingHandler {
	return &BillingHandler{billingQueries: billingQueries}
}

// @Summary Outstanding charges
// @Description Unpaid reservations and sessions, oldest first
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BillingItemResponse
// @Router /billing [get]
func (h *BillingHandler) Upcoming(c *gin.Context) {
	h.items(c, h.billingQueries.Upcoming)
}

// @Summary Settled charges
// @Description Paid reservations and finished sessions, newest first
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BillingItemResponse
// @Router /billing/history [get]
func (h *BillingHandler) History(c *gin.Context) {
	h.items(c, h.billingQueries.History)
}

// @Summary Payment history
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Router /billing/payments [get]
func (h *BillingHandler) Payments(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	views, err := h.billingQueries.PaymentHistory(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

func (h *BillingHandler) items(c *gin.Context, load func(context.Context, int64) ([]*queries.BillingItemView, error)) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	items, err := load(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBillingItems(items))
}
