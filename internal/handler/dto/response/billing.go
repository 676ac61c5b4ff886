package response

import (
	"time"

	"parking-api/internal/usecase/queries"

	"gopkg.in/guregu/null.v4"
)

type BillingItemResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Date        time.Time   `json:"date"`
	Amount      null.Float  `json:"amount"`
	Status      string      `json:"status"`
	Description null.String `json:"description"`
}

func FromBillingItems(items []*queries.BillingItemView) []*BillingItemResponse {
	res := make([]*BillingItemResponse, len(items))
	for i, it := range items {
		res[i] = &BillingItemResponse{
			ID:          it.ID,
			Type:        it.Kind,
			Date:        it.Date,
			Amount:      nullUnits(it.AmountCents),
			Status:      it.Status,
			Description: it.Description,
		}
	}
	return res
}
