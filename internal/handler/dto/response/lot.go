package response

import (
	"time"

	"parking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"gopkg.in/guregu/null.v4"
)

type LotResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Address      string      `json:"address"`
	Capacity     int32       `json:"capacity"`
	Reserved     int32       `json:"reserved"`
	HourlyTariff float64     `json:"hourly_tariff" copier:"-"`
	DayTariff    null.Float  `json:"day_tariff" copier:"-"`
	Lat          float64     `json:"lat"`
	Lng          float64     `json:"lng"`
	Status       string      `json:"status"`
	ClosedReason null.String `json:"closed_reason"`
	ClosedDate   null.Time   `json:"closed_date"`
	CreatedAt    time.Time   `json:"created_at"`
}

func FromLotView(v *queries.LotView) (*LotResponse, error) {
	res := &LotResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	res.HourlyTariff = units(v.HourlyTariffCents)
	res.DayTariff = nullUnits(v.DayTariffCents)
	return res, nil
}

func FromLotViews(views []*queries.LotView) ([]*LotResponse, error) {
	res := make([]*LotResponse, 0, len(views))
	for _, v := range views {
		r, err := FromLotView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}
