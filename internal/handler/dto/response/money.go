package response

import (
	"parking-api/internal/domain/pricing"

	"gopkg.in/guregu/null.v4"
)

func units(cents int64) float64 {
	return pricing.NewMoney(cents).Units()
}

func nullUnits(cents null.Int) null.Float {
	if !cents.Valid {
		return null.Float{}
	}
	return null.FloatFrom(units(cents.Int64))
}
