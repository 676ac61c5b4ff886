package response

import (
	"time"

	"parking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	LicensePlate string    `json:"license_plate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Year         int32     `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromVehicleViews(views []*queries.VehicleView) ([]*VehicleResponse, error) {
	res := make([]*VehicleResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
