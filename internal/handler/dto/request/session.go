package request

type SessionRequest struct {
	LicensePlate string `json:"license_plate" binding:"required,plate"`
}
