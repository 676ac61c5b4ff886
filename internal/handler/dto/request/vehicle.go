package request

import "parking-api/internal/usecase/commands"

type RegisterVehicleRequest struct {
	LicensePlate string `json:"license_plate" binding:"required,plate"`
	Make         string `json:"make" binding:"max=50"`
	Model        string `json:"model" binding:"max=50"`
	Color        string `json:"color" binding:"max=30"`
	Year         int32  `json:"year" binding:"omitempty,gte=1900,lte=2100"`
}

func (r *RegisterVehicleRequest) ToCommand() commands.RegisterVehicleRequest {
	return commands.RegisterVehicleRequest{
		LicensePlate: r.LicensePlate,
		Make:         r.Make,
		Model:        r.Model,
		Color:        r.Color,
		Year:         r.Year,
	}
}
