package converter

import (
	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/user"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlstore.CreateUserParams {
	return sqlstore.CreateUserParams{
		Email:        u.Email().Value(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserFromRow(row sqlstore.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.Name, row.PasswordHash,
		role,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.CreatedAt.Time,
	), nil
}

func LotToParams(l *lot.ParkingLot) sqlstore.ParkingLotParams {
	a := l.Attributes()
	var day *int64
	if a.DayTariff != nil {
		cents := a.DayTariff.Cents()
		day = &cents
	}
	var reason *string
	if a.ClosedReason != "" {
		reason = &a.ClosedReason
	}
	return sqlstore.ParkingLotParams{
		Name:              a.Name,
		Location:          a.Location,
		Address:           a.Address,
		Capacity:          a.Capacity,
		HourlyTariffCents: a.Hourly.Cents(),
		DayTariffCents:    pgconv.Int64PtrToPgtype(day),
		Lat:               a.Lat,
		Lng:               a.Lng,
		Status:            a.Status,
		ClosedReason:      pgconv.StringPtrToPgtype(reason),
		ClosedDate:        pgconv.DatePtrToPgtype(a.ClosedDate),
	}
}

func LotFromRow(row sqlstore.ParkingLot) *lot.ParkingLot {
	attrs := lot.Attributes{
		Name:       row.Name,
		Location:   row.Location,
		Address:    row.Address,
		Capacity:   row.Capacity,
		Hourly:     pricing.NewMoney(row.HourlyTariffCents),
		DayTariff:  moneyPtrFromPgtype(row.DayTariffCents),
		Lat:        row.Lat,
		Lng:        row.Lng,
		Status:     row.Status,
		ClosedDate: pgconv.DatePtrFromPgtype(row.ClosedDate),
	}
	if reason := pgconv.StringPtrFromPgtype(row.ClosedReason); reason != nil {
		attrs.ClosedReason = *reason
	}
	return lot.ReconstructParkingLot(row.ID, attrs, row.Reserved, row.CreatedAt.Time)
}

func VehicleToCreateParams(v *vehicle.Vehicle) sqlstore.CreateVehicleParams {
	d := v.Details()
	return sqlstore.CreateVehicleParams{
		UserID:       v.UserID(),
		LicensePlate: v.LicensePlate(),
		Make:         d.Make,
		Model:        d.Model,
		Color:        d.Color,
		Year:         d.Year,
		CreatedAt:    pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func VehicleFromRow(row sqlstore.Vehicle) *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(
		row.ID, row.UserID,
		row.LicensePlate,
		vehicle.Details{Make: row.Make, Model: row.Model, Color: row.Color, Year: row.Year},
		row.CreatedAt.Time,
	)
}
