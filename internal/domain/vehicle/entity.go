package vehicle

import (
	"regexp"
	"strings"
	"time"

	"parking-api/internal/pkg/errs"
)

var (
	ErrInvalidPlate    = errs.NewKind(errs.KindValidation, "license plate must be 2 to 16 letters, digits or dashes")
	ErrVehicleNotFound = errs.NewKind(errs.KindNotFound, "vehicle not found")
	ErrPlateTaken      = errs.NewKind(errs.KindConflict, "license plate is already registered")
)

// PlatePattern is shared with the request validator.
var PlatePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{1,15}$`)

// NormalizePlate upper-cases the plate and strips spaces so "ab 123" and "AB123" match.
func NormalizePlate(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

type Details struct {
	Make  string
	Model string
	Color string
	Year  int32
}

type Vehicle struct {
	id           int64
	userID       int64
	licensePlate string
	details      Details
	createdAt    time.Time
}

func NewVehicle(userID int64, plate string, details Details, now time.Time) (*Vehicle, error) {
	plate = NormalizePlate(plate)
	if !PlatePattern.MatchString(plate) {
		return nil, ErrInvalidPlate
	}
	return &Vehicle{
		userID:       userID,
		licensePlate: plate,
		details:      details,
		createdAt:    now,
	}, nil
}

func ReconstructVehicle(id, userID int64, plate string, details Details, createdAt time.Time) *Vehicle {
	return &Vehicle{
		id:           id,
		userID:       userID,
		licensePlate: plate,
		details:      details,
		createdAt:    createdAt,
	}
}

func (v *Vehicle) ID() int64            { return v.id }
func (v *Vehicle) UserID() int64        { return v.userID }
func (v *Vehicle) LicensePlate() string { return v.licensePlate }
func (v *Vehicle) Details() Details     { return v.details }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
