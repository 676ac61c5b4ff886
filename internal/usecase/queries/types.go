package queries

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Money fields are integer cents; the response layer renders them as decimals.
type LotView struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Location          string      `json:"location"`
	Address           string      `json:"address"`
	Capacity          int32       `json:"capacity"`
	Reserved          int32       `json:"reserved"`
	HourlyTariffCents int64       `json:"hourly_tariff_cents"`
	DayTariffCents    null.Int    `json:"day_tariff_cents"`
	Lat               float64     `json:"lat"`
	Lng               float64     `json:"lng"`
	Status            string      `json:"status"`
	ClosedReason      null.String `json:"closed_reason"`
	ClosedDate        null.Time   `json:"closed_date"`
	CreatedAt         time.Time   `json:"created_at"`
}

type VehicleView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	LicensePlate string    `json:"license_plate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Color        string    `json:"color"`
	Year         int32     `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationSummary struct {
	ID           string    `json:"id"`
	ParkingLotID int64     `json:"parking_lot_id"`
	VehicleID    int64     `json:"vehicle_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CostCents    int64     `json:"cost_cents"`
}

type PaymentView struct {
	TransactionID string    `json:"transaction"`
	ReservationID string    `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	TAmountCents  int64     `json:"t_amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	CompletedAt   time.Time `json:"completed_at"`
	Hash          string    `json:"hash"`
	Initiator     string    `json:"initiator"`
	TDate         time.Time `json:"t_date"`
}

// BillingItemView is cached as JSON, so it carries its own tags.
type BillingItemView struct {
	ID          string      `json:"id"`
	Kind        string      `json:"kind"`
	Date        time.Time   `json:"date"`
	AmountCents null.Int    `json:"amount_cents"`
	Status      string      `json:"status"`
	Description null.String `json:"description"`
}
