package sqlstore

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}

type ParkingLot struct {
	ID                int64
	Name              string
	Location          string
	Address           string
	Capacity          int32
	Reserved          int32
	HourlyTariffCents int64
	DayTariffCents    pgtype.Int8
	Lat               float64
	Lng               float64
	Status            string
	ClosedReason      pgtype.Text
	ClosedDate        pgtype.Date
	CreatedAt         pgtype.Timestamptz
}

type Vehicle struct {
	ID           int64
	UserID       int64
	LicensePlate string
	Make         string
	Model        string
	Color        string
	Year         int32
	CreatedAt    pgtype.Timestamptz
}

type Reservation struct {
	ID           string
	UserID       int64
	ParkingLotID int64
	VehicleID    int64
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	CostCents    int64
	Status       string
	CreatedAt    pgtype.Timestamptz
	Version      int32
}

type ParkingSession struct {
	ID           int64
	UserID       int64
	VehicleID    int64
	LicensePlate string
	ParkingLotID int64
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	CostCents    pgtype.Int8
	Status       string
	Version      int32
}

type Payment struct {
	TransactionID string
	ReservationID string
	AmountCents   int64
	TAmountCents  int64
	Method        string
	Status        string
	CreatedAt     pgtype.Timestamptz
	CompletedAt   pgtype.Timestamptz
	Hash          string
	Initiator     string
	TDate         pgtype.Timestamptz
	Version       int32
}

type IdempotencyKey struct {
	Key           string
	UserID        int64
	RequestHash   string
	TransactionID pgtype.Text
	CreatedAt     pgtype.Timestamptz
	ExpiresAt     pgtype.Timestamptz
}

type OutboxEvent struct {
	ID          int64
	Aggregate   string
	AggregateID string
	EventType   string
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
	SentAt      pgtype.Timestamptz
}
