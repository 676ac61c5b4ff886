package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOutstanding reports whether the reservation still expects a payment.
func (s Status) IsOutstanding() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) checkPayable() error {
	switch s {
	case StatusPaid:
		return ErrAlreadyPaid
	case StatusCancelled:
		return ErrCancelledNotPayable
	}
	return nil
}
