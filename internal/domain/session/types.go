package session

type Status string

// StatusPaid and StatusCompleted are both settled markers. Billing history accepts
// either one.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOutstanding reports whether the session still belongs in the upcoming view.
func (s Status) IsOutstanding() bool {
	return s != StatusCancelled && s != StatusPaid
}

// IsSettled reports whether the session belongs in billing history.
func (s Status) IsSettled() bool {
	return s == StatusPaid || s == StatusCompleted
}
