package reservation

import "github.com/BruksfildServices01/table-reservations/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid value in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", httperr.ErrBusinessf(
			CodeInvalidStatus,
			"Status must be one of: pending, confirmed, cancelled",
		)
	}
	return s, nil
}

// InitialStatus is the status of every newly created reservation.
func InitialStatus() Status {
	return StatusPending
}
