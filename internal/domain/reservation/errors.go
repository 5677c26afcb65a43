package reservation

import "github.com/BruksfildServices01/table-reservations/internal/httperr"

const (
	CodeNotFound      = "reservation_not_found"
	CodeTimeConflict  = "time_conflict"
	CodeSlotFull      = "slot_full"
	CodeInvalidTime   = "invalid_time"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidStatus = "invalid_status"
)

var ErrNotFound = httperr.BusinessError{
	Code:    CodeNotFound,
	Message: "Reservation not found",
}
