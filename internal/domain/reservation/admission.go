package reservation

import (
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const (
	// MaxPerSlot is the capacity of one (date, time) slot.
	MaxPerSlot = 6

	// ConflictWindowHours is compared against hour components only, so
	// 7:59 PM and 9:00 PM do not conflict while 7:00 PM and 7:45 PM do.
	ConflictWindowHours = 2
)

type Availability struct {
	Available       bool `json:"available"`
	CurrentCount    int  `json:"currentCount"`
	MaxReservations int  `json:"maxReservations"`
	RemainingSlots  int  `json:"remainingSlots"`
}

// CheckConflict rejects candidateTime when any other reservation of the same
// day starts less than ConflictWindowHours hours away. Cancelled
// reservations still count. Records whose stored time cannot be parsed are
// ignored.
func CheckConflict(candidateTime string, sameDay []models.Reservation, excludeID string) error {
	candidateHour, err := HourOf(candidateTime)
	if err != nil {
		return err
	}

	for _, other := range sameDay {
		if excludeID != "" && other.ID == excludeID {
			continue
		}

		otherHour, err := HourOf(other.Time)
		if err != nil {
			continue
		}

		if abs(candidateHour-otherHour) < ConflictWindowHours {
			return httperr.ErrBusinessf(
				CodeTimeConflict,
				"Time slot conflicts with existing reservation at %s",
				other.Time,
			)
		}
	}

	return nil
}

// CheckCapacity counts the non-cancelled reservations of one slot and
// rejects when the slot already holds MaxPerSlot of them.
func CheckCapacity(slot []models.Reservation, excludeID string) (Availability, error) {
	count := 0
	for _, r := range slot {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if Status(r.Status) == StatusCancelled {
			continue
		}
		count++
	}

	a := Availability{
		Available:       true,
		CurrentCount:    count,
		MaxReservations: MaxPerSlot,
		RemainingSlots:  MaxPerSlot - count,
	}

	if count >= MaxPerSlot {
		a.Available = false
		a.RemainingSlots = 0
		return a, httperr.ErrBusinessf(
			CodeSlotFull,
			"Time slot is full. Maximum %d reservations allowed for this date and time.",
			MaxPerSlot,
		)
	}

	return a, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
