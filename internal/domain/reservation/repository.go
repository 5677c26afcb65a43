package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// Repository is the persistence port. Lookups by day expect day to be
// midnight in the restaurant time zone. Missing records yield ErrNotFound.
type Repository interface {
	Create(ctx context.Context, r *models.Reservation) error

	// FindAll returns every reservation, newest first.
	FindAll(ctx context.Context) ([]models.Reservation, error)

	FindByID(ctx context.Context, id string) (*models.Reservation, error)

	Update(ctx context.Context, id string, patch Patch) (*models.Reservation, error)

	// Delete removes the record and returns it as it was.
	Delete(ctx context.Context, id string) (*models.Reservation, error)

	FindByDate(ctx context.Context, day time.Time) ([]models.Reservation, error)

	FindByDateAndTime(ctx context.Context, day time.Time, clock string) ([]models.Reservation, error)

	// FindByStatus returns matching reservations, newest first.
	FindByStatus(ctx context.Context, status Status) ([]models.Reservation, error)
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Date        *time.Time
	Time        *string
	Guests      *int
	Status      *Status
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.Date == nil && p.Time == nil && p.Guests == nil && p.Status == nil
}

// TouchesSchedule reports whether the patch moves the reservation.
func (p Patch) TouchesSchedule() bool {
	return p.Date != nil || p.Time != nil
}

func (p Patch) Apply(r *models.Reservation) {
	if p.Name != nil {
		r.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		r.Email = NormalizeEmail(*p.Email)
	}
	if p.PhoneNumber != nil {
		r.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Guests != nil {
		r.Guests = *p.Guests
	}
	if p.Status != nil {
		r.Status = string(*p.Status)
	}
}

// Columns maps the patch to store column names, after normalization.
func (p Patch) Columns() map[string]any {
	var r models.Reservation
	p.Apply(&r)

	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = r.Name
	}
	if p.Email != nil {
		cols["email"] = r.Email
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = r.PhoneNumber
	}
	if p.Date != nil {
		cols["date"] = r.Date
	}
	if p.Time != nil {
		cols["time"] = r.Time
	}
	if p.Guests != nil {
		cols["guests"] = r.Guests
	}
	if p.Status != nil {
		cols["status"] = r.Status
	}
	return cols
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
