package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type CreateReservationInput struct {
	Name        string
	Email       string
	PhoneNumber string

	// Date is any instant on the reservation day.
	Date   time.Time
	Time   string
	Guests int
}

type CreateReservation struct {
	repo domain.Repository
	deps Deps
}

func NewCreateReservation(repo domain.Repository, deps Deps) *CreateReservation {
	return &CreateReservation{repo: repo, deps: deps}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	day := domain.DayOf(in.Date, uc.deps.location())
	clock := strings.TrimSpace(in.Time)

	if err := admit(ctx, uc.repo, uc.deps, day, clock, ""); err != nil {
		return nil, err
	}

	r := &models.Reservation{
		Name:        strings.TrimSpace(in.Name),
		Email:       domain.NormalizeEmail(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Date:        day,
		Time:        clock,
		Guests:      in.Guests,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	uc.deps.Metrics.IncCreated()

	// confirmation is best effort
	if uc.deps.Notifier != nil {
		if err := uc.deps.Notifier.SendConfirmation(ctx, r); err != nil {
			uc.deps.Metrics.IncEmail(metrics.EmailFailed)
		} else {
			uc.deps.Metrics.IncEmail(metrics.EmailSent)
		}
	}

	uc.deps.dispatch(audit.ActionCreated, r.ID, map[string]any{
		"date":   day.Format(domain.DateLayout),
		"time":   r.Time,
		"guests": r.Guests,
	})
	uc.deps.publish(ctx, events.RKReservationCreated, r)

	return r, nil
}
