package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

// ListReservations returns every reservation, newest first.
type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(ctx context.Context) ([]models.Reservation, error) {
	return uc.repo.FindAll(ctx)
}

// ListReservationsByDate returns one day's reservations in time-of-day order.
type ListReservationsByDate struct {
	repo domain.Repository
	deps Deps
}

func NewListReservationsByDate(repo domain.Repository, deps Deps) *ListReservationsByDate {
	return &ListReservationsByDate{repo: repo, deps: deps}
}

func (uc *ListReservationsByDate) Execute(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	rs, err := uc.repo.FindByDate(ctx, domain.DayOf(date, uc.deps.location()))
	if err != nil {
		return nil, err
	}

	domain.SortByTimeOfDay(rs)
	return rs, nil
}

type ListReservationsByStatus struct {
	repo domain.Repository
}

func NewListReservationsByStatus(repo domain.Repository) *ListReservationsByStatus {
	return &ListReservationsByStatus{repo: repo}
}

func (uc *ListReservationsByStatus) Execute(ctx context.Context, status domain.Status) ([]models.Reservation, error) {
	if !status.IsValid() {
		return nil, invalidStatus(status)
	}
	return uc.repo.FindByStatus(ctx, status)
}

func invalidStatus(s domain.Status) error {
	_, err := domain.ParseStatus(string(s))
	return err
}
