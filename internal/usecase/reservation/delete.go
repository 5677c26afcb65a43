package reservation

import (
	"context"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type DeleteReservation struct {
	repo domain.Repository
	deps Deps
}

func NewDeleteReservation(repo domain.Repository, deps Deps) *DeleteReservation {
	return &DeleteReservation{repo: repo, deps: deps}
}

// Execute hard-deletes the reservation. A second delete reports not found.
func (uc *DeleteReservation) Execute(ctx context.Context, id string) (*models.Reservation, error) {
	r, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch(audit.ActionDeleted, r.ID, map[string]any{
		"date": r.Date.In(uc.deps.location()).Format(domain.DateLayout),
		"time": r.Time,
	})
	uc.deps.publish(ctx, events.RKReservationDeleted, r)

	return r, nil
}
