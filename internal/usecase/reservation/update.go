package reservation

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type UpdateReservation struct {
	repo domain.Repository
	deps Deps
}

func NewUpdateReservation(repo domain.Repository, deps Deps) *UpdateReservation {
	return &UpdateReservation{repo: repo, deps: deps}
}

// Execute applies patch. When the patch moves the reservation the merged
// record is re-admitted against everyone else on the target day.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Reservation, error) {

	if patch.Date != nil {
		day := domain.DayOf(*patch.Date, uc.deps.location())
		patch.Date = &day
	}

	if patch.TouchesSchedule() {
		current, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		merged := *current
		patch.Apply(&merged)

		day := domain.DayOf(merged.Date, uc.deps.location())
		if err := admit(ctx, uc.repo, uc.deps, day, merged.Time, id); err != nil {
			return nil, err
		}
	}

	r, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch(audit.ActionUpdated, r.ID, map[string]any{
		"fields": changedFields(patch),
	})
	uc.deps.publish(ctx, events.RKReservationUpdated, r)

	return r, nil
}

func changedFields(p domain.Patch) []string {
	cols := p.Columns()
	out := make([]string, 0, len(cols))
	for k := range cols {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// UpdateReservationStatus changes only the status and never re-runs
// admission.
type UpdateReservationStatus struct {
	repo domain.Repository
	deps Deps
}

func NewUpdateReservationStatus(repo domain.Repository, deps Deps) *UpdateReservationStatus {
	return &UpdateReservationStatus{repo: repo, deps: deps}
}

func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Reservation, error) {

	if !status.IsValid() {
		return nil, invalidStatus(status)
	}

	r, err := uc.repo.Update(ctx, id, domain.Patch{Status: &status})
	if err != nil {
		return nil, err
	}

	uc.deps.dispatch(audit.ActionStatusChanged, r.ID, map[string]any{
		"status": r.Status,
	})
	uc.deps.publish(ctx, events.RKReservationStatusChanged, r)

	return r, nil
}
