package reservation

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/models"
)

type Notifier interface {
	SendConfirmation(ctx context.Context, r *models.Reservation) error
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// Deps are the collaborators shared by every reservation use case. Any of
// them may be left nil.
type Deps struct {
	Location *time.Location
	Notifier Notifier
	Audit    AuditDispatcher
	Events   events.Publisher
	Metrics  *metrics.Metrics
}

func (d Deps) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

func (d Deps) dispatch(action, entityID string, metadata any) {
	if d.Audit == nil {
		return
	}
	d.Audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   audit.EntityReservation,
		EntityID: entityID,
		Metadata: metadata,
	})
}

func (d Deps) publish(ctx context.Context, key string, r *models.Reservation) {
	events.Publish(ctx, d.Events, key, events.ReservationEvent{
		ReservationID: r.ID,
		Date:          r.Date.In(d.location()).Format(domain.DateLayout),
		Time:          r.Time,
		Guests:        r.Guests,
		Status:        r.Status,
		OccurredAt:    time.Now().UTC(),
	})
}

// ======================================================
// ADMISSION
// ======================================================

// admit runs the conflict check and then the capacity check for a
// reservation placed at (day, clock). excludeID skips the record being moved.
func admit(
	ctx context.Context,
	repo domain.Repository,
	deps Deps,
	day time.Time,
	clock string,
	excludeID string,
) error {

	sameDay, err := repo.FindByDate(ctx, day)
	if err != nil {
		return err
	}
	if err := domain.CheckConflict(clock, sameDay, excludeID); err != nil {
		deps.reject(err, day, clock, excludeID)
		return err
	}

	slot, err := repo.FindByDateAndTime(ctx, day, clock)
	if err != nil {
		return err
	}
	if _, err := domain.CheckCapacity(slot, excludeID); err != nil {
		deps.reject(err, day, clock, excludeID)
		return err
	}

	return nil
}

func (d Deps) reject(err error, day time.Time, clock, entityID string) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		return
	}

	d.Metrics.IncRejected(be.Code)
	d.dispatch(audit.ActionRejected, entityID, map[string]any{
		"reason": be.Code,
		"date":   day.In(d.location()).Format(domain.DateLayout),
		"time":   clock,
	})
	log.Printf("[reservations] rejected %s %s: %s", day.Format(domain.DateLayout), clock, be.Code)
}
