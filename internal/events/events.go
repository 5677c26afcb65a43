package events

import (
	"context"
	"log"
	"time"
)

const (
	RKReservationCreated       = "reservation.created"
	RKReservationUpdated       = "reservation.updated"
	RKReservationStatusChanged = "reservation.status_changed"
	RKReservationDeleted       = "reservation.deleted"
)

type ReservationEvent struct {
	ReservationID string    `json:"reservation_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) PublishJSON(context.Context, string, any) error { return nil }

func (Nop) Close() error { return nil }

// Publish sends ev and only logs failures.
func Publish(ctx context.Context, p Publisher, key string, ev ReservationEvent) {
	if p == nil {
		return
	}
	if err := p.PublishJSON(ctx, key, ev); err != nil {
		log.Printf("[events] publish %s failed: %v", key, err)
	}
}
