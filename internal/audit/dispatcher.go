package audit

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	ActionCreated       = "reservation_created"
	ActionUpdated       = "reservation_updated"
	ActionStatusChanged = "reservation_status_changed"
	ActionDeleted       = "reservation_deleted"
	ActionRejected      = "reservation_rejected"

	EntityReservation = "reservation"

	queueSize    = 100
	writeTimeout = 5 * time.Second
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes audit events from a single background worker. Write
// errors are logged and never reach the caller.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.logger.Log(
			ctx,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("[audit] write error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop, the request must not block on auditing
		log.Println("[audit] queue full, dropping event", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
