package events

import (
	"context"
	"errors"
	"testing"
)

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestPublish(t *testing.T) {
	p := &recordingPublisher{}
	Publish(context.Background(), p, RKReservationCreated, ReservationEvent{ReservationID: "x"})

	if len(p.keys) != 1 || p.keys[0] != RKReservationCreated {
		t.Errorf("keys = %v, want [%s]", p.keys, RKReservationCreated)
	}
}

func TestPublish_ErrorIsSwallowed(t *testing.T) {
	p := &recordingPublisher{err: errors.New("broker down")}
	Publish(context.Background(), p, RKReservationDeleted, ReservationEvent{})

	if len(p.keys) != 1 {
		t.Errorf("keys = %v, want one attempt", p.keys)
	}
}

func TestPublish_NilAndNop(t *testing.T) {
	Publish(context.Background(), nil, RKReservationUpdated, ReservationEvent{})

	var n Nop
	if err := n.PublishJSON(context.Background(), RKReservationUpdated, nil); err != nil {
		t.Errorf("Nop.PublishJSON = %v, want nil", err)
	}
}
