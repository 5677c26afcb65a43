package notify

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/table-reservations/internal/models"
)

const ConfirmationSubject = "Reservation Confirmed"

type Notifier struct {
	sender  Sender
	timeout time.Duration
}

func NewNotifier(sender Sender, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{sender: sender, timeout: timeout}
}

// SendConfirmation renders and sends the confirmation email. The error is
// returned for accounting only; callers must not fail on it.
func (n *Notifier) SendConfirmation(ctx context.Context, r *models.Reservation) error {
	html, err := RenderConfirmation(NewConfirmationData(r.Name, r.Date, r.Time, r.Guests))
	if err != nil {
		log.Printf("[email] reservation=%s: %v", r.ID, err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	id, err := n.sender.Send(ctx, Message{
		To:      r.Email,
		Subject: ConfirmationSubject,
		HTML:    html,
	})
	if err != nil {
		log.Printf("[email] reservation=%s send failed: %v", r.ID, err)
		return err
	}

	log.Printf("[email] reservation=%s sent id=%s", r.ID, id)
	return nil
}
