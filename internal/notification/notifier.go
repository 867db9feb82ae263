package notification

import (
	"context"
	"log"

	"beautystudio/internal/domain"
)

// Receipt carries what a payment confirmation needs regardless of which
// record family absorbed the payment.
type Receipt struct {
	Family        string
	RecordID      int64
	Email         string
	Amount        float64
	ReceiptNumber string
}

// LogNotifier is the in-process Notifier implementation: it logs instead of
// rendering outbound email. Delivery failures of a real sender are the
// sender's problem; the caller never retries.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) SendReceipt(ctx context.Context, rc Receipt) error {
	log.Printf("notify=receipt family=%s record_id=%d email=%s amount=%.2f receipt=%s",
		rc.Family, rc.RecordID, rc.Email, rc.Amount, rc.ReceiptNumber)
	return nil
}

func (n *LogNotifier) SendRescheduleConfirmation(ctx context.Context, b *domain.Booking) error {
	log.Printf("notify=reschedule booking_id=%d email=%s date=%s slot=%s",
		b.ID, b.ClientEmail, b.Date, b.SlotTime)
	return nil
}

func (n *LogNotifier) SendWelcome(ctx context.Context, email, name string) error {
	log.Printf("notify=welcome email=%s name=%s", email, name)
	return nil
}
