package booking

import (
	"context"
	"time"
)

type EventType string

const (
	EventPaymentRequested EventType = "payment.requested"
	EventConfirmed        EventType = "booking.confirmed"
	EventCancelled        EventType = "booking.cancelled"
	EventExpired          EventType = "booking.expired"
	EventFailed           EventType = "booking.failed"
)

// Event is emitted after a state change has been committed. Delivery is fire-and-forget.
type Event struct {
	Type               EventType `json:"event"`
	BatchID            string    `json:"batchId,omitempty"`
	UserID             string    `json:"userId,omitempty"`
	TurfID             string    `json:"turfId,omitempty"`
	Bookings           []Booking `json:"bookings"`
	AmountDue          int64     `json:"amountDue,omitempty"`
	CancellationCharge int64     `json:"cancellationCharge,omitempty"`
	RefundDue          int64     `json:"refundDue,omitempty"`
	Reason             string    `json:"reason,omitempty"`
	OccurredAt         time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PaymentTimeouts arranges for a pending batch to be failed if payment has not settled
// after the given delay.
type PaymentTimeouts interface {
	SchedulePaymentTimeout(ctx context.Context, batchID string, after time.Duration) error
}
