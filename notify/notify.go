// Package notify fans booking events out to the collaborators that care about them.
// Every sink is fire-and-forget from the booking service's point of view.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/turf-booking-backend/booking"
	"go.uber.org/zap"
)

// Multi publishes to every sink and joins their errors.
type Multi []booking.Publisher

func (m Multi) Publish(ctx context.Context, event booking.Event) error {
	var errs []error

	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Log records every event at info level.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Publish(ctx context.Context, event booking.Event) error {
	ids := make([]string, 0, len(event.Bookings))
	for _, b := range event.Bookings {
		ids = append(ids, b.ID)
	}

	l.logger.Info("booking event",
		zap.String("event", string(event.Type)),
		zap.String("batchId", event.BatchID),
		zap.String("userId", event.UserID),
		zap.Strings("bookingIds", ids),
		zap.Int64("amountDue", event.AmountDue),
		zap.Int64("refundDue", event.RefundDue),
		zap.String("reason", event.Reason),
	)

	return nil
}

//go:generate mockgen -destination=mocks/notify_mocks.go -package=mocks . JSONPublisher

type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Envelope is the message body put on the bus; the routing key is the event type.
type Envelope struct {
	Event   booking.EventType `json:"event"`
	Version int               `json:"version"`
	Data    booking.Event     `json:"data"`
}

// Bus forwards events to a topic exchange: payment.requested for the payment
// collaborator, booking.* for notification services.
type Bus struct {
	pub JSONPublisher
}

func NewBus(pub JSONPublisher) *Bus {
	return &Bus{pub: pub}
}

func (b *Bus) Publish(ctx context.Context, event booking.Event) error {
	if err := b.pub.PublishJSON(ctx, string(event.Type), Envelope{Event: event.Type, Version: 1, Data: event}); err != nil {
		return fmt.Errorf("failed to forward %s: %w", event.Type, err)
	}
	return nil
}
