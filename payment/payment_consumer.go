// Package payment consumes the payment collaborator's settlement events and drives the
// matching booking transitions.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/patrickmn/go-cache"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	KeyPaid   = "payment.paid"
	KeyFailed = "payment.failed"
)

var RoutingKeys = []string{KeyPaid, KeyFailed}

// Settlement is the body of a payment.paid or payment.failed message.
type Settlement struct {
	Event   string `json:"event"`
	Version int    `json:"version"`
	Data    struct {
		PaymentID string `json:"payment_id"`
		BatchID   string `json:"batch_id"`
		Amount    int64  `json:"amount"`
		Reason    string `json:"reason"`
	} `json:"data"`
}

//go:generate mockgen -destination=mocks/payment_mocks.go -package=mocks . Settler,Source

type Settler interface {
	ConfirmPayment(ctx context.Context, ref string) ([]booking.Booking, error)
	FailPayment(ctx context.Context, ref, reason string) ([]booking.Booking, error)
}

type Source interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

type Consumer struct {
	settler   Settler
	source    Source
	processed *cache.Cache
	logger    *zap.Logger
}

func NewConsumer(settler Settler, source Source, logger *zap.Logger) *Consumer {
	return &Consumer{
		settler:   settler,
		source:    source,
		processed: cache.New(24*time.Hour, time.Hour),
		logger:    logger,
	}
}

// Run handles deliveries until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.source.Deliveries(ctx)

	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.Handle(ctx, d)
		}
	}
}

// Handle settles one delivery. Malformed messages are dropped, messages about bookings
// that no longer accept the transition are acknowledged, anything else is requeued.
func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	if d.RoutingKey != KeyPaid && d.RoutingKey != KeyFailed {
		_ = d.Ack(false)
		return
	}

	var msg Settlement

	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.logger.Warn("failed to decode payment event", zap.String("key", d.RoutingKey), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}

	if msg.Data.BatchID == "" || msg.Data.PaymentID == "" {
		c.logger.Warn("invalid payment event payload", zap.String("key", d.RoutingKey))
		_ = d.Ack(false)
		return
	}

	dedupeKey := d.RoutingKey + ":" + msg.Data.PaymentID

	if _, seen := c.processed.Get(dedupeKey); seen {
		_ = d.Ack(false)
		return
	}

	var err error

	if d.RoutingKey == KeyPaid {
		_, err = c.settler.ConfirmPayment(ctx, msg.Data.BatchID)
	} else {
		reason := msg.Data.Reason
		if reason == "" {
			reason = "payment failed"
		}
		_, err = c.settler.FailPayment(ctx, msg.Data.BatchID, reason)
	}

	switch {
	case err == nil:
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrValidation):
		c.logger.Warn("payment event not applicable",
			zap.String("key", d.RoutingKey),
			zap.String("batchId", msg.Data.BatchID),
			zap.String("paymentId", msg.Data.PaymentID),
			zap.Error(err),
		)
	default:
		c.logger.Error("failed to apply payment event", zap.String("batchId", msg.Data.BatchID), zap.Error(err))
		_ = d.Nack(false, true)
		return
	}

	c.processed.Set(dedupeKey, struct{}{}, cache.DefaultExpiration)
	_ = d.Ack(false)
}
