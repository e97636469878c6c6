package payment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/payment"
	payment_mocks "github.com/hanksha/turf-booking-backend/payment/mocks"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// acks records how each delivery was settled.
type acks struct {
	acked    int
	nacked   int
	requeued int
}

func (a *acks) Ack(tag uint64, multiple bool) error {
	a.acked++
	return nil
}

func (a *acks) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked++
	if requeue {
		a.requeued++
	}
	return nil
}

func (a *acks) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func delivery(a *acks, key, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: a, RoutingKey: key, Body: []byte(body)}
}

func paidBody(paymentID, batchID string) string {
	return fmt.Sprintf(`{"event":"payment.paid","version":1,"data":{"payment_id":%q,"batch_id":%q,"amount":2250}}`, paymentID, batchID)
}

type testDeps struct {
	settler  *payment_mocks.MockSettler
	source   *payment_mocks.MockSource
	consumer *payment.Consumer
	ctx      context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	settler := payment_mocks.NewMockSettler(ctrl)
	source := payment_mocks.NewMockSource(ctrl)

	return ctrl, testDeps{
		settler:  settler,
		source:   source,
		consumer: payment.NewConsumer(settler, source, zap.NewNop()),
		ctx:      context.Background(),
	}
}

func TestHandle(t *testing.T) {

	t.Run("paid confirms the batch", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").Return([]booking.Booking{{ID: "b1"}}, nil).Times(1)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))

		assert.Equal(t, &acks{acked: 1}, a)
	})

	t.Run("failed releases the batch with the reason", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().FailPayment(testDeps.ctx, "batch-1", "insufficient funds").Return(nil, nil).Times(1)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyFailed,
			`{"event":"payment.failed","version":1,"data":{"payment_id":"pay-1","batch_id":"batch-1","reason":"insufficient funds"}}`))

		assert.Equal(t, &acks{acked: 1}, a)
	})

	t.Run("failed without reason", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().FailPayment(testDeps.ctx, "batch-1", "payment failed").Return(nil, nil).Times(1)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyFailed,
			`{"event":"payment.failed","version":1,"data":{"payment_id":"pay-1","batch_id":"batch-1"}}`))

		assert.Equal(t, 1, a.acked)
	})

	t.Run("redelivered payment is applied once", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").Return(nil, nil).Times(1)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))
		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))

		assert.Equal(t, &acks{acked: 2}, a)
	})

	t.Run("malformed body is dropped", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Times(0)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, "{"))

		assert.Equal(t, &acks{nacked: 1}, a)
	})

	t.Run("missing ids are acknowledged", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Times(0)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("", "batch-1")))

		assert.Equal(t, &acks{acked: 1}, a)
	})

	t.Run("unknown routing key", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, "payment.refunded", paidBody("pay-1", "batch-1")))

		assert.Equal(t, &acks{acked: 1}, a)
	})

	t.Run("settled batch is acknowledged", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").
			Return(nil, &booking.TransitionError{BookingID: "b1", From: booking.StatusFailed, Trigger: booking.TriggerPaymentSettled}).Times(1)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))

		assert.Equal(t, &acks{acked: 1}, a)
	})

	t.Run("transient error is requeued and retried", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		gomock.InOrder(
			testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").Return(nil, assert.AnError),
			testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").Return(nil, nil),
		)

		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))
		testDeps.consumer.Handle(testDeps.ctx, delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1")))

		assert.Equal(t, &acks{acked: 1, nacked: 1, requeued: 1}, a)
	})
}

func TestRun(t *testing.T) {

	t.Run("drains until the channel closes", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		a := &acks{}
		deliveries := make(chan amqp.Delivery, 2)
		deliveries <- delivery(a, payment.KeyPaid, paidBody("pay-1", "batch-1"))
		deliveries <- delivery(a, payment.KeyPaid, paidBody("pay-2", "batch-2"))
		close(deliveries)

		testDeps.source.EXPECT().Deliveries(testDeps.ctx).Return((<-chan amqp.Delivery)(deliveries), nil).Times(1)
		testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-1").Return(nil, nil).Times(1)
		testDeps.settler.EXPECT().ConfirmPayment(testDeps.ctx, "batch-2").Return(nil, nil).Times(1)

		err := testDeps.consumer.Run(testDeps.ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, a.acked)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(testDeps.ctx)
		cancel()

		testDeps.source.EXPECT().Deliveries(ctx).Return(make(<-chan amqp.Delivery), nil).Times(1)

		require.NoError(t, testDeps.consumer.Run(ctx))
	})

	t.Run("source error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.source.EXPECT().Deliveries(testDeps.ctx).Return(nil, assert.AnError).Times(1)

		require.ErrorIs(t, testDeps.consumer.Run(testDeps.ctx), assert.AnError)
	})
}
