// Package worker schedules and runs delayed background jobs on asynq.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentTimeout = "booking:payment-timeout"

type PaymentTimeoutPayload struct {
	BatchID string `json:"batchId"`
}

func NewPaymentTimeoutTask(batchID string, after time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(PaymentTimeoutPayload{BatchID: batchID})

	if err != nil {
		return nil, nil, err
	}

	task := asynq.NewTask(TypePaymentTimeout, b)
	opts := []asynq.Option{
		asynq.ProcessIn(after),
		asynq.TaskID(TypePaymentTimeout + ":" + batchID),
		asynq.MaxRetry(5),
	}

	return task, opts, nil
}

//go:generate mockgen -destination=mocks/worker_mocks.go -package=mocks . Enqueuer,PaymentFailer

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler enqueues payment timeouts; it satisfies booking.PaymentTimeouts.
type Scheduler struct {
	client Enqueuer
}

func NewScheduler(client Enqueuer) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) SchedulePaymentTimeout(ctx context.Context, batchID string, after time.Duration) error {
	task, opts, err := NewPaymentTimeoutTask(batchID, after)

	if err != nil {
		return fmt.Errorf("failed to build payment timeout task: %w", err)
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return fmt.Errorf("failed to enqueue payment timeout for batch '%v': %w", batchID, err)
	}

	return nil
}

type PaymentFailer interface {
	FailPayment(ctx context.Context, ref, reason string) ([]booking.Booking, error)
}

// HandlePaymentTimeout fails whatever is still PENDING in the batch. A batch that already
// settled one way or the other is not an error.
func HandlePaymentTimeout(failer PaymentFailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PaymentTimeoutPayload

		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Warn("invalid payment timeout payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		failed, err := failer.FailPayment(ctx, p.BatchID, "payment timeout")

		if errors.Is(err, booking.ErrInvalidTransition) || errors.Is(err, booking.ErrBookingNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		logger.Info("payment window lapsed", zap.String("batchId", p.BatchID), zap.Int("released", len(failed)))

		return nil
	}
}

func NewServer(redis asynq.RedisConnOpt, failer PaymentFailer, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(redis, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
		Logger:      logger.Sugar(),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentTimeout, HandlePaymentTimeout(failer, logger))

	return srv, mux
}
