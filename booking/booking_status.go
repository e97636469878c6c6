package booking

import (
	"fmt"
	"slices"
	"strings"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
	StatusFailed    Status = "FAILED"
)

var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// ParseStatus accepts any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))

	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}

	return status, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusExpired, StatusFailed:
		return true
	}
	return false
}

// Active reports whether a booking in this status holds its slot.
func (s Status) Active() bool {
	return slices.Contains(ActiveStatuses, s)
}

func (s Status) Terminal() bool {
	switch s {
	case StatusCancelled, StatusExpired, StatusFailed:
		return true
	}
	return false
}

// Trigger is what asks a booking to change state.
type Trigger string

const (
	TriggerPaymentSettled Trigger = "payment_settled"
	// TriggerPaymentFailed covers failed payments, payment timeouts and withdrawals.
	TriggerPaymentFailed Trigger = "payment_failed"
	TriggerCancel        Trigger = "cancel"
	TriggerExpire        Trigger = "expire"
)

// Next returns the status reached by applying t to s. Terminal statuses absorb every
// trigger; anything not listed is a *TransitionError.
func (s Status) Next(t Trigger) (Status, error) {
	if s.Terminal() {
		return s, &TransitionError{From: s, Trigger: t}
	}

	switch s {
	case StatusPending:
		switch t {
		case TriggerPaymentSettled:
			return StatusConfirmed, nil
		case TriggerPaymentFailed:
			return StatusFailed, nil
		case TriggerCancel, TriggerExpire:
		}
	case StatusConfirmed:
		switch t {
		case TriggerCancel:
			return StatusCancelled, nil
		case TriggerExpire:
			return StatusExpired, nil
		case TriggerPaymentSettled, TriggerPaymentFailed:
		}
	}

	return s, &TransitionError{From: s, Trigger: t}
}
