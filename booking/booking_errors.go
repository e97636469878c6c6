package booking

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidTransition = errors.New("invalid booking state transition")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrSlotUnavailable = errors.New("slot unavailable")

var ErrTurfUnavailable = errors.New("turf is not open for booking")

var ErrValidation = errors.New("invalid request")

// TransitionError reports a trigger the state machine refused.
type TransitionError struct {
	BookingID string
	From      Status
	Trigger   Trigger
}

func (e *TransitionError) Error() string {
	if e.BookingID == "" {
		return fmt.Sprintf("cannot apply %s to a %s booking", e.Trigger, e.From)
	}
	return fmt.Sprintf("cannot apply %s to booking %s: booking is %s", e.Trigger, e.BookingID, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SlotUnavailableError names every requested slot that could not be reserved so the
// caller can deselect them and retry with the rest.
type SlotUnavailableError struct {
	SlotIDs []string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slots unavailable: %s", strings.Join(e.SlotIDs, ", "))
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}
