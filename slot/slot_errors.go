package slot

import "errors"

var ErrSlotNotFound = errors.New("slot not found")

var ErrSlotBooked = errors.New("slot has an active booking")

var ErrDuplicateSlot = errors.New("slot already exists for this window")

var ErrInvalidSlot = errors.New("invalid slot")
