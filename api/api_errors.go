package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/slot"
	"github.com/hanksha/turf-booking-backend/turf"
)

// respondError records err on the context and writes the matching status. Anything not
// recognized is reported as a 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	var unavailable *booking.SlotUnavailableError
	var transition *booking.TransitionError

	switch {
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "slots unavailable", "slotIds": unavailable.SlotIDs})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid booking state", "status": transition.From})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid booking state"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, turf.ErrTurfNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
	case errors.Is(err, slot.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
	case errors.Is(err, booking.ErrNotAllowed), errors.Is(err, turf.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, booking.ErrTurfUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "turf is not open for booking"})
	case errors.Is(err, slot.ErrSlotBooked):
		c.JSON(http.StatusConflict, gin.H{"error": "slot has an active booking"})
	case errors.Is(err, slot.ErrDuplicateSlot):
		c.JSON(http.StatusConflict, gin.H{"error": "slot already exists"})
	case errors.Is(err, booking.ErrValidation),
		errors.Is(err, turf.ErrInvalidTurf),
		errors.Is(err, slot.ErrInvalidSlot),
		errors.Is(err, clock.ErrInvalidDate),
		errors.Is(err, clock.ErrInvalidTimeOfDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
