package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/slot"
)

type SlotService interface {
	ListSlots(ctx context.Context, turfID string, date clock.Date) ([]slot.Slot, error)
	AddSlot(ctx context.Context, turfID string, date clock.Date, hour int, actor identity.Actor) (slot.Slot, error)
	RemoveSlot(ctx context.Context, id string, actor identity.Actor) error
}

type AvailabilityService interface {
	ListAvailableSlots(ctx context.Context, turfID string, date clock.Date) ([]bk.PricedSlot, error)
	Sweep(ctx context.Context) ([]bk.Booking, error)
}

type SlotHandler struct {
	slots        SlotService
	availability AvailabilityService
}

func NewSlotHandler(slots SlotService, availability AvailabilityService) *SlotHandler {
	return &SlotHandler{slots: slots, availability: availability}
}

type addSlotRequest struct {
	Date clock.Date `json:"date"`
	Hour *int       `json:"hour" binding:"required"`
}

// Register expects the /api/v1 group.
func (h *SlotHandler) Register(rg *gin.RouterGroup) {
	admins := RequireRole(identity.RoleTurfAdmin, identity.RoleSuperAdmin)
	rg.GET("/turfs/:id/slots", h.ListAvailable)
	rg.GET("/turfs/:id/slots/all", h.ListAll)
	rg.POST("/turfs/:id/slots", admins, h.Add)
	rg.DELETE("/slots/:id", admins, h.Remove)
}

// ListAvailable returns the bookable slots of a turf on ?date= with their prices.
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	date, err := clock.ParseDate(c.Query("date"))

	if err != nil {
		respondError(c, err, "failed to list slots")
		return
	}

	slots, err := h.availability.ListAvailableSlots(c.Request.Context(), c.Param("id"), date)

	if err != nil {
		respondError(c, err, "failed to list slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

// ListAll returns every slot of a turf on ?date=, booked or not. Elapsed bookings are
// expired first so their slots read as free.
func (h *SlotHandler) ListAll(c *gin.Context) {
	date, err := clock.ParseDate(c.Query("date"))

	if err != nil {
		respondError(c, err, "failed to list slots")
		return
	}

	if _, err := h.availability.Sweep(c.Request.Context()); err != nil {
		respondError(c, err, "failed to list slots")
		return
	}

	slots, err := h.slots.ListSlots(c.Request.Context(), c.Param("id"), date)

	if err != nil {
		respondError(c, err, "failed to list slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *SlotHandler) Add(c *gin.Context) {
	var req addSlotRequest

	if err := c.ShouldBindJSON(&req); err != nil || req.Date.IsZero() {
		if err != nil {
			c.Error(err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.slots.AddSlot(c.Request.Context(), c.Param("id"), req.Date, *req.Hour, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to add slot")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *SlotHandler) Remove(c *gin.Context) {
	if err := h.slots.RemoveSlot(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		respondError(c, err, "failed to remove slot")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "slot removed"})
}
