package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/identity"
)

//go:generate mockgen -destination=mocks/api_mocks.go -package=mocks . BookingService,PaymentService,SlotService,AvailabilityService,TurfService

type BookingService interface {
	Quote(ctx context.Context, turfID string, slotIDs []string) (bk.Quote, error)
	Reserve(ctx context.Context, turfID string, slotIDs []string, actor identity.Actor) (bk.ReserveOutcome, error)
	GetBooking(ctx context.Context, id string, actor identity.Actor) (bk.Booking, error)
	ListBookings(ctx context.Context, actor identity.Actor, filter bk.Filter) ([]bk.Booking, error)
	Cancel(ctx context.Context, id string, actor identity.Actor) (bk.CancelOutcome, error)
	Withdraw(ctx context.Context, ref string, actor identity.Actor) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type reserveRequest struct {
	TurfID  string   `json:"turfId" binding:"required"`
	SlotIDs []string `json:"slotIds" binding:"required"`
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Reserve)
	rg.POST("/quote", h.Quote)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/withdraw", h.Withdraw)
}

// List returns the bookings the caller may see, optionally narrowed by status, turfId
// and batchId.
func (h *BookingHandler) List(c *gin.Context) {
	filter := bk.Filter{
		TurfID:  c.Query("turfId"),
		BatchID: c.Query("batchId"),
	}

	if status := c.Query("status"); status != "" {
		parsed, err := bk.ParseStatus(status)

		if err != nil {
			respondError(c, err, "failed to retrieve bookings")
			return
		}

		filter.Status = parsed
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), actorFrom(c), filter)

	if err != nil {
		respondError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"), actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Reserve(c *gin.Context) {
	var req reserveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	outcome, err := h.service.Reserve(c.Request.Context(), req.TurfID, req.SlotIDs, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to reserve slots")
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

func (h *BookingHandler) Quote(c *gin.Context) {
	var req reserveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req.TurfID, req.SlotIDs)

	if err != nil {
		respondError(c, err, "failed to price slots")
		return
	}

	c.IndentedJSON(http.StatusOK, quote)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	outcome, err := h.service.Cancel(c.Request.Context(), c.Param("id"), actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, outcome)
}

// Withdraw abandons a pending checkout; the id may be a booking id or a batch id.
func (h *BookingHandler) Withdraw(c *gin.Context) {
	bookings, err := h.service.Withdraw(c.Request.Context(), c.Param("id"), actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to withdraw booking")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}
