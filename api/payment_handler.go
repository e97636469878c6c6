package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/identity"
)

type PaymentService interface {
	ConfirmPayment(ctx context.Context, ref string) ([]bk.Booking, error)
	FailPayment(ctx context.Context, ref, reason string) ([]bk.Booking, error)
}

// PaymentHandler lets a super admin settle a batch by hand when the payment collaborator
// cannot deliver its event.
type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	superAdmin := RequireRole(identity.RoleSuperAdmin)
	rg.PUT("/:ref/confirm", superAdmin, h.Confirm)
	rg.PUT("/:ref/fail", superAdmin, h.Fail)
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	bookings, err := h.service.ConfirmPayment(c.Request.Context(), c.Param("ref"))

	if err != nil {
		respondError(c, err, "failed to confirm payment")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *PaymentHandler) Fail(c *gin.Context) {
	reason := c.Query("reason")
	if reason == "" {
		reason = "payment failed"
	}

	bookings, err := h.service.FailPayment(c.Request.Context(), c.Param("ref"), reason)

	if err != nil {
		respondError(c, err, "failed to record payment failure")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}
