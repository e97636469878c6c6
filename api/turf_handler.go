package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/hanksha/turf-booking-backend/turf"
)

type TurfService interface {
	GetTurf(ctx context.Context, id string) (turf.Turf, error)
	CreateTurf(ctx context.Context, t turf.Turf, actor identity.Actor) (turf.Turf, error)
	ApproveTurf(ctx context.Context, id string, actor identity.Actor) (turf.Turf, error)
	SetStatus(ctx context.Context, id string, status turf.Status, actor identity.Actor) (turf.Turf, error)
	UpdateHours(ctx context.Context, id string, opening, closing clock.TimeOfDay, actor identity.Actor) (turf.Turf, error)
	UpdatePricing(ctx context.Context, id string, update turf.PricingUpdate, actor identity.Actor) (turf.Turf, error)
}

type TurfHandler struct {
	service TurfService
}

func NewTurfHandler(service TurfService) *TurfHandler {
	return &TurfHandler{service: service}
}

type hoursRequest struct {
	OpeningTime clock.TimeOfDay `json:"openingTime"`
	ClosingTime clock.TimeOfDay `json:"closingTime"`
}

type statusRequest struct {
	Status turf.Status `json:"status" binding:"required"`
}

func (h *TurfHandler) Register(rg *gin.RouterGroup) {
	admins := RequireRole(identity.RoleTurfAdmin, identity.RoleSuperAdmin)
	rg.GET("/:id", h.GetByID)
	rg.POST("", admins, h.Create)
	rg.PUT("/:id/hours", admins, h.UpdateHours)
	rg.PUT("/:id/pricing", admins, h.UpdatePricing)
	rg.PUT("/:id/status", admins, h.SetStatus)
	rg.PUT("/:id/approve", RequireRole(identity.RoleSuperAdmin), h.Approve)
}

func (h *TurfHandler) GetByID(c *gin.Context) {
	t, err := h.service.GetTurf(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch turf")
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}

func (h *TurfHandler) Create(c *gin.Context) {
	var t turf.Turf

	if err := c.ShouldBindJSON(&t); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateTurf(c.Request.Context(), t, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to create turf")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *TurfHandler) UpdateHours(c *gin.Context) {
	var req hoursRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	t, err := h.service.UpdateHours(c.Request.Context(), c.Param("id"), req.OpeningTime, req.ClosingTime, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to update hours")
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}

func (h *TurfHandler) UpdatePricing(c *gin.Context) {
	var update turf.PricingUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	t, err := h.service.UpdatePricing(c.Request.Context(), c.Param("id"), update, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to update pricing")
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}

func (h *TurfHandler) SetStatus(c *gin.Context) {
	var req statusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	t, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status, actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to update status")
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}

func (h *TurfHandler) Approve(c *gin.Context) {
	t, err := h.service.ApproveTurf(c.Request.Context(), c.Param("id"), actorFrom(c))

	if err != nil {
		respondError(c, err, "failed to approve turf")
		return
	}

	c.IndentedJSON(http.StatusOK, t)
}
