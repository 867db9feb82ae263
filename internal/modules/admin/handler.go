package admin

import (
	"errors"
	"net/http"

	"beautystudio/internal/domain"
	"beautystudio/internal/pkg/response"
	"beautystudio/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.GetRules)
	rg.PUT("/schedule/hours", h.PutBusinessHours)
	rg.PUT("/schedule/slots", h.PutSlotTemplates)
	rg.PUT("/schedule/window", h.PutBookingWindow)
	rg.PUT("/schedule/policies", h.PutBookingPolicies)
	rg.PUT("/schedule/blackouts", h.PutFullyBookedDates)
}

func (h *Handler) GetRules(c *gin.Context) {
	rules, err := h.service.GetRules(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load schedule rules")
		return
	}

	blackouts := make([]string, 0, len(rules.FullyBooked))
	for d := range rules.FullyBooked {
		blackouts = append(blackouts, d)
	}

	response.Success(c, http.StatusOK, gin.H{
		"business_hours":            rules.Hours,
		"slot_templates":            rules.Templates,
		"booking_window":            rules.Window,
		"min_booking_date":          rules.MinBookingDate,
		"min_advance_notice_hours":  int(rules.MinAdvanceNotice.Hours()),
		"cancellation_policy_hours": rules.CancellationPolicyHours,
		"fully_booked_dates":        blackouts,
	})
}

func (h *Handler) PutBusinessHours(c *gin.Context) {
	var req domain.BusinessHours
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.save(c, h.service.SaveBusinessHours(c.Request.Context(), req))
}

func (h *Handler) PutSlotTemplates(c *gin.Context) {
	var req domain.SlotTemplates
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.save(c, h.service.SaveSlotTemplates(c.Request.Context(), req))
}

func (h *Handler) PutBookingWindow(c *gin.Context) {
	var req domain.BookingWindow
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.save(c, h.service.SaveBookingWindow(c.Request.Context(), req))
}

func (h *Handler) PutBookingPolicies(c *gin.Context) {
	var req repository.BookingPolicies
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.save(c, h.service.SaveBookingPolicies(c.Request.Context(), req))
}

func (h *Handler) PutFullyBookedDates(c *gin.Context) {
	var req []string
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	h.save(c, h.service.SaveFullyBookedDates(c.Request.Context(), req))
}

func (h *Handler) save(c *gin.Context, err error) {
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save schedule rules")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}
