package manage

import (
	"net/http"

	"beautystudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/manage/:token", h.Get)
	rg.POST("/manage/:token/reschedule", h.Reschedule)
	rg.POST("/manage/:token/service", h.ChangeService)
	rg.POST("/manage/:token/cancel", h.Cancel)
}

func (h *Handler) Get(c *gin.Context) {
	b, flags, err := h.service.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b, "management": flags})
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), c.Param("token"), req.Date, req.SlotTime)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ChangeService(c *gin.Context) {
	var req ChangeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.ChangeService(c.Request.Context(), c.Param("token"), req.ServiceID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), c.Param("token"), req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "This change is no longer available, please contact the studio")
	case ErrSlotUnavailable:
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "This time is no longer available, please pick another")
	case ErrServiceNotFound:
		response.Error(c, http.StatusBadRequest, "SERVICE_NOT_FOUND", "Unknown service")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
