package booking

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
	rg.POST("/bookings", h.Reserve)
}

func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Reserve(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case ErrServiceNotFound:
			response.Error(c, http.StatusBadRequest, "SERVICE_NOT_FOUND", "Unknown service")
		case ErrSlotNotOffered, ErrSlotTaken:
			// Read/reserve races end up here: the slot looked open but was
			// claimed first. The client should pick another time.
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "This time is no longer available, please pick another")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":           b.ID,
			"status":       b.Status,
			"date":         b.Date,
			"slot_time":    b.SlotTime,
			"final_price":  b.FinalPrice,
			"manage_token": b.ManageToken,
		},
	})
}
