package availability

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
	rg.GET("/availability", h.GetAvailability)
}

// GetAvailability serves both shapes: with ?date= it returns the slot list
// for that date, without it the bookable date list.
func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")

	if date == "" {
		dates, err := h.service.ListAvailableDates(c.Request.Context(), c.Query("from"), c.Query("to"))
		if err != nil {
			switch err {
			case ErrInvalidDate:
				response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Dates must be formatted YYYY-MM-DD")
			default:
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
			}
			return
		}
		response.Success(c, http.StatusOK, gin.H{"dates": dates})
		return
	}

	slots, err := h.service.ListAvailableSlots(c.Request.Context(), date)
	if err != nil {
		switch err {
		case ErrInvalidDate:
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date, "slots": slots})
}
