package payment

import (
	"log"
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
	rg.POST("/payments/callback", h.Callback)
	rg.POST("/payments/checkout", h.RegisterCheckout)
}

// Callback handles the provider's asynchronous payment notification. The
// provider contract requires a success acknowledgment for every resolved
// delivery; only a persistence failure gets a non-2xx so the provider
// retries (safe, the application is idempotent).
func (h *Handler) Callback(c *gin.Context) {
	var env STKCallbackEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		log.Printf("level=error msg=unparseable payment callback err=%v", err)
		c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
		return
	}

	cb := env.Body.StkCallback
	outcome, err := h.service.ApplyCallback(
		c.Request.Context(),
		cb.CheckoutRequestID,
		env.Amount(),
		env.ReceiptNumber(),
		cb.ResultCode,
	)
	if err != nil {
		log.Printf("level=error msg=payment callback persistence failure correlation_id=%s err=%v", cb.CheckoutRequestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ResultCode": 1, "ResultDesc": "Retry"})
		return
	}

	log.Printf("level=info msg=payment callback handled correlation_id=%s outcome=%s", cb.CheckoutRequestID, outcome)
	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

func (h *Handler) RegisterCheckout(c *gin.Context) {
	var req RegisterCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.RegisterCheckout(c.Request.Context(), req.TargetType, req.TargetID, req.CheckoutRequestID)
	if err != nil {
		switch err {
		case ErrValidation, ErrUnknownFamily:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid checkout registration")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register checkout")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registered": true})
}
