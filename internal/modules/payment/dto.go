package payment

// STKCallbackEnvelope is the mobile-money provider's callback shape for an
// STK push result.
type STKCallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

func (e *STKCallbackEnvelope) metadataValue(name string) interface{} {
	for _, item := range e.Body.StkCallback.CallbackMetadata.Item {
		if item.Name == name {
			return item.Value
		}
	}
	return nil
}

func (e *STKCallbackEnvelope) Amount() float64 {
	if v, ok := e.metadataValue("Amount").(float64); ok {
		return v
	}
	return 0
}

func (e *STKCallbackEnvelope) ReceiptNumber() string {
	if v, ok := e.metadataValue("MpesaReceiptNumber").(string); ok {
		return v
	}
	return ""
}

type RegisterCheckoutRequest struct {
	TargetType        string `json:"target_type" binding:"required"`
	TargetID          int64  `json:"target_id" binding:"required"`
	CheckoutRequestID string `json:"checkout_request_id" binding:"required"`
}
