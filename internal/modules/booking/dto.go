package booking

type ReserveRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
	ServiceID   int64  `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	SlotTime    string `json:"slot_time" binding:"required"`
}
