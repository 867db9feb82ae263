package manage

type RescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	SlotTime string `json:"slot_time" binding:"required"`
}

type ChangeServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
