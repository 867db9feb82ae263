package domain

import (
	"encoding/json"
	"time"
)

// ScheduleSetting is one admin-editable rule document, stored as raw JSON
// under a well-known key.
type ScheduleSetting struct {
	Key       string          `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value     json.RawMessage `json:"value" gorm:"type:text"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ScheduleSetting) TableName() string { return "schedule_settings" }
