package domain

import "time"

// StudioService is a bookable service catalog entry.
type StudioService struct {
	ID              int64   `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"type:varchar(128);not null"`
	Description     string  `json:"description" gorm:"type:text"`
	Price           float64 `json:"price" gorm:"not null"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active" gorm:"default:true;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StudioService) TableName() string { return "studio_services" }
