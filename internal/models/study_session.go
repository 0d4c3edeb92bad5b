package models

import "time"

const (
	MinSessionDurationHours = 0.5
	MaxSessionDurationHours = 8.0
)

type StudySession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"not null;index" json:"userEmail"`
	Subject   string    `gorm:"not null;index" json:"subject"`
	Topic     string    `gorm:"not null" json:"topic"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	StartTime string    `gorm:"not null" json:"startTime"`
	Duration  float64   `gorm:"not null" json:"duration"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Notes     string    `json:"notes"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
