package models

import "time"

type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Gender    string    `gorm:"not null" json:"gender"`
	Phone     string    `gorm:"not null" json:"phone"`
	College   string    `gorm:"not null" json:"college"`
	StudentID string    `gorm:"column:student_id;uniqueIndex;not null" json:"studentId"`
	Major     string    `gorm:"not null" json:"major"`
	Year      string    `gorm:"not null" json:"year"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
