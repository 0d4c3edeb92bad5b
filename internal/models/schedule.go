package models

import "time"

const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// ScheduleDays lists the day enum in calendar order; the list order is
// also the sort order for schedule listings.
var ScheduleDays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

type Schedule struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Date             string    `gorm:"not null" json:"date"`
	Subject          string    `gorm:"not null" json:"subject"`
	StartTime        string    `gorm:"not null" json:"startTime"`
	EndTime          string    `gorm:"not null" json:"endTime"`
	Day              string    `gorm:"not null;index" json:"day"`
	Room             string    `json:"room"`
	Color            string    `gorm:"not null;default:blue" json:"color"`
	Attendance       string    `gorm:"not null;default:pending" json:"attendance"`
	CreatedBy        string    `gorm:"not null;index" json:"createdBy"`
	Notification     bool      `gorm:"not null;default:false" json:"notification"`
	NotificationTime int       `gorm:"not null;default:15" json:"notificationTime"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func IsScheduleDay(day string) bool {
	for _, known := range ScheduleDays {
		if known == day {
			return true
		}
	}
	return false
}

func IsAttendanceStatus(status string) bool {
	switch status {
	case AttendancePending, AttendancePresent, AttendanceAbsent:
		return true
	default:
		return false
	}
}
