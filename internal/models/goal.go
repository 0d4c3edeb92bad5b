package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StudySubjects is the fixed subject catalog shared by goals and study
// sessions.
var StudySubjects = []string{
	"Mathematics",
	"Physics",
	"Computer Science",
	"English",
	"Chemistry",
	"Biology",
}

type Goal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"not null;index" json:"userEmail"`
	Title       string    `gorm:"not null" json:"title"`
	Subject     string    `gorm:"not null;index" json:"subject"`
	Description string    `json:"description"`
	Deadline    time.Time `gorm:"not null;index" json:"deadline"`
	Priority    string    `gorm:"not null;default:medium" json:"priority"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsStudySubject(subject string) bool {
	for _, known := range StudySubjects {
		if known == subject {
			return true
		}
	}
	return false
}

func IsGoalPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
