package goal

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type SavingGoal struct {
	ID                  uint       `gorm:"primaryKey"`
	UserID              uint       `gorm:"index;not null"`
	GoalName            string     `gorm:"not null"`
	TargetAmount        float64    `gorm:"type:numeric(14,2);not null"`
	SavedAmount         float64    `gorm:"type:numeric(14,2);not null;default:0"`
	MonthlyContribution float64    `gorm:"type:numeric(14,2);not null;default:0"`
	Deadline            *time.Time `gorm:"type:date"`
	Priority            Priority   `gorm:"not null;default:Medium"`
	Status              Status     `gorm:"not null;default:active"`
	CreatedAt           time.Time  `gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime"`
}

func (SavingGoal) TableName() string { return "saving_goals" }

func (g SavingGoal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount * 100
}

type CreateInput struct {
	UserID              uint
	GoalName            string
	TargetAmount        float64
	SavedAmount         float64
	MonthlyContribution float64
	Deadline            *time.Time
	Priority            Priority
}

type UpdateInput struct {
	GoalName            *string
	TargetAmount        *float64
	SavedAmount         *float64
	MonthlyContribution *float64
	Deadline            *time.Time
	Priority            *Priority
	Status              *Status
}

// Summary aggregates the caller's active goals.
type Summary struct {
	ActiveCount     int64
	TotalTarget     float64
	TotalSaved      float64
	ProgressPercent float64
}
