package budget

import "time"

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusFuture  Status = "future"
)

type Budget struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	CategoryID uint      `gorm:"not null"`
	Amount     float64   `gorm:"type:numeric(14,2);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Budget) TableName() string { return "budget" }

// StatusOn derives the budget status from its window. Nothing is persisted;
// the same row classifies differently on different days.
func (b Budget) StatusOn(today time.Time) Status {
	day := truncateToDay(today)
	switch {
	case truncateToDay(b.EndDate).Before(day):
		return StatusExpired
	case truncateToDay(b.StartDate).After(day):
		return StatusFuture
	default:
		return StatusActive
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BudgetWithSpend pairs a budget with its ledger-derived spend. SpentAmount
// is the sum of expense transactions linked to the budget whose date falls in
// the budget window; it is computed at query time, never stored.
type BudgetWithSpend struct {
	Budget
	CategoryName string
	SpentAmount  float64
}

func (b BudgetWithSpend) RemainingAmount() float64 {
	return b.Amount - b.SpentAmount
}

type CreateInput struct {
	UserID     uint
	CategoryID uint
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
}

type UpdateInput struct {
	CategoryID *uint
	Amount     *float64
	StartDate  *time.Time
	EndDate    *time.Time
}
