package transaction

import "time"

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is the ledger row: the source of truth every budget spend and
// trend aggregate is derived from.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	CategoryID  *uint     `gorm:"index"`
	BudgetID    *uint     `gorm:"index"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	Type        Type      `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Transaction) TableName() string { return "transactions" }

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Type   Type
	Limit  int
	Offset int
}

type CreateInput struct {
	UserID      uint
	CategoryID  *uint
	BudgetID    *uint
	Amount      float64
	Type        Type
	Date        time.Time
	Description string
}

// UpdateInput distinguishes three states per link: nil pointer with the clear
// flag unset leaves the link alone, a set pointer relinks, and the clear flag
// removes the link.
type UpdateInput struct {
	CategoryID    *uint
	ClearCategory bool
	BudgetID      *uint
	ClearBudget   bool
	Amount        *float64
	Date          *time.Time
	Description   *string
}
