package debt

import "time"

type Type string

const (
	TypeIncoming Type = "incoming"
	TypeOutgoing Type = "outgoing"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Debt struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	DebtorName  string    `gorm:"not null"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	Type        Type      `gorm:"not null"`
	Status      Status    `gorm:"not null;default:pending"`
	DueDate     time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Debt) TableName() string { return "debts_loans" }

type CreateInput struct {
	UserID      uint
	DebtorName  string
	Amount      float64
	Type        Type
	DueDate     time.Time
	Description string
}

type UpdateInput struct {
	DebtorName  *string
	Amount      *float64
	DueDate     *time.Time
	Description *string
	Status      *Status
}
