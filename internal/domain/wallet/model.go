package wallet

import "time"

type Wallet struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"uniqueIndex;not null"`
	InitialBalance float64   `gorm:"type:numeric(14,2);not null"`
	CurrentBalance float64   `gorm:"type:numeric(14,2);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Wallet) TableName() string { return "wallet" }

type UpdateInput struct {
	CurrentBalance *float64
}
