package debt

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, userID uint) ([]Debt, error)
	GetByID(ctx context.Context, userID, debtID uint) (*Debt, error)
	Create(ctx context.Context, debt *Debt) error
	Update(ctx context.Context, userID, debtID uint, fields map[string]interface{}) error
	Upcoming(ctx context.Context, userID uint, from time.Time, limit int) ([]Debt, error)
	// AdjustWalletBalance adds delta to the user's wallet current_balance,
	// reporting whether a wallet row was found.
	AdjustWalletBalance(ctx context.Context, userID uint, delta float64) (bool, error)
}
