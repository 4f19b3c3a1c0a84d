package dashboard

import (
	"context"
	"time"
)

// Repository is the dashboard's read-only view over the other entities'
// tables. Implementations never mutate anything.
type Repository interface {
	// WalletSnapshot returns nil when the user has no wallet yet.
	WalletSnapshot(ctx context.Context, userID uint) (*WalletSnapshot, error)
	// MonthlyFlows sums income and expense per calendar month over
	// [from, to); months without activity are not returned.
	MonthlyFlows(ctx context.Context, userID uint, from, to time.Time) ([]MonthlyFlow, error)
	BudgetsWithSpend(ctx context.Context, userID uint) ([]BudgetSpend, error)
	ActiveGoalTotals(ctx context.Context, userID uint) (GoalTotals, error)
	UpcomingDebts(ctx context.Context, userID uint, from time.Time, limit int) ([]UpcomingPayment, error)
}
