package dashboard

import "time"

// WalletSnapshot is the balance portion of the dashboard. Absent wallets
// render as zeros rather than an error.
type WalletSnapshot struct {
	CurrentBalance float64 `json:"current_balance"`
	InitialBalance float64 `json:"initial_balance"`
}

// MonthlyFlow is one calendar month of ledger activity.
type MonthlyFlow struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// BudgetSpend is a budget row joined with its ledger-derived spend.
type BudgetSpend struct {
	BudgetID    uint
	Amount      float64
	StartDate   time.Time
	EndDate     time.Time
	SpentAmount float64
}

type BudgetOverview struct {
	TotalBudget     float64 `json:"total_budget"`
	TotalSpent      float64 `json:"total_spent"`
	TotalRemaining  float64 `json:"total_remaining"`
	ProgressPercent float64 `json:"progress_percent"`
	ActiveCount     int     `json:"active_count"`
	ExpiredCount    int     `json:"expired_count"`
	FutureCount     int     `json:"future_count"`
}

type GoalTotals struct {
	TotalTarget float64
	TotalSaved  float64
}

type SavingsOverview struct {
	TotalTarget     float64 `json:"total_target"`
	TotalSaved      float64 `json:"total_saved"`
	ProgressPercent float64 `json:"progress_percent"`
}

type UpcomingPayment struct {
	DebtID     uint    `json:"debt_id"`
	DebtorName string  `json:"debtor_name"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	DueDate    string  `json:"due_date"`
}

// Snapshot is the consolidated payload of GET /api/dashboard.
type Snapshot struct {
	Wallet           WalletSnapshot    `json:"wallet"`
	SpendingTrends   []MonthlyFlow     `json:"spendingTrends"`
	Budget           BudgetOverview    `json:"budget"`
	Savings          SavingsOverview   `json:"savings"`
	UpcomingPayments []UpcomingPayment `json:"upcomingPayments"`
}
