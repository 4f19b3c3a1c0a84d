package dashboard

import (
	"context"
	"errors"
	"time"

	dashboarddomain "fintrack-go/internal/domain/dashboard"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) WalletSnapshot(ctx context.Context, userID uint) (*dashboarddomain.WalletSnapshot, error) {
	var row struct {
		CurrentBalance float64 `gorm:"column:current_balance"`
		InitialBalance float64 `gorm:"column:initial_balance"`
	}
	err := r.db.WithContext(ctx).
		Table("wallet").
		Select("current_balance, initial_balance").
		Where("user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &dashboarddomain.WalletSnapshot{
		CurrentBalance: row.CurrentBalance,
		InitialBalance: row.InitialBalance,
	}, nil
}

func (r *PostgresRepository) MonthlyFlows(ctx context.Context, userID uint, from, to time.Time) ([]dashboarddomain.MonthlyFlow, error) {
	query := `
		SELECT to_char(date_trunc('month', t.date::timestamp), 'YYYY-MM') AS month,
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income'), 0) AS income,
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'expense'), 0) AS expense
		FROM transactions t
		WHERE t.user_id = ? AND t.date >= ? AND t.date < ?
		GROUP BY date_trunc('month', t.date::timestamp)
		ORDER BY date_trunc('month', t.date::timestamp)`

	var rows []dashboarddomain.MonthlyFlow
	if err := r.db.WithContext(ctx).Raw(query, userID, from, to).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *PostgresRepository) BudgetsWithSpend(ctx context.Context, userID uint) ([]dashboarddomain.BudgetSpend, error) {
	query := `
		SELECT b.id AS budget_id, b.amount, b.start_date, b.end_date,
		       COALESCE((
		           SELECT SUM(t.amount) FROM transactions t
		           WHERE t.budget_id = b.id
		             AND t.type = 'expense'
		             AND t.date >= b.start_date
		             AND t.date <= b.end_date
		       ), 0) AS spent_amount
		FROM budget b
		WHERE b.user_id = ?`

	var rows []struct {
		BudgetID    uint      `gorm:"column:budget_id"`
		Amount      float64   `gorm:"column:amount"`
		StartDate   time.Time `gorm:"column:start_date"`
		EndDate     time.Time `gorm:"column:end_date"`
		SpentAmount float64   `gorm:"column:spent_amount"`
	}
	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]dashboarddomain.BudgetSpend, 0, len(rows))
	for _, row := range rows {
		items = append(items, dashboarddomain.BudgetSpend{
			BudgetID:    row.BudgetID,
			Amount:      row.Amount,
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
			SpentAmount: row.SpentAmount,
		})
	}

	return items, nil
}

func (r *PostgresRepository) ActiveGoalTotals(ctx context.Context, userID uint) (dashboarddomain.GoalTotals, error) {
	var row struct {
		TotalTarget float64 `gorm:"column:total_target"`
		TotalSaved  float64 `gorm:"column:total_saved"`
	}
	query := `
		SELECT COALESCE(SUM(target_amount), 0) AS total_target,
		       COALESCE(SUM(saved_amount), 0) AS total_saved
		FROM saving_goals
		WHERE user_id = ? AND status = 'active'`

	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&row).Error; err != nil {
		return dashboarddomain.GoalTotals{}, err
	}

	return dashboarddomain.GoalTotals{
		TotalTarget: row.TotalTarget,
		TotalSaved:  row.TotalSaved,
	}, nil
}

func (r *PostgresRepository) UpcomingDebts(ctx context.Context, userID uint, from time.Time, limit int) ([]dashboarddomain.UpcomingPayment, error) {
	query := `
		SELECT id AS debt_id, debtor_name, amount, type,
		       to_char(due_date, 'YYYY-MM-DD') AS due_date
		FROM debts_loans
		WHERE user_id = ? AND status = 'pending' AND due_date >= ?
		ORDER BY due_date ASC
		LIMIT ?`

	var rows []dashboarddomain.UpcomingPayment
	if err := r.db.WithContext(ctx).Raw(query, userID, from, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
