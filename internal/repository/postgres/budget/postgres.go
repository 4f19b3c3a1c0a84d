package budget

import (
	"context"
	"errors"

	budgetdomain "fintrack-go/internal/domain/budget"
	categorydomain "fintrack-go/internal/domain/category"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListWithSpend projects each budget's spend out of the ledger: the sum of
// expense transactions linked to the budget whose date falls in its window.
func (r *PostgresRepository) ListWithSpend(ctx context.Context, userID uint) ([]budgetdomain.BudgetWithSpend, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.start_date, b.end_date,
		       b.created_at, b.updated_at,
		       c.name AS category_name,
		       COALESCE((
		           SELECT SUM(t.amount) FROM transactions t
		           WHERE t.budget_id = b.id
		             AND t.type = 'expense'
		             AND t.date >= b.start_date
		             AND t.date <= b.end_date
		       ), 0) AS spent_amount
		FROM budget b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = ?
		ORDER BY b.start_date DESC, b.id DESC`

	var rows []struct {
		budgetdomain.Budget
		CategoryName string  `gorm:"column:category_name"`
		SpentAmount  float64 `gorm:"column:spent_amount"`
	}
	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]budgetdomain.BudgetWithSpend, 0, len(rows))
	for _, row := range rows {
		items = append(items, budgetdomain.BudgetWithSpend{
			Budget:       row.Budget,
			CategoryName: row.CategoryName,
			SpentAmount:  row.SpentAmount,
		})
	}

	return items, nil
}

// GetWithSpend is the single-row variant of ListWithSpend; mutation responses
// use it so spend and remaining always come from the ledger.
func (r *PostgresRepository) GetWithSpend(ctx context.Context, userID, budgetID uint) (*budgetdomain.BudgetWithSpend, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.start_date, b.end_date,
		       b.created_at, b.updated_at,
		       c.name AS category_name,
		       COALESCE((
		           SELECT SUM(t.amount) FROM transactions t
		           WHERE t.budget_id = b.id
		             AND t.type = 'expense'
		             AND t.date >= b.start_date
		             AND t.date <= b.end_date
		       ), 0) AS spent_amount
		FROM budget b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = ? AND b.id = ?`

	var row struct {
		budgetdomain.Budget
		CategoryName string  `gorm:"column:category_name"`
		SpentAmount  float64 `gorm:"column:spent_amount"`
	}
	result := r.db.WithContext(ctx).Raw(query, userID, budgetID).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, budgetdomain.ErrBudgetNotFound
	}

	return &budgetdomain.BudgetWithSpend{
		Budget:       row.Budget,
		CategoryName: row.CategoryName,
		SpentAmount:  row.SpentAmount,
	}, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, budgetID uint) (*budgetdomain.Budget, error) {
	var budget budgetdomain.Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, budgetID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgetdomain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *PostgresRepository) Create(ctx context.Context, budget *budgetdomain.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *PostgresRepository) Update(ctx context.Context, userID, budgetID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&budgetdomain.Budget{}).
		Where("id = ? AND user_id = ?", budgetID, userID).
		Updates(fields).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, budgetID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&budgetdomain.Budget{}, "user_id = ? AND id = ?", userID, budgetID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CategoryExists(ctx context.Context, userID, categoryID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&categorydomain.Category{}).
		Where("user_id = ? AND id = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
