package budget

import "context"

type Repository interface {
	ListWithSpend(ctx context.Context, userID uint) ([]BudgetWithSpend, error)
	GetWithSpend(ctx context.Context, userID, budgetID uint) (*BudgetWithSpend, error)
	GetByID(ctx context.Context, userID, budgetID uint) (*Budget, error)
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, userID, budgetID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, userID, budgetID uint) (bool, error)
	CategoryExists(ctx context.Context, userID, categoryID uint) (bool, error)
}
