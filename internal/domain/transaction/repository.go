package transaction

import "context"

type Repository interface {
	List(ctx context.Context, userID uint, filter ListFilter) ([]Transaction, int64, error)
	GetByID(ctx context.Context, userID, transactionID uint) (*Transaction, error)
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, userID, transactionID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, userID, transactionID uint) (bool, error)
	CategoryExists(ctx context.Context, userID, categoryID uint) (bool, error)
	BudgetExists(ctx context.Context, userID, budgetID uint) (bool, error)
}
