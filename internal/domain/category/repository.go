package category

import "context"

type Repository interface {
	List(ctx context.Context, userID uint) ([]Category, error)
	Create(ctx context.Context, category *Category) error
	CountByName(ctx context.Context, userID uint, name string) (int64, error)
	Exists(ctx context.Context, userID, categoryID uint) (bool, error)
	Delete(ctx context.Context, userID, categoryID uint) (bool, error)
	CountBudgetRefs(ctx context.Context, categoryID uint) (int64, error)
	CountTransactionRefs(ctx context.Context, categoryID uint) (int64, error)
}
