package goal

import "context"

type Repository interface {
	List(ctx context.Context, userID uint) ([]SavingGoal, error)
	ListByStatus(ctx context.Context, userID uint, status Status) ([]SavingGoal, error)
	GetByID(ctx context.Context, userID, goalID uint) (*SavingGoal, error)
	Create(ctx context.Context, goal *SavingGoal) error
	Update(ctx context.Context, userID, goalID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, userID, goalID uint) (bool, error)
}
