package goal

import (
	"context"
	"errors"

	goaldomain "fintrack-go/internal/domain/goal"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID uint) ([]goaldomain.SavingGoal, error) {
	var items []goaldomain.SavingGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, userID uint, status goaldomain.Status) ([]goaldomain.SavingGoal, error) {
	var items []goaldomain.SavingGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, goalID uint) (*goaldomain.SavingGoal, error) {
	var goal goaldomain.SavingGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, goalID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goaldomain.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *PostgresRepository) Create(ctx context.Context, goal *goaldomain.SavingGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *PostgresRepository) Update(ctx context.Context, userID, goalID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&goaldomain.SavingGoal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(fields).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, goalID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&goaldomain.SavingGoal{}, "user_id = ? AND id = ?", userID, goalID)
	return result.RowsAffected > 0, result.Error
}
