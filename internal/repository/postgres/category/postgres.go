package category

import (
	"context"

	budgetdomain "fintrack-go/internal/domain/budget"
	categorydomain "fintrack-go/internal/domain/category"
	transactiondomain "fintrack-go/internal/domain/transaction"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID uint) ([]categorydomain.Category, error) {
	var categories []categorydomain.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category *categorydomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) CountByName(ctx context.Context, userID uint, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&categorydomain.Category{}).
		Where("user_id = ? AND lower(name) = lower(?)", userID, name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, categoryID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&categorydomain.Category{}).
		Where("user_id = ? AND id = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, categoryID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&categorydomain.Category{}, "user_id = ? AND id = ?", userID, categoryID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountBudgetRefs(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&budgetdomain.Budget{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountTransactionRefs(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&transactiondomain.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
