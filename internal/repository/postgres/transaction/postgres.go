package transaction

import (
	"context"
	"errors"

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

func (r *PostgresRepository) List(ctx context.Context, userID uint, filter transactiondomain.ListFilter) ([]transactiondomain.Transaction, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&transactiondomain.Transaction{}).
		Where("user_id = ?", userID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("date desc, created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []transactiondomain.Transaction
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, transactionID uint) (*transactiondomain.Transaction, error) {
	var tx transactiondomain.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, transactionID).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transactiondomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PostgresRepository) Create(ctx context.Context, tx *transactiondomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *PostgresRepository) Update(ctx context.Context, userID, transactionID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&transactiondomain.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Updates(fields).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, transactionID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&transactiondomain.Transaction{}, "user_id = ? AND id = ?", userID, transactionID)
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

func (r *PostgresRepository) BudgetExists(ctx context.Context, userID, budgetID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&budgetdomain.Budget{}).
		Where("user_id = ? AND id = ?", userID, budgetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
