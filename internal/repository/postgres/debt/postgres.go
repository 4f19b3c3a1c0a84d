package debt

import (
	"context"
	"errors"
	"time"

	debtdomain "fintrack-go/internal/domain/debt"
	walletdomain "fintrack-go/internal/domain/wallet"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(debtdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, userID uint) ([]debtdomain.Debt, error) {
	var items []debtdomain.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, debtID uint) (*debtdomain.Debt, error) {
	var debt debtdomain.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, debtID).
		First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, debtdomain.ErrDebtNotFound
		}
		return nil, err
	}
	return &debt, nil
}

func (r *PostgresRepository) Create(ctx context.Context, debt *debtdomain.Debt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

func (r *PostgresRepository) Update(ctx context.Context, userID, debtID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&debtdomain.Debt{}).
		Where("id = ? AND user_id = ?", debtID, userID).
		Updates(fields).Error
}

func (r *PostgresRepository) Upcoming(ctx context.Context, userID uint, from time.Time, limit int) ([]debtdomain.Debt, error) {
	var items []debtdomain.Debt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND due_date >= ?", userID, debtdomain.StatusPending, from).
		Order("due_date asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) AdjustWalletBalance(ctx context.Context, userID uint, delta float64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&walletdomain.Wallet{}).
		Where("user_id = ?", userID).
		Update("current_balance", gorm.Expr("current_balance + ?", delta))
	return result.RowsAffected > 0, result.Error
}
