package wallet

import (
	"context"
	"errors"

	walletdomain "fintrack-go/internal/domain/wallet"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID uint) (*walletdomain.Wallet, error) {
	var wallet walletdomain.Wallet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, walletdomain.ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *PostgresRepository) Create(ctx context.Context, wallet *walletdomain.Wallet) error {
	return r.db.WithContext(ctx).Create(wallet).Error
}

func (r *PostgresRepository) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&walletdomain.Wallet{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
