package user

import (
	"context"
	"errors"

	userdomain "fintrack-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *userdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID uint) (*userdomain.User, error) {
	var user userdomain.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*userdomain.User, error) {
	var user userdomain.User
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("lower(email) = lower(?)", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}
