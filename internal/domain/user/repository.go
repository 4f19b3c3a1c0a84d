package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Update(ctx context.Context, userID uint, fields map[string]interface{}) error
}
