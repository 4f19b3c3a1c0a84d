package wallet

import "context"

type Repository interface {
	GetByUser(ctx context.Context, userID uint) (*Wallet, error)
	Create(ctx context.Context, wallet *Wallet) error
	Update(ctx context.Context, userID uint, fields map[string]interface{}) error
}
