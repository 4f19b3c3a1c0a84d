package wallet

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID uint) (*Wallet, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Create sets up the caller's single wallet. The initial balance is written
// once; the current balance starts equal to it.
func (s *Service) Create(ctx context.Context, userID uint, initialBalance float64) (*Wallet, error) {
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: initial_balance cannot be negative", ErrInvalidInput)
	}

	_, err := s.repo.GetByUser(ctx, userID)
	if err == nil {
		return nil, ErrWalletExists
	}
	if !errors.Is(err, ErrWalletNotFound) {
		return nil, err
	}

	created := &Wallet{
		UserID:         userID,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, userID uint, input UpdateInput) (*Wallet, error) {
	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if input.CurrentBalance != nil {
		fields["current_balance"] = *input.CurrentBalance
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.repo.GetByUser(ctx, userID)
}
