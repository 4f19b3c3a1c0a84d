package category

import (
	"context"
	"fmt"
	"strings"
)

const maxNameLength = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uint) ([]Category, error) {
	return s.repo.List(ctx, userID)
}

// Create enforces per-user, case-insensitive name uniqueness.
func (s *Service) Create(ctx context.Context, userID uint, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}

	count, err := s.repo.CountByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	created := &Category{UserID: userID, Name: name}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Delete refuses while budgets or transactions still reference the category.
// Ownership is checked before the in-use guards so a conflict answer never
// reveals another user's categories.
func (s *Service) Delete(ctx context.Context, userID, categoryID uint) error {
	owned, err := s.repo.Exists(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrCategoryNotFound
	}

	budgetRefs, err := s.repo.CountBudgetRefs(ctx, categoryID)
	if err != nil {
		return err
	}
	if budgetRefs > 0 {
		return ErrCategoryInUse
	}

	txRefs, err := s.repo.CountTransactionRefs(ctx, categoryID)
	if err != nil {
		return err
	}
	if txRefs > 0 {
		return ErrCategoryInUse
	}

	deleted, err := s.repo.Delete(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
