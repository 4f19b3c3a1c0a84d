package transaction

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uint, filter ListFilter) ([]Transaction, int64, error) {
	items, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Transaction{}
	}
	return items, total, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Transaction, error) {
	if input.Type != TypeIncome && input.Type != TypeExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Income may be uncategorized; an expense always belongs to a category.
	if input.Type == TypeExpense && input.CategoryID == nil {
		return nil, fmt.Errorf("%w: category is required for expenses", ErrInvalidInput)
	}

	if input.CategoryID != nil {
		exists, err := s.repo.CategoryExists(ctx, input.UserID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
	}
	if input.BudgetID != nil {
		exists, err := s.repo.BudgetExists(ctx, input.UserID, *input.BudgetID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrBudgetNotFound
		}
	}

	created := &Transaction{
		UserID:      input.UserID,
		CategoryID:  input.CategoryID,
		BudgetID:    input.BudgetID,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, transactionID uint, input UpdateInput) (*Transaction, error) {
	existing, err := s.repo.GetByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	switch {
	case input.ClearCategory:
		if existing.Type == TypeExpense {
			return nil, fmt.Errorf("%w: category is required for expenses", ErrInvalidInput)
		}
		fields["category_id"] = nil
	case input.CategoryID != nil:
		exists, err := s.repo.CategoryExists(ctx, userID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
		fields["category_id"] = *input.CategoryID
	}
	switch {
	case input.ClearBudget:
		fields["budget_id"] = nil
	case input.BudgetID != nil:
		exists, err := s.repo.BudgetExists(ctx, userID, *input.BudgetID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrBudgetNotFound
		}
		fields["budget_id"] = *input.BudgetID
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
		}
		fields["amount"] = *input.Amount
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, userID, transactionID, fields); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, transactionID)
}

func (s *Service) Delete(ctx context.Context, userID, transactionID uint) error {
	deleted, err := s.repo.Delete(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

// Export lists every transaction for the user without paging.
func (s *Service) Export(ctx context.Context, userID uint) ([]Transaction, error) {
	items, _, err := s.repo.List(ctx, userID, ListFilter{})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Transaction{}
	}
	return items, nil
}
