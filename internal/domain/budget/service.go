package budget

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns the caller's budgets with query-time spend and derived status.
func (s *Service) List(ctx context.Context, userID uint) ([]BudgetWithSpend, error) {
	items, err := s.repo.ListWithSpend(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []BudgetWithSpend{}
	}
	return items, nil
}

// Create stores the budget and returns it with its ledger projection, so the
// response carries the same derived fields the list does.
func (s *Service) Create(ctx context.Context, input CreateInput) (*BudgetWithSpend, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", ErrInvalidInput)
	}

	exists, err := s.repo.CategoryExists(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	created := &Budget{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return s.repo.GetWithSpend(ctx, input.UserID, created.ID)
}

func (s *Service) Update(ctx context.Context, userID, budgetID uint, input UpdateInput) (*BudgetWithSpend, error) {
	existing, err := s.repo.GetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if input.CategoryID != nil {
		exists, err := s.repo.CategoryExists(ctx, userID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
		fields["category_id"] = *input.CategoryID
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
		}
		fields["amount"] = *input.Amount
	}

	start := existing.StartDate
	end := existing.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
		fields["start_date"] = start
	}
	if input.EndDate != nil {
		end = *input.EndDate
		fields["end_date"] = end
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", ErrInvalidInput)
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, userID, budgetID, fields); err != nil {
			return nil, err
		}
	}

	return s.repo.GetWithSpend(ctx, userID, budgetID)
}

func (s *Service) Delete(ctx context.Context, userID, budgetID uint) error {
	deleted, err := s.repo.Delete(ctx, userID, budgetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func (s *Service) Today() time.Time {
	return s.now().UTC()
}
