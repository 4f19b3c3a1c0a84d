package debt

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const upcomingLimit = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, userID uint) ([]Debt, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Debt{}
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Debt, error) {
	name := strings.TrimSpace(input.DebtorName)
	if name == "" {
		return nil, fmt.Errorf("%w: debtor_name is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.Type != TypeIncoming && input.Type != TypeOutgoing {
		return nil, fmt.Errorf("%w: type must be incoming or outgoing", ErrInvalidInput)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due_date is required", ErrInvalidInput)
	}

	created := &Debt{
		UserID:      input.UserID,
		DebtorName:  name,
		Amount:      input.Amount,
		Type:        input.Type,
		Status:      StatusPending,
		DueDate:     input.DueDate,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies a partial update. A status change to paid settles the debt
// against the caller's wallet: incoming adds the amount, outgoing subtracts
// it. The status write and the balance adjustment share one database
// transaction, so a failure leaves neither applied.
func (s *Service) Update(ctx context.Context, userID, debtID uint, input UpdateInput) (*Debt, error) {
	var updated *Debt
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetByID(ctx, userID, debtID)
		if err != nil {
			return err
		}

		fields := make(map[string]interface{})
		if input.DebtorName != nil {
			name := strings.TrimSpace(*input.DebtorName)
			if name == "" {
				return fmt.Errorf("%w: debtor_name cannot be empty", ErrInvalidInput)
			}
			fields["debtor_name"] = name
		}
		if input.Amount != nil {
			if *input.Amount <= 0 {
				return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
			}
			fields["amount"] = *input.Amount
		}
		if input.DueDate != nil {
			fields["due_date"] = *input.DueDate
		}
		if input.Description != nil {
			fields["description"] = strings.TrimSpace(*input.Description)
		}

		settle := false
		if input.Status != nil {
			next := *input.Status
			if next != StatusPending && next != StatusPaid {
				return fmt.Errorf("%w: status must be pending or paid", ErrInvalidInput)
			}
			if next == existing.Status {
				return ErrSameStatus
			}
			if next == StatusPending {
				return ErrStatusReverted
			}
			fields["status"] = next
			settle = true
		}

		if len(fields) == 0 {
			updated = existing
			return nil
		}

		if err := tx.Update(ctx, userID, debtID, fields); err != nil {
			return err
		}

		if settle {
			amount := existing.Amount
			if input.Amount != nil {
				amount = *input.Amount
			}
			delta := amount
			if existing.Type == TypeOutgoing {
				delta = -amount
			}
			found, err := tx.AdjustWalletBalance(ctx, userID, delta)
			if err != nil {
				return err
			}
			if !found {
				return ErrWalletNotFound
			}
		}

		updated, err = tx.GetByID(ctx, userID, debtID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Upcoming returns at most five pending debts due today or later, earliest
// first.
func (s *Service) Upcoming(ctx context.Context, userID uint) ([]Debt, error) {
	today := truncateToDay(s.now().UTC())
	items, err := s.repo.Upcoming(ctx, userID, today, upcomingLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Debt{}
	}
	return items, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
