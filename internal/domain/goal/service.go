package goal

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

func (s *Service) List(ctx context.Context, userID uint) ([]SavingGoal, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []SavingGoal{}
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*SavingGoal, error) {
	name := strings.TrimSpace(input.GoalName)
	if name == "" {
		return nil, fmt.Errorf("%w: goal_name is required", ErrInvalidInput)
	}
	if input.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target_amount must be positive", ErrInvalidInput)
	}
	if input.SavedAmount < 0 {
		return nil, fmt.Errorf("%w: saved_amount cannot be negative", ErrInvalidInput)
	}
	if input.MonthlyContribution < 0 {
		return nil, fmt.Errorf("%w: monthly_contribution cannot be negative", ErrInvalidInput)
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if priority != PriorityLow && priority != PriorityMedium && priority != PriorityHigh {
		return nil, fmt.Errorf("%w: priority must be Low, Medium or High", ErrInvalidInput)
	}

	created := &SavingGoal{
		UserID:              input.UserID,
		GoalName:            name,
		TargetAmount:        input.TargetAmount,
		SavedAmount:         input.SavedAmount,
		MonthlyContribution: input.MonthlyContribution,
		Deadline:            input.Deadline,
		Priority:            priority,
		Status:              deriveStatus(input.SavedAmount, input.TargetAmount),
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Update patches the supplied fields. The status recomputes to completed when
// the resulting saved amount reaches the target, unless the caller set a
// status explicitly; an explicit status always wins.
func (s *Service) Update(ctx context.Context, userID, goalID uint, input UpdateInput) (*SavingGoal, error) {
	existing, err := s.repo.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if input.GoalName != nil {
		name := strings.TrimSpace(*input.GoalName)
		if name == "" {
			return nil, fmt.Errorf("%w: goal_name cannot be empty", ErrInvalidInput)
		}
		fields["goal_name"] = name
	}

	target := existing.TargetAmount
	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			return nil, fmt.Errorf("%w: target_amount must be positive", ErrInvalidInput)
		}
		target = *input.TargetAmount
		fields["target_amount"] = target
	}

	saved := existing.SavedAmount
	if input.SavedAmount != nil {
		if *input.SavedAmount < 0 {
			return nil, fmt.Errorf("%w: saved_amount cannot be negative", ErrInvalidInput)
		}
		saved = *input.SavedAmount
		fields["saved_amount"] = saved
	}

	if input.MonthlyContribution != nil {
		if *input.MonthlyContribution < 0 {
			return nil, fmt.Errorf("%w: monthly_contribution cannot be negative", ErrInvalidInput)
		}
		fields["monthly_contribution"] = *input.MonthlyContribution
	}
	if input.Deadline != nil {
		fields["deadline"] = *input.Deadline
	}
	if input.Priority != nil {
		priority := *input.Priority
		if priority != PriorityLow && priority != PriorityMedium && priority != PriorityHigh {
			return nil, fmt.Errorf("%w: priority must be Low, Medium or High", ErrInvalidInput)
		}
		fields["priority"] = priority
	}

	if input.Status != nil {
		status := *input.Status
		if status != StatusActive && status != StatusCompleted {
			return nil, fmt.Errorf("%w: status must be active or completed", ErrInvalidInput)
		}
		fields["status"] = status
	} else if input.SavedAmount != nil || input.TargetAmount != nil {
		fields["status"] = deriveStatus(saved, target)
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, userID, goalID, fields); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, goalID)
}

func (s *Service) Delete(ctx context.Context, userID, goalID uint) error {
	deleted, err := s.repo.Delete(ctx, userID, goalID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGoalNotFound
	}
	return nil
}

func (s *Service) Summary(ctx context.Context, userID uint) (Summary, error) {
	active, err := s.repo.ListByStatus(ctx, userID, StatusActive)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{ActiveCount: int64(len(active))}
	for _, g := range active {
		summary.TotalTarget += g.TargetAmount
		summary.TotalSaved += g.SavedAmount
	}
	if summary.TotalTarget > 0 {
		summary.ProgressPercent = summary.TotalSaved / summary.TotalTarget * 100
	}

	return summary, nil
}

// Progress returns every goal with its per-goal completion percentage.
func (s *Service) Progress(ctx context.Context, userID uint) ([]SavingGoal, error) {
	return s.List(ctx, userID)
}

func deriveStatus(saved, target float64) Status {
	if target > 0 && saved >= target {
		return StatusCompleted
	}
	return StatusActive
}
