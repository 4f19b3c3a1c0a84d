package goal

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeGoalRepo struct {
	goals  map[uint]*SavingGoal
	nextID uint
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uint]*SavingGoal), nextID: 1}
}

func (r *fakeGoalRepo) List(ctx context.Context, userID uint) ([]SavingGoal, error) {
	items := make([]SavingGoal, 0)
	for _, g := range r.goals {
		if g.UserID == userID {
			items = append(items, *g)
		}
	}
	return items, nil
}

func (r *fakeGoalRepo) ListByStatus(ctx context.Context, userID uint, status Status) ([]SavingGoal, error) {
	items := make([]SavingGoal, 0)
	for _, g := range r.goals {
		if g.UserID == userID && g.Status == status {
			items = append(items, *g)
		}
	}
	return items, nil
}

func (r *fakeGoalRepo) GetByID(ctx context.Context, userID, goalID uint) (*SavingGoal, error) {
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *SavingGoal) error {
	goal.ID = r.nextID
	r.nextID++
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, userID, goalID uint, fields map[string]interface{}) error {
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return ErrGoalNotFound
	}
	for key, value := range fields {
		switch key {
		case "goal_name":
			g.GoalName = value.(string)
		case "target_amount":
			g.TargetAmount = value.(float64)
		case "saved_amount":
			g.SavedAmount = value.(float64)
		case "monthly_contribution":
			g.MonthlyContribution = value.(float64)
		case "deadline":
			deadline := value.(time.Time)
			g.Deadline = &deadline
		case "priority":
			g.Priority = value.(Priority)
		case "status":
			g.Status = value.(Status)
		}
	}
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, userID, goalID uint) (bool, error) {
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return false, nil
	}
	delete(r.goals, goalID)
	return true, nil
}

func TestCreateGoalDefaultsAndDerivedStatus(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		UserID:       1,
		GoalName:     "Vacation",
		TargetAmount: 1000,
		SavedAmount:  100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != PriorityMedium {
		t.Fatalf("expected default Medium priority, got %s", created.Priority)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected active, got %s", created.Status)
	}

	completed, err := svc.Create(context.Background(), CreateInput{
		UserID:       1,
		GoalName:     "Emergency fund",
		TargetAmount: 500,
		SavedAmount:  500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("expected completed at target, got %s", completed.Status)
	}
}

func TestUpdateGoalAutoCompletes(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Vacation", TargetAmount: 1000, SavedAmount: 900,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	saved := 1000.0
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{SavedAmount: &saved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected auto-completed, got %s", updated.Status)
	}
}

func TestUpdateGoalExplicitStatusWins(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Vacation", TargetAmount: 1000, SavedAmount: 0,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Saved reaches the target, but the caller pins the status.
	saved := 1000.0
	active := StatusActive
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{SavedAmount: &saved, Status: &active})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusActive {
		t.Fatalf("explicit status overridden: %s", updated.Status)
	}
}

func TestUpdateGoalLoweringTargetRecomputes(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Vacation", TargetAmount: 1000, SavedAmount: 600,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	target := 500.0
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{TargetAmount: &target})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected completed after target drop, got %s", updated.Status)
	}
}

func TestUpdateGoalEmptyPatchIsNoop(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Vacation", TargetAmount: 1000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.GoalName != "Vacation" || updated.TargetAmount != 1000 {
		t.Fatalf("no-op update changed the record: %+v", updated)
	}
}

func TestGoalValidation(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	if _, err := svc.Create(context.Background(), CreateInput{UserID: 1, GoalName: " ", TargetAmount: 100}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{UserID: 1, GoalName: "x", TargetAmount: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero target, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{UserID: 1, GoalName: "x", TargetAmount: 100, Priority: "urgent"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad priority, got %v", err)
	}
}

func TestSummaryCoversActiveGoalsOnly(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	if _, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Vacation", TargetAmount: 1000, SavedAmount: 250,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, GoalName: "Laptop", TargetAmount: 400, SavedAmount: 400,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	summary, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ActiveCount != 1 {
		t.Fatalf("expected one active goal, got %d", summary.ActiveCount)
	}
	if summary.TotalTarget != 1000 || summary.TotalSaved != 250 {
		t.Fatalf("completed goal leaked into totals: %+v", summary)
	}
	if summary.ProgressPercent != 25 {
		t.Fatalf("expected 25%%, got %v", summary.ProgressPercent)
	}
}

func TestSummaryEmptyIsZero(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	summary, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.ProgressPercent != 0 || summary.ActiveCount != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestProgressPercentGuardsZeroTarget(t *testing.T) {
	g := SavingGoal{TargetAmount: 0, SavedAmount: 50}
	if got := g.ProgressPercent(); got != 0 {
		t.Fatalf("expected 0 for zero target, got %v", got)
	}
}

func TestDeleteGoalAbsent(t *testing.T) {
	svc := NewService(newFakeGoalRepo())

	if err := svc.Delete(context.Background(), 1, 5); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}
