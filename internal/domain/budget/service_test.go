package budget

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeBudgetRepo struct {
	budgets    map[uint]*Budget
	spend      map[uint]float64
	categories map[uint]bool
	nextID     uint
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{
		budgets:    make(map[uint]*Budget),
		spend:      make(map[uint]float64),
		categories: make(map[uint]bool),
		nextID:     1,
	}
}

func (r *fakeBudgetRepo) ListWithSpend(ctx context.Context, userID uint) ([]BudgetWithSpend, error) {
	items := make([]BudgetWithSpend, 0)
	for _, b := range r.budgets {
		if b.UserID != userID {
			continue
		}
		items = append(items, BudgetWithSpend{Budget: *b, SpentAmount: r.spend[b.ID]})
	}
	return items, nil
}

func (r *fakeBudgetRepo) GetWithSpend(ctx context.Context, userID, budgetID uint) (*BudgetWithSpend, error) {
	b, ok := r.budgets[budgetID]
	if !ok || b.UserID != userID {
		return nil, ErrBudgetNotFound
	}
	return &BudgetWithSpend{Budget: *b, SpentAmount: r.spend[b.ID]}, nil
}

func (r *fakeBudgetRepo) GetByID(ctx context.Context, userID, budgetID uint) (*Budget, error) {
	b, ok := r.budgets[budgetID]
	if !ok || b.UserID != userID {
		return nil, ErrBudgetNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *Budget) error {
	budget.ID = r.nextID
	r.nextID++
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, userID, budgetID uint, fields map[string]interface{}) error {
	b, ok := r.budgets[budgetID]
	if !ok || b.UserID != userID {
		return ErrBudgetNotFound
	}
	for key, value := range fields {
		switch key {
		case "category_id":
			b.CategoryID = value.(uint)
		case "amount":
			b.Amount = value.(float64)
		case "start_date":
			b.StartDate = value.(time.Time)
		case "end_date":
			b.EndDate = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, userID, budgetID uint) (bool, error) {
	b, ok := r.budgets[budgetID]
	if !ok || b.UserID != userID {
		return false, nil
	}
	delete(r.budgets, budgetID)
	return true, nil
}

func (r *fakeBudgetRepo) CategoryExists(ctx context.Context, userID, categoryID uint) (bool, error) {
	return r.categories[categoryID], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudgetStatusDerivation(t *testing.T) {
	b := Budget{StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31)}

	cases := []struct {
		name  string
		today time.Time
		want  Status
	}{
		{"before window", date(2026, 2, 28), StatusFuture},
		{"first day", date(2026, 3, 1), StatusActive},
		{"last day", date(2026, 3, 31), StatusActive},
		{"after window", date(2026, 4, 1), StatusExpired},
	}
	for _, tc := range cases {
		if got := b.StatusOn(tc.today); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestBudgetStatusIsNeverStored(t *testing.T) {
	repo := newFakeBudgetRepo()
	repo.categories[1] = true
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		UserID:     1,
		CategoryID: 1,
		Amount:     500,
		StartDate:  date(2026, 3, 1),
		EndDate:    date(2026, 3, 31),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The same row classifies differently on different days.
	if got := created.StatusOn(date(2026, 2, 1)); got != StatusFuture {
		t.Fatalf("expected future, got %s", got)
	}
	if got := created.StatusOn(date(2026, 3, 15)); got != StatusActive {
		t.Fatalf("expected active, got %s", got)
	}
	if got := created.StatusOn(date(2026, 5, 1)); got != StatusExpired {
		t.Fatalf("expected expired, got %s", got)
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	repo := newFakeBudgetRepo()
	repo.categories[1] = true
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 1, Amount: 0,
		StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero amount, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 1, Amount: 100,
		StartDate: date(2026, 3, 31), EndDate: date(2026, 3, 1),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted window, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 9, Amount: 100,
		StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListBudgetsSpendAndRemaining(t *testing.T) {
	repo := newFakeBudgetRepo()
	repo.categories[1] = true
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 1, Amount: 500,
		StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.spend[created.ID] = 120

	items, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one budget, got %d", len(items))
	}
	if items[0].SpentAmount != 120 {
		t.Fatalf("expected spent 120, got %v", items[0].SpentAmount)
	}
	if items[0].RemainingAmount() != 380 {
		t.Fatalf("expected remaining 380, got %v", items[0].RemainingAmount())
	}
}

func TestMutationResponsesCarryLedgerSpend(t *testing.T) {
	repo := newFakeBudgetRepo()
	repo.categories[1] = true
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 1, Amount: 500,
		StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.SpentAmount != 0 || created.RemainingAmount() != 500 {
		t.Fatalf("fresh budget: expected spent 0 remaining 500, got %v and %v",
			created.SpentAmount, created.RemainingAmount())
	}

	// Expenses land in the ledger; the next update must reflect them.
	repo.spend[created.ID] = 100

	amount := 500.0
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SpentAmount != 100 {
		t.Fatalf("expected spent 100, got %v", updated.SpentAmount)
	}
	if updated.RemainingAmount() != 400 {
		t.Fatalf("expected remaining 400, got %v", updated.RemainingAmount())
	}
}

func TestUpdateBudgetWindowConsistency(t *testing.T) {
	repo := newFakeBudgetRepo()
	repo.categories[1] = true
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, CategoryID: 1, Amount: 500,
		StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Moving only the start past the stored end must fail.
	badStart := date(2026, 4, 15)
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{StartDate: &badStart}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	amount := 800.0
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 800 {
		t.Fatalf("expected amount 800, got %v", updated.Amount)
	}
}

func TestDeleteBudgetAbsent(t *testing.T) {
	svc := NewService(newFakeBudgetRepo())

	if err := svc.Delete(context.Background(), 1, 77); !errors.Is(err, ErrBudgetNotFound) {
		t.Fatalf("expected ErrBudgetNotFound, got %v", err)
	}
}
