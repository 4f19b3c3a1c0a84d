package debt

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeDebtRepo struct {
	debts         map[uint]*Debt
	walletBalance float64
	walletExists  bool
	nextID        uint
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[uint]*Debt), walletExists: true, nextID: 1}
}

func (r *fakeDebtRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeDebtRepo) List(ctx context.Context, userID uint) ([]Debt, error) {
	items := make([]Debt, 0)
	for _, d := range r.debts {
		if d.UserID == userID {
			items = append(items, *d)
		}
	}
	return items, nil
}

func (r *fakeDebtRepo) GetByID(ctx context.Context, userID, debtID uint) (*Debt, error) {
	d, ok := r.debts[debtID]
	if !ok || d.UserID != userID {
		return nil, ErrDebtNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDebtRepo) Create(ctx context.Context, debt *Debt) error {
	debt.ID = r.nextID
	r.nextID++
	r.debts[debt.ID] = debt
	return nil
}

func (r *fakeDebtRepo) Update(ctx context.Context, userID, debtID uint, fields map[string]interface{}) error {
	d, ok := r.debts[debtID]
	if !ok || d.UserID != userID {
		return ErrDebtNotFound
	}
	for key, value := range fields {
		switch key {
		case "debtor_name":
			d.DebtorName = value.(string)
		case "amount":
			d.Amount = value.(float64)
		case "due_date":
			d.DueDate = value.(time.Time)
		case "description":
			d.Description = value.(string)
		case "status":
			d.Status = value.(Status)
		}
	}
	return nil
}

func (r *fakeDebtRepo) Upcoming(ctx context.Context, userID uint, from time.Time, limit int) ([]Debt, error) {
	items := make([]Debt, 0)
	for _, d := range r.debts {
		if d.UserID != userID || d.Status != StatusPending || d.DueDate.Before(from) {
			continue
		}
		items = append(items, *d)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[j].DueDate.Before(items[i].DueDate) {
				items[i], items[j] = items[j], items[i]
			}
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeDebtRepo) AdjustWalletBalance(ctx context.Context, userID uint, delta float64) (bool, error) {
	if !r.walletExists {
		return false, nil
	}
	r.walletBalance += delta
	return true, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedDebt(t *testing.T, svc *Service, debtType Type, amount float64, due time.Time) *Debt {
	t.Helper()
	created, err := svc.Create(context.Background(), CreateInput{
		UserID:     1,
		DebtorName: "john",
		Amount:     amount,
		Type:       debtType,
		DueDate:    due,
	})
	if err != nil {
		t.Fatalf("seed debt: %v", err)
	}
	return created
}

func TestCreateDebtStartsPending(t *testing.T) {
	svc := NewService(newFakeDebtRepo())

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))
	if created.Status != StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
}

func TestSettleIncomingAddsToWallet(t *testing.T) {
	repo := newFakeDebtRepo()
	repo.walletBalance = 1000
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))

	paid := StatusPaid
	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if updated.Status != StatusPaid {
		t.Fatalf("expected paid, got %s", updated.Status)
	}
	if repo.walletBalance != 1200 {
		t.Fatalf("expected balance 1200, got %v", repo.walletBalance)
	}
}

func TestSettleOutgoingSubtractsFromWallet(t *testing.T) {
	repo := newFakeDebtRepo()
	repo.walletBalance = 1000
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeOutgoing, 300, date(2026, 4, 1))

	paid := StatusPaid
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid}); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if repo.walletBalance != 700 {
		t.Fatalf("expected balance 700, got %v", repo.walletBalance)
	}
}

func TestSettleAppliesExactlyOnce(t *testing.T) {
	repo := newFakeDebtRepo()
	repo.walletBalance = 1000
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))

	paid := StatusPaid
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid}); err != nil {
		t.Fatalf("first settle: %v", err)
	}

	_, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid})
	if !errors.Is(err, ErrSameStatus) {
		t.Fatalf("expected ErrSameStatus, got %v", err)
	}
	if repo.walletBalance != 1200 {
		t.Fatalf("repeat settle moved the balance: %v", repo.walletBalance)
	}
}

func TestPaidCannotRevertToPending(t *testing.T) {
	repo := newFakeDebtRepo()
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))

	paid := StatusPaid
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid}); err != nil {
		t.Fatalf("settle: %v", err)
	}

	pending := StatusPending
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &pending}); !errors.Is(err, ErrStatusReverted) {
		t.Fatalf("expected ErrStatusReverted, got %v", err)
	}
}

func TestSettleWithoutWallet(t *testing.T) {
	repo := newFakeDebtRepo()
	repo.walletExists = false
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))

	paid := StatusPaid
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid}); !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}

func TestSettleUsesUpdatedAmount(t *testing.T) {
	repo := newFakeDebtRepo()
	repo.walletBalance = 1000
	svc := NewService(repo)

	created := seedDebt(t, svc, TypeIncoming, 200, date(2026, 4, 1))

	paid := StatusPaid
	amount := 250.0
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateInput{Status: &paid, Amount: &amount}); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if repo.walletBalance != 1250 {
		t.Fatalf("expected the patched amount to settle, got %v", repo.walletBalance)
	}
}

func TestUpcomingLimitsAndOrders(t *testing.T) {
	repo := newFakeDebtRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return date(2026, 3, 15) }

	for day := 10; day <= 22; day++ {
		seedDebt(t, svc, TypeOutgoing, 50, date(2026, 3, day))
	}

	items, err := svc.Upcoming(context.Background(), 1)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(items) != upcomingLimit {
		t.Fatalf("expected %d pending debts, got %d", upcomingLimit, len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].DueDate.Before(items[i-1].DueDate) {
			t.Fatalf("upcoming not ordered by due date: %+v", items)
		}
	}
	if items[0].DueDate != date(2026, 3, 15) {
		t.Fatalf("expected debts due today included, got earliest %s", items[0].DueDate)
	}
}
