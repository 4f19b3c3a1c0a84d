package category

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCategoryRepo struct {
	categories     map[uint]*Category
	budgetRefs     map[uint]int64
	transactionRef map[uint]int64
	nextID         uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:     make(map[uint]*Category),
		budgetRefs:     make(map[uint]int64),
		transactionRef: make(map[uint]int64),
		nextID:         1,
	}
}

func (r *fakeCategoryRepo) List(ctx context.Context, userID uint) ([]Category, error) {
	items := make([]Category, 0)
	for _, c := range r.categories {
		if c.UserID == userID {
			items = append(items, *c)
		}
	}
	return items, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) CountByName(ctx context.Context, userID uint, name string) (int64, error) {
	var count int64
	for _, c := range r.categories {
		if c.UserID == userID && strings.EqualFold(c.Name, name) {
			count++
		}
	}
	return count, nil
}

func (r *fakeCategoryRepo) Exists(ctx context.Context, userID, categoryID uint) (bool, error) {
	c, ok := r.categories[categoryID]
	return ok && c.UserID == userID, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, userID, categoryID uint) (bool, error) {
	c, ok := r.categories[categoryID]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(r.categories, categoryID)
	return true, nil
}

func (r *fakeCategoryRepo) CountBudgetRefs(ctx context.Context, categoryID uint) (int64, error) {
	return r.budgetRefs[categoryID], nil
}

func (r *fakeCategoryRepo) CountTransactionRefs(ctx context.Context, categoryID uint) (int64, error) {
	return r.transactionRef[categoryID], nil
}

func TestCreateCategoryTrimsName(t *testing.T) {
	svc := NewService(newFakeCategoryRepo())

	created, err := svc.Create(context.Background(), 1, "  Groceries  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Groceries" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCreateCategoryCaseInsensitiveDuplicate(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), 1, "Groceries"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, "groceries"); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCreateCategorySameNameDifferentUsers(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), 1, "Groceries"); err != nil {
		t.Fatalf("user 1 create: %v", err)
	}
	if _, err := svc.Create(context.Background(), 2, "Groceries"); err != nil {
		t.Fatalf("user 2 create should not conflict: %v", err)
	}
}

func TestCreateCategoryNameTooLong(t *testing.T) {
	svc := NewService(newFakeCategoryRepo())

	if _, err := svc.Create(context.Background(), 1, strings.Repeat("x", maxNameLength+1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 1, "Groceries")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	repo.budgetRefs[created.ID] = 1
	if err := svc.Delete(context.Background(), 1, created.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse for budget ref, got %v", err)
	}

	repo.budgetRefs[created.ID] = 0
	repo.transactionRef[created.ID] = 2
	if err := svc.Delete(context.Background(), 1, created.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse for transaction ref, got %v", err)
	}

	repo.transactionRef[created.ID] = 0
	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
}

func TestDeleteCategoryOwnershipBeforeInUse(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 1, "Groceries")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.budgetRefs[created.ID] = 1

	// Another user's delete answers not-found even though the category is
	// referenced; a conflict here would confirm the row exists.
	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound for foreign category, got %v", err)
	}
	if _, ok := repo.categories[created.ID]; !ok {
		t.Fatalf("category must survive a foreign delete attempt")
	}
}

func TestDeleteCategoryAbsent(t *testing.T) {
	svc := NewService(newFakeCategoryRepo())

	if err := svc.Delete(context.Background(), 1, 99); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
