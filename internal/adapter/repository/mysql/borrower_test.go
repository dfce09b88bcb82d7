package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	borrowerDomain "microloan-backend/internal/domain/borrower"
	"microloan-backend/pkg/id"
)

func makeBorrower(email string) *borrowerDomain.Borrower {
	return &borrowerDomain.Borrower{
		BorrowerID: id.NewID32(),
		Name:       "Maria Santos",
		Email:      email,
	}
}

func TestBorrowerCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	b := makeBorrower("maria@example.org")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByBorrowerID(ctx, b.BorrowerID)
	if err != nil {
		t.Fatalf("GetByBorrowerID: %v", err)
	}
	if got.Email != "maria@example.org" {
		t.Errorf("unexpected borrower: %+v", got)
	}

	if _, err := repo.GetByEmail(ctx, "maria@example.org"); err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.org"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindOrCreateByEmail_Idempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	first, created, err := repo.FindOrCreateByEmail(ctx, makeBorrower("maria@example.org"))
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !created {
		t.Fatal("first call should create")
	}

	second, created, err := repo.FindOrCreateByEmail(ctx, makeBorrower("maria@example.org"))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if created {
		t.Fatal("second call must not create")
	}
	if second.ID != first.ID {
		t.Fatalf("got different rows: %d vs %d", second.ID, first.ID)
	}

	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("rows=%d want 1", n)
	}
}

func TestBorrowerList(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, makeBorrower(id.NewID32()+"@example.org")); err != nil {
			t.Fatal(err)
		}
	}
	rows, total, err := repo.List(ctx, 0, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(rows) != 2 {
		t.Fatalf("total=%d rows=%d", total, len(rows))
	}
}

func TestBorrowerDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	b := makeBorrower("maria@example.org")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, b); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByBorrowerID(ctx, b.BorrowerID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
