package mysql

import (
	"context"
	"errors"
	"testing"

	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/id"
)

// WithinLoanTx takes a row lock, which sqlite cannot express, so only the
// plain transaction path is covered here.

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	b := makeBorrower("maria@example.org")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.Create(ctx, b); err != nil {
			return err
		}
		return r.Loans.Create(ctx, makeLoan(id.NewID32(), b.ID))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if n, _ := NewBorrowerRepository(db).Count(ctx); n != 1 {
		t.Fatalf("borrowers=%d", n)
	}
	if n, _ := NewLoanRepository(db).Count(ctx); n != 1 {
		t.Fatalf("loans=%d", n)
	}
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.Create(ctx, makeBorrower("maria@example.org")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}

	if n, _ := NewBorrowerRepository(db).Count(ctx); n != 0 {
		t.Fatalf("borrower row survived rollback: %d", n)
	}
}
