package uow

import (
	"context"

	"microloan-backend/internal/domain/application"
	"microloan-backend/internal/domain/borrower"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/payment"
)

type Repos struct {
	Borrowers    borrower.Repository
	Loans        loan.Repository
	Payments     payment.Repository
	Applications application.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
