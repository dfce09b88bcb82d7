package payment

import (
	"context"
	"time"
)

type ListFilter struct {
	LoanID uint64 // 0 = all loans
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	ListByLoan(ctx context.Context, loanID uint64) ([]Payment, error)
	ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]Payment, error)
	List(ctx context.Context, f ListFilter) ([]Payment, int64, error)
	// SumPaidBetween aggregates amounts over payments made in [from, to).
	SumPaidBetween(ctx context.Context, from, to time.Time) (float64, int64, error)
	SumAll(ctx context.Context) (float64, error)
	Delete(ctx context.Context, p *Payment) error
}
