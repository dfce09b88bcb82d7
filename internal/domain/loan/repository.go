package loan

import (
	"context"
	"time"
)

type ListFilter struct {
	Status Status
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE) so ledger
	// writes and status recomputation cannot race.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context, f ListFilter) ([]Loan, int64, error)
	ListAll(ctx context.Context) ([]Loan, error)
	ListByBorrower(ctx context.Context, borrowerID uint64) ([]Loan, error)
	// ListOverdue returns ACTIVE loans whose due date is before now.
	ListOverdue(ctx context.Context, now time.Time) ([]Loan, error)
	CountNonPaidByBorrower(ctx context.Context, borrowerID uint64) (int64, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
	Count(ctx context.Context) (int64, error)
	// SumIssuedBetween aggregates principal over loans issued in [from, to).
	SumIssuedBetween(ctx context.Context, from, to time.Time) (float64, int64, error)
	SumPrincipal(ctx context.Context) (float64, error)
	Delete(ctx context.Context, l *Loan) error
}
