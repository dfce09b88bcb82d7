package loanmock

import (
	"context"
	"time"

	domain "microloan-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters return
// context.Canceled so an unexpected call fails loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	SaveFn                   func(ctx context.Context, l *domain.Loan) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByLoanIDFn            func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn   func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn                   func(ctx context.Context, f domain.ListFilter) ([]domain.Loan, int64, error)
	ListAllFn                func(ctx context.Context) ([]domain.Loan, error)
	ListByBorrowerFn         func(ctx context.Context, borrowerID uint64) ([]domain.Loan, error)
	ListOverdueFn            func(ctx context.Context, now time.Time) ([]domain.Loan, error)
	CountNonPaidByBorrowerFn func(ctx context.Context, borrowerID uint64) (int64, error)
	CountByStatusFn          func(ctx context.Context, s domain.Status) (int64, error)
	CountFn                  func(ctx context.Context) (int64, error)
	SumIssuedBetweenFn       func(ctx context.Context, from, to time.Time) (float64, int64, error)
	SumPrincipalFn           func(ctx context.Context) (float64, error)
	DeleteFn                 func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Loan, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}
func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByBorrower(ctx context.Context, borrowerID uint64) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
func (m *Repo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, now)
	}
	return nil, nil
}
func (m *Repo) CountNonPaidByBorrower(ctx context.Context, borrowerID uint64) (int64, error) {
	if m.CountNonPaidByBorrowerFn != nil {
		return m.CountNonPaidByBorrowerFn(ctx, borrowerID)
	}
	return 0, nil
}
func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}
func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
func (m *Repo) SumIssuedBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	if m.SumIssuedBetweenFn != nil {
		return m.SumIssuedBetweenFn(ctx, from, to)
	}
	return 0, 0, nil
}
func (m *Repo) SumPrincipal(ctx context.Context) (float64, error) {
	if m.SumPrincipalFn != nil {
		return m.SumPrincipalFn(ctx)
	}
	return 0, nil
}
func (m *Repo) Delete(ctx context.Context, l *domain.Loan) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return nil
}
