package paymentmock

import (
	"context"
	"time"

	domain "microloan-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Payment) error
	SaveFn           func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByLoanFn     func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
	ListByLoanIDsFn  func(ctx context.Context, loanIDs []uint64) ([]domain.Payment, error)
	ListFn           func(ctx context.Context, f domain.ListFilter) ([]domain.Payment, int64, error)
	SumPaidBetweenFn func(ctx context.Context, from, to time.Time) (float64, int64, error)
	SumAllFn         func(ctx context.Context) (float64, error)
	DeleteFn         func(ctx context.Context, p *domain.Payment) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}
func (m *Repo) ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDsFn != nil {
		return m.ListByLoanIDsFn(ctx, loanIDs)
	}
	return nil, nil
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Payment, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}
func (m *Repo) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	if m.SumPaidBetweenFn != nil {
		return m.SumPaidBetweenFn(ctx, from, to)
	}
	return 0, 0, nil
}
func (m *Repo) SumAll(ctx context.Context) (float64, error) {
	if m.SumAllFn != nil {
		return m.SumAllFn(ctx)
	}
	return 0, nil
}
func (m *Repo) Delete(ctx context.Context, p *domain.Payment) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p)
	}
	return nil
}
