package borrowermock

import (
	"context"

	domain "microloan-backend/internal/domain/borrower"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, b *domain.Borrower) error
	SaveFn                func(ctx context.Context, b *domain.Borrower) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Borrower, error)
	GetByBorrowerIDFn     func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	GetByEmailFn          func(ctx context.Context, email string) (*domain.Borrower, error)
	FindOrCreateByEmailFn func(ctx context.Context, b *domain.Borrower) (*domain.Borrower, bool, error)
	ListFn                func(ctx context.Context, offset, limit int) ([]domain.Borrower, int64, error)
	CountFn               func(ctx context.Context) (int64, error)
	DeleteFn              func(ctx context.Context, b *domain.Borrower) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Borrower, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) FindOrCreateByEmail(ctx context.Context, b *domain.Borrower) (*domain.Borrower, bool, error) {
	if m.FindOrCreateByEmailFn != nil {
		return m.FindOrCreateByEmailFn(ctx, b)
	}
	return nil, false, context.Canceled
}
func (m *Repo) List(ctx context.Context, offset, limit int) ([]domain.Borrower, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, 0, nil
}
func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
func (m *Repo) Delete(ctx context.Context, b *domain.Borrower) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, b)
	}
	return nil
}
