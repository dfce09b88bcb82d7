package applicationmock

import (
	"context"

	domain "microloan-backend/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Application) error
	SaveFn                func(ctx context.Context, a *domain.Application) error
	GetByAppIDFn          func(ctx context.Context, appID string) (*domain.Application, error)
	GetByAppIDForUpdateFn func(ctx context.Context, appID string) (*domain.Application, error)
	ListFn                func(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByAppID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDFn != nil {
		return m.GetByAppIDFn(ctx, appID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByAppIDForUpdate(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDForUpdateFn != nil {
		return m.GetByAppIDForUpdateFn(ctx, appID)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}
