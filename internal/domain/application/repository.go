package application

import "context"

type ListFilter struct {
	Status Status
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByAppID(ctx context.Context, appID string) (*Application, error)
	// GetByAppIDForUpdate locks the row so two concurrent transitions on the
	// same application cannot both pass the state guard.
	GetByAppIDForUpdate(ctx context.Context, appID string) (*Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, int64, error)
}
