package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	Save(ctx context.Context, b *Borrower) error
	GetByID(ctx context.Context, id uint64) (*Borrower, error)
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	GetByEmail(ctx context.Context, email string) (*Borrower, error)
	// FindOrCreateByEmail is idempotent: repeated calls for the same email
	// return the same row (DB uniqueness on email resolves concurrent creates).
	// The boolean reports whether a new row was inserted.
	FindOrCreateByEmail(ctx context.Context, b *Borrower) (*Borrower, bool, error)
	List(ctx context.Context, offset, limit int) ([]Borrower, int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, b *Borrower) error
}
