package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	borrowerDomain "microloan-backend/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id uint64) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByEmail(ctx context.Context, email string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

// FindOrCreateByEmail relies on the unique index on email: if a concurrent
// insert wins the race, the duplicate-key error is resolved by re-reading
// the existing row. At most one borrower row exists per email.
func (r *BorrowerRepository) FindOrCreateByEmail(ctx context.Context, b *borrowerDomain.Borrower) (*borrowerDomain.Borrower, bool, error) {
	var out borrowerDomain.Borrower
	err := r.db.WithContext(ctx).Where("email = ?", b.Email).First(&out).Error
	if err == nil {
		return &out, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if ferr := r.db.WithContext(ctx).Where("email = ?", b.Email).First(&out).Error; ferr == nil {
			return &out, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (r *BorrowerRepository) List(ctx context.Context, offset, limit int) ([]borrowerDomain.Borrower, int64, error) {
	var out []borrowerDomain.Borrower
	var total int64
	q := r.db.WithContext(ctx).Model(&borrowerDomain.Borrower{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *BorrowerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&borrowerDomain.Borrower{}).Count(&n).Error
	return n, err
}

func (r *BorrowerRepository) Delete(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
