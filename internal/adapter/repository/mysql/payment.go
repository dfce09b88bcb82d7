package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	paymentDomain "microloan-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("paid_at, id").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]paymentDomain.Payment, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id IN ?", loanIDs).
		Order("paid_at, id").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) List(ctx context.Context, f paymentDomain.ListFilter) ([]paymentDomain.Payment, int64, error) {
	var out []paymentDomain.Payment
	var total int64
	q := r.db.WithContext(ctx).Model(&paymentDomain.Payment{})
	if f.LoanID != 0 {
		q = q.Where("loan_id = ?", f.LoanID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("paid_at DESC, id DESC").Offset(f.Offset).Limit(f.Limit).Find(&out).Error
	return out, total, err
}

func (r *PaymentRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	type agg struct {
		Total float64
		N     int64
	}
	var a agg
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Select("COALESCE(SUM(amount),0) AS total, COUNT(*) AS n").
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Scan(&a).Error
	return a.Total, a.N, err
}

func (r *PaymentRepository) SumAll(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Select("COALESCE(SUM(amount),0)").
		Scan(&total).Error
	return total, err
}

func (r *PaymentRepository) Delete(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
