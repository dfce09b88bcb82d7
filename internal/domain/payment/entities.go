package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrLoanAlreadyPaid rejects new payments against a PAID loan.
	ErrLoanAlreadyPaid = errors.New("loan is already fully paid")
	// ErrExceedsBalance rejects a payment (or edit) that would drive the
	// loan balance negative.
	ErrExceedsBalance = errors.New("payment amount exceeds remaining balance")
)

type Payment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// FK to loans.id (numeric)
	LoanID    uint64         `gorm:"column:loan_id;not null;index:idx_payments_loan" json:"-"`
	Amount    float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaidAt    time.Time      `gorm:"not null;index:idx_payments_paid_at" json:"paid_at"`
	Method    string         `gorm:"size:64" json:"method,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
