package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPaid      Status = "PAID"
	StatusDefaulted Status = "DEFAULTED"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrHasPayments blocks deletion while payments exist against the loan.
	ErrHasPayments = errors.New("loan has recorded payments")
)

// Loan carries a flat (non-compounding) interest rate as a percentage of
// principal. Status is a cached projection of the payment ledger: every
// ledger mutation recomputes and persists it in the same transaction.
type Loan struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	// FK to borrowers.id (numeric)
	BorrowerID   uint64         `gorm:"column:borrower_id;not null;index:idx_loans_borrower" json:"-"`
	Amount       float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	InterestRate float64        `gorm:"type:decimal(6,2);not null;default:0" json:"interest_rate"`
	IssuedAt     time.Time      `gorm:"not null" json:"issued_at"`
	DueDate      time.Time      `gorm:"not null" json:"due_date"`
	Status       Status         `gorm:"type:enum('ACTIVE','PAID','DEFAULTED');default:'ACTIVE'" json:"status"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
