package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusSubmitted             Status = "SUBMITTED"
	StatusUnderReview           Status = "UNDER_REVIEW"
	StatusConditionallyApproved Status = "CONDITIONALLY_APPROVED"
	StatusDocumentsSigned       Status = "DOCUMENTS_SIGNED"
	StatusApproved              Status = "APPROVED"
	StatusDisbursed             Status = "DISBURSED"
	StatusRejected              Status = "REJECTED"
)

// Terminal reports whether no further transition can leave the state.
func (s Status) Terminal() bool {
	return s == StatusDisbursed || s == StatusRejected
}

var (
	ErrNotFound = errors.New("application not found")
	// ErrInvalidTransition: the event is not allowed from the application's
	// current persisted state. The operation performs no mutation.
	ErrInvalidTransition = errors.New("invalid application state transition")
	// ErrInvalidInput wraps per-event validation failures, reported before
	// any store access.
	ErrInvalidInput = errors.New("invalid input")
)

// Application is a prospective loan request. It stays independent of the
// Loan domain until final approval spawns a Borrower and a Loan; it is
// never deleted, only driven to a terminal state.
type Application struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	AppID string `gorm:"column:app_id;type:char(32);not null;uniqueIndex:ux_applications_app_id" json:"application_id"`

	FullName         string  `gorm:"size:255;not null" json:"full_name"`
	Email            string  `gorm:"size:255;not null;index:idx_applications_email" json:"email"`
	Phone            string  `gorm:"size:64;not null" json:"phone"`
	Address          string  `gorm:"type:text;not null" json:"address"`
	EmploymentStatus string  `gorm:"size:128;not null" json:"employment_status"`
	MonthlyIncome    float64 `gorm:"type:decimal(18,2);not null" json:"monthly_income"`
	LoanAmount       float64 `gorm:"type:decimal(18,2);not null" json:"loan_amount"`
	LoanPurpose      string  `gorm:"type:text;not null" json:"loan_purpose"`

	Documents []string `gorm:"type:text;serializer:json" json:"documents,omitempty"`

	Status Status `gorm:"type:enum('SUBMITTED','UNDER_REVIEW','CONDITIONALLY_APPROVED','DOCUMENTS_SIGNED','APPROVED','DISBURSED','REJECTED');default:'SUBMITTED';index:idx_applications_status" json:"status"`

	ReviewedBy  string     `gorm:"size:32" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`

	ConditionalApprovalNotes string     `gorm:"type:text" json:"conditional_approval_notes,omitempty"`
	RequiredDocuments        []string   `gorm:"type:text;serializer:json" json:"required_documents,omitempty"`
	SignedDocuments          []string   `gorm:"type:text;serializer:json" json:"signed_documents,omitempty"`
	DocumentsSignedAt        *time.Time `json:"documents_signed_at,omitempty"`

	FinalApprovedBy string     `gorm:"size:32" json:"final_approved_by,omitempty"`
	FinalApprovedAt *time.Time `json:"final_approved_at,omitempty"`

	DisbursedBy           string     `gorm:"size:32" json:"disbursed_by,omitempty"`
	DisbursedAt           *time.Time `json:"disbursed_at,omitempty"`
	DisbursementAmount    *float64   `gorm:"type:decimal(18,2)" json:"disbursement_amount,omitempty"`
	DisbursementMethod    string     `gorm:"size:64" json:"disbursement_method,omitempty"`
	DisbursementReference string     `gorm:"size:128" json:"disbursement_reference,omitempty"`

	// FK to loans.id, set once final approval spawns the loan.
	LoanID *uint64 `gorm:"column:loan_id;index" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
