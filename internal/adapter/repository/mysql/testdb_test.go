package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/audit"
	borrowerDomain "microloan-backend/internal/domain/borrower"
	paymentDomain "microloan-backend/internal/domain/payment"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type loanSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	LoanID       string         `gorm:"size:32;column:loan_id;uniqueIndex"`
	BorrowerID   uint64         `gorm:"column:borrower_id"`
	Amount       float64        `gorm:"column:amount"`
	InterestRate float64        `gorm:"column:interest_rate"`
	IssuedAt     time.Time      `gorm:"column:issued_at"`
	DueDate      time.Time      `gorm:"column:due_date"`
	Status       string         `gorm:"type:text;column:status"` // ← no enum
	Notes        string         `gorm:"column:notes"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type applicationSQLite struct {
	ID                       uint64         `gorm:"primaryKey;column:id"`
	AppID                    string         `gorm:"size:32;column:app_id;uniqueIndex"`
	FullName                 string         `gorm:"column:full_name"`
	Email                    string         `gorm:"column:email"`
	Phone                    string         `gorm:"column:phone"`
	Address                  string         `gorm:"column:address"`
	EmploymentStatus         string         `gorm:"column:employment_status"`
	MonthlyIncome            float64        `gorm:"column:monthly_income"`
	LoanAmount               float64        `gorm:"column:loan_amount"`
	LoanPurpose              string         `gorm:"column:loan_purpose"`
	Documents                string         `gorm:"type:text;column:documents"`
	Status                   string         `gorm:"type:text;column:status"` // ← no enum
	ReviewedBy               string         `gorm:"column:reviewed_by"`
	ReviewedAt               *time.Time     `gorm:"column:reviewed_at"`
	ReviewNotes              string         `gorm:"column:review_notes"`
	ConditionalApprovalNotes string         `gorm:"column:conditional_approval_notes"`
	RequiredDocuments        string         `gorm:"type:text;column:required_documents"`
	SignedDocuments          string         `gorm:"type:text;column:signed_documents"`
	DocumentsSignedAt        *time.Time     `gorm:"column:documents_signed_at"`
	FinalApprovedBy          string         `gorm:"column:final_approved_by"`
	FinalApprovedAt          *time.Time     `gorm:"column:final_approved_at"`
	DisbursedBy              string         `gorm:"column:disbursed_by"`
	DisbursedAt              *time.Time     `gorm:"column:disbursed_at"`
	DisbursementAmount       *float64       `gorm:"column:disbursement_amount"`
	DisbursementMethod       string         `gorm:"column:disbursement_method"`
	DisbursementReference    string         `gorm:"column:disbursement_reference"`
	LoanID                   *uint64        `gorm:"column:loan_id"`
	CreatedAt                time.Time      `gorm:"column:created_at"`
	UpdatedAt                time.Time      `gorm:"column:updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// schemas. Borrowers, payments, and audit entries carry no enum columns so
// their domain models migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{},
		&applicationSQLite{},
		&borrowerDomain.Borrower{},
		&paymentDomain.Payment{},
		&audit.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
