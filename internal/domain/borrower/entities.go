package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("borrower not found")
	// ErrHasActiveLoans blocks deletion while the borrower owns any non-PAID loan.
	ErrHasActiveLoans = errors.New("borrower has active loans")
)

type Borrower struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	BorrowerID string         `gorm:"column:borrower_id;type:char(32);not null;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      string         `gorm:"size:255;not null;uniqueIndex:ux_borrowers_email" json:"email"`
	Phone      string         `gorm:"size:64" json:"phone,omitempty"`
	Address    string         `gorm:"type:text" json:"address,omitempty"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
