package borrower

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	borrowers domainBorrower.Repository
	loans     domainLoan.Repository
	payments  domainPayment.Repository
}

func NewUsecase(borrowers domainBorrower.Repository, loans domainLoan.Repository, payments domainPayment.Repository) *Usecase {
	return &Usecase{borrowers: borrowers, loans: loans, payments: payments}
}

type CreateBorrowerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

type UpdateBorrowerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

type LoanSummary struct {
	LoanID  string                 `json:"loan_id"`
	Status  string                 `json:"status"`
	Details domainLoan.Calculation `json:"details"`
}

type BorrowerDTO struct {
	BorrowerID string        `json:"borrower_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Address    string        `json:"address,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Loans      []LoanSummary `json:"loans,omitempty"`
}

func toDTO(b *domainBorrower.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID: b.BorrowerID,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Address:    b.Address,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	if in.Name == "" || in.Email == "" {
		return nil, ErrInvalidInput
	}
	b := &domainBorrower.Borrower{
		BorrowerID: id.NewID32(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Notes:      in.Notes,
	}
	if err := u.borrowers.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Get returns the borrower with each owned loan's computed money figures.
func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.borrowers.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBorrower.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(b)

	loans, err := u.loans.ListByBorrower(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range loans {
		pays, err := u.payments.ListByLoan(ctx, loans[i].ID)
		if err != nil {
			return nil, err
		}
		dto.Loans = append(dto.Loans, LoanSummary{
			LoanID:  loans[i].LoanID,
			Status:  string(loans[i].Status),
			Details: domainLoan.Calculate(&loans[i], pays, now),
		})
	}
	return dto, nil
}

type ListInput struct {
	Page  int
	Limit int
}

type Page struct {
	Borrowers []BorrowerDTO `json:"borrowers"`
	Total     int64         `json:"total"`
	Page      int           `json:"page"`
	Pages     int64         `json:"pages"`
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*Page, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 10
	}
	rows, total, err := u.borrowers.List(ctx, (in.Page-1)*in.Limit, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	pages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return &Page{Borrowers: out, Total: total, Page: in.Page, Pages: pages}, nil
}

func (u *Usecase) Update(ctx context.Context, borrowerID string, in UpdateBorrowerInput) (*BorrowerDTO, error) {
	b, err := u.borrowers.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBorrower.ErrNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	if err := u.borrowers.Save(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

// Delete is blocked while the borrower owns any non-PAID loan.
func (u *Usecase) Delete(ctx context.Context, borrowerID string) error {
	b, err := u.borrowers.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBorrower.ErrNotFound
		}
		return err
	}
	n, err := u.loans.CountNonPaidByBorrower(ctx, b.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domainBorrower.ErrHasActiveLoans
	}
	return u.borrowers.Delete(ctx, b)
}
