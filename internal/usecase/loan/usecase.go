package loan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"microloan-backend/internal/domain/audit"
	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	loans     domainLoan.Repository
	borrowers domainBorrower.Repository
	payments  domainPayment.Repository
	audit     audit.Sink
}

func NewUsecase(loans domainLoan.Repository, borrowers domainBorrower.Repository, payments domainPayment.Repository, sink audit.Sink) *Usecase {
	return &Usecase{loans: loans, borrowers: borrowers, payments: payments, audit: sink}
}

type CreateLoanInput struct {
	BorrowerID   string
	Amount       float64
	InterestRate float64
	IssuedAt     time.Time
	DueDate      time.Time
	Notes        string
}

type UpdateLoanInput struct {
	DueDate *time.Time
	Status  *string
	Notes   *string
}

type LoanDTO struct {
	LoanID     string                     `json:"loan_id"`
	BorrowerID string                     `json:"borrower_id"`
	Borrower   string                     `json:"borrower_name,omitempty"`
	Status     string                     `json:"status"`
	IssuedAt   time.Time                  `json:"issued_at"`
	DueDate    time.Time                  `json:"due_date"`
	Notes      string                     `json:"notes,omitempty"`
	Details    domainLoan.Calculation     `json:"details"`
	Risk       *domainLoan.RiskAssessment `json:"risk,omitempty"`
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || in.Amount <= 0 || in.InterestRate < 0 {
		return nil, ErrInvalidInput
	}
	if !in.DueDate.After(in.IssuedAt) {
		return nil, ErrInvalidInput
	}

	b, err := u.borrowers.GetByBorrowerID(ctx, in.BorrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBorrower.ErrNotFound
		}
		return nil, err
	}

	l := &domainLoan.Loan{
		LoanID:       id.NewID32(),
		BorrowerID:   b.ID,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		IssuedAt:     in.IssuedAt.UTC(),
		DueDate:      in.DueDate.UTC(),
		Status:       domainLoan.StatusActive,
		Notes:        in.Notes,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, "LOAN_CREATED", "", map[string]any{
		"loan_id":     l.LoanID,
		"borrower_id": b.BorrowerID,
		"amount":      l.Amount,
	})
	return u.dto(ctx, l, b, false)
}

// Get returns the loan with computed figures and a risk assessment.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	b, err := u.borrowers.GetByID(ctx, l.BorrowerID)
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, l, b, true)
}

func (u *Usecase) dto(ctx context.Context, l *domainLoan.Loan, b *domainBorrower.Borrower, withRisk bool) (*LoanDTO, error) {
	pays, err := u.payments.ListByLoan(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := &LoanDTO{
		LoanID:     l.LoanID,
		BorrowerID: b.BorrowerID,
		Borrower:   b.Name,
		Status:     string(l.Status),
		IssuedAt:   l.IssuedAt,
		DueDate:    l.DueDate,
		Notes:      l.Notes,
		Details:    domainLoan.Calculate(l, pays, now),
	}
	if withRisk {
		risk := domainLoan.AssessRisk(l, pays, now)
		out.Risk = &risk
	}
	return out, nil
}

type ListInput struct {
	Status string
	Page   int
	Limit  int
}

type Page struct {
	Loans []LoanDTO `json:"loans"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int64     `json:"pages"`
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*Page, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 10
	}
	rows, total, err := u.loans.List(ctx, domainLoan.ListFilter{
		Status: domainLoan.Status(in.Status),
		Offset: (in.Page - 1) * in.Limit,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		b, err := u.borrowers.GetByID(ctx, rows[i].BorrowerID)
		if err != nil {
			return nil, err
		}
		dto, err := u.dto(ctx, &rows[i], b, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	pages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return &Page{Loans: out, Total: total, Page: in.Page, Pages: pages}, nil
}

func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	if in.Status != nil {
		switch domainLoan.Status(*in.Status) {
		case domainLoan.StatusActive, domainLoan.StatusPaid, domainLoan.StatusDefaulted:
			l.Status = domainLoan.Status(*in.Status)
		default:
			return nil, ErrInvalidInput
		}
	}
	if in.DueDate != nil {
		l.DueDate = in.DueDate.UTC()
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
	if err := u.loans.Save(ctx, l); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, "LOAN_UPDATED", "", map[string]any{
		"loan_id": l.LoanID,
		"status":  l.Status,
	})
	b, err := u.borrowers.GetByID(ctx, l.BorrowerID)
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, l, b, false)
}

// Delete is blocked while any payment exists against the loan.
func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainLoan.ErrNotFound
		}
		return err
	}
	pays, err := u.payments.ListByLoan(ctx, l.ID)
	if err != nil {
		return err
	}
	if len(pays) > 0 {
		return domainLoan.ErrHasPayments
	}
	if err := u.loans.Delete(ctx, l); err != nil {
		return err
	}
	u.audit.Record(ctx, "LOAN_DELETED", "", map[string]any{"loan_id": l.LoanID})
	return nil
}
