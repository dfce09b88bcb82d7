package payment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/audit"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/internal/infrastructure/metrics"
	"microloan-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

// Usecase is the payment ledger. Every mutation runs in one transaction
// with the loan row locked, recomputing and persisting the loan status so
// a concurrent reader can never observe a payment total the status does
// not reflect.
type Usecase struct {
	payments domainPayment.Repository
	loans    domainLoan.Repository
	uow      uow.UnitOfWork
	audit    audit.Sink
	log      *zap.Logger
}

func NewUsecase(payments domainPayment.Repository, loans domainLoan.Repository, tx uow.UnitOfWork, sink audit.Sink, log *zap.Logger) *Usecase {
	return &Usecase{payments: payments, loans: loans, uow: tx, audit: sink, log: log}
}

type CreatePaymentInput struct {
	LoanID string
	Amount float64
	PaidAt *time.Time
	Method string
	Notes  string
}

type UpdatePaymentInput struct {
	Amount *float64
	PaidAt *time.Time
	Method *string
	Notes  *string
}

type PaymentDTO struct {
	PaymentID  string    `json:"payment_id"`
	LoanID     string    `json:"loan_id"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
	Method     string    `json:"method,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoanStatus string    `json:"loan_status"`
}

func toDTO(p *domainPayment.Payment, loanID string, status domainLoan.Status) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:  p.PaymentID,
		LoanID:     loanID,
		Amount:     p.Amount,
		PaidAt:     p.PaidAt,
		Method:     p.Method,
		Notes:      p.Notes,
		LoanStatus: string(status),
	}
}

// statusFor recomputes the cached status projection from ledger totals.
// A DEFAULTED loan whose ledger later covers the debt becomes PAID.
func statusFor(totalPaid, totalOwed float64) domainLoan.Status {
	if domainLoan.CoversOwed(totalPaid, totalOwed) {
		return domainLoan.StatusPaid
	}
	return domainLoan.StatusActive
}

func (u *Usecase) Create(ctx context.Context, in CreatePaymentInput) (*PaymentDTO, error) {
	if in.LoanID == "" || in.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status == domainLoan.StatusPaid {
			return domainPayment.ErrLoanAlreadyPaid
		}

		pays, err := r.Payments.ListByLoan(ctx, l.ID)
		if err != nil {
			return err
		}
		calc := domainLoan.Calculate(l, pays, time.Now().UTC())
		if domainLoan.Exceeds(in.Amount, calc.Balance) {
			return domainPayment.ErrExceedsBalance
		}

		paidAt := time.Now().UTC()
		if in.PaidAt != nil {
			paidAt = in.PaidAt.UTC()
		}
		p := &domainPayment.Payment{
			PaymentID: id.NewID32(),
			LoanID:    l.ID,
			Amount:    in.Amount,
			PaidAt:    paidAt,
			Method:    in.Method,
			Notes:     in.Notes,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.Status = statusFor(domainLoan.SumAmounts(append(pays, *p)), calc.TotalOwed)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = toDTO(p, l.LoanID, l.Status)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	metrics.LedgerOperations.WithLabelValues("create").Inc()
	u.audit.Record(ctx, "PAYMENT_RECEIVED", "", map[string]any{
		"payment_id": dto.PaymentID,
		"loan_id":    dto.LoanID,
		"amount":     dto.Amount,
	})
	return dto, nil
}

// Update corrects a payment's amount/date/notes. The new total is checked
// excluding the edited row; the loan status is recomputed both directions.
func (u *Usecase) Update(ctx context.Context, paymentID string, in UpdatePaymentInput) (*PaymentDTO, error) {
	if in.Amount != nil && *in.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainPayment.ErrNotFound
			}
			return err
		}
		l, err := r.Loans.GetByIDForUpdate(ctx, p.LoanID)
		if err != nil {
			return err
		}
		pays, err := r.Payments.ListByLoan(ctx, l.ID)
		if err != nil {
			return err
		}

		newAmount := p.Amount
		if in.Amount != nil {
			newAmount = *in.Amount
		}
		var others []domainPayment.Payment
		for _, q := range pays {
			if q.ID != p.ID {
				others = append(others, q)
			}
		}
		calc := domainLoan.Calculate(l, nil, time.Now().UTC())
		newTotal := domainLoan.SumAmounts(append(others, domainPayment.Payment{Amount: newAmount}))
		if domainLoan.Exceeds(newTotal, calc.TotalOwed) {
			return domainPayment.ErrExceedsBalance
		}

		if in.Amount != nil {
			p.Amount = *in.Amount
		}
		if in.PaidAt != nil {
			p.PaidAt = in.PaidAt.UTC()
		}
		if in.Method != nil {
			p.Method = *in.Method
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		l.Status = statusFor(newTotal, calc.TotalOwed)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = toDTO(p, l.LoanID, l.Status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.LedgerOperations.WithLabelValues("update").Inc()
	u.audit.Record(ctx, "PAYMENT_UPDATED", "", map[string]any{
		"payment_id": dto.PaymentID,
		"loan_id":    dto.LoanID,
		"amount":     dto.Amount,
	})
	return dto, nil
}

// Delete removes a payment and recomputes the loan status from the
// remaining ledger; this can flip a PAID loan back to ACTIVE.
func (u *Usecase) Delete(ctx context.Context, paymentID string) error {
	var loanID string
	var amount float64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainPayment.ErrNotFound
			}
			return err
		}
		l, err := r.Loans.GetByIDForUpdate(ctx, p.LoanID)
		if err != nil {
			return err
		}
		if err := r.Payments.Delete(ctx, p); err != nil {
			return err
		}

		remaining, err := r.Payments.ListByLoan(ctx, l.ID)
		if err != nil {
			return err
		}
		calc := domainLoan.Calculate(l, nil, time.Now().UTC())
		l.Status = statusFor(domainLoan.SumAmounts(remaining), calc.TotalOwed)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		loanID, amount = l.LoanID, p.Amount
		return nil
	})
	if err != nil {
		return err
	}

	metrics.LedgerOperations.WithLabelValues("delete").Inc()
	u.audit.Record(ctx, "PAYMENT_DELETED", "", map[string]any{
		"payment_id": paymentID,
		"loan_id":    loanID,
		"amount":     amount,
	})
	return nil
}

func (u *Usecase) Get(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainPayment.ErrNotFound
		}
		return nil, err
	}
	l, err := u.loans.GetByID(ctx, p.LoanID)
	if err != nil {
		return nil, err
	}
	return toDTO(p, l.LoanID, l.Status), nil
}

type ListPaymentsInput struct {
	LoanID string
	Page   int
	Limit  int
}

type PaymentPage struct {
	Payments []PaymentDTO `json:"payments"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	Pages    int64        `json:"pages"`
}

func (u *Usecase) List(ctx context.Context, in ListPaymentsInput) (*PaymentPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 10
	}

	f := domainPayment.ListFilter{Offset: (in.Page - 1) * in.Limit, Limit: in.Limit}
	if in.LoanID != "" {
		l, err := u.loans.GetByLoanID(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainLoan.ErrNotFound
			}
			return nil, err
		}
		f.LoanID = l.ID
	}

	pays, total, err := u.payments.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentDTO, 0, len(pays))
	for i := range pays {
		l, err := u.loans.GetByID(ctx, pays[i].LoanID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDTO(&pays[i], l.LoanID, l.Status))
	}
	pages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return &PaymentPage{Payments: out, Total: total, Page: in.Page, Pages: pages}, nil
}
