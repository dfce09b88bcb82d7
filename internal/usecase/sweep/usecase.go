package sweep

import (
	"context"
	"time"

	"go.uber.org/zap"

	"microloan-backend/internal/domain/audit"
	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/notify"
)

// Notifier receives reminder messages for delivery.
type Notifier interface {
	Enqueue(m notify.Message)
}

// Usecase walks every overdue loan and queues a payment reminder for
// its borrower. Meant to run from a scheduled job, not a request path.
type Usecase struct {
	loans     domainLoan.Repository
	payments  domainPayment.Repository
	borrowers domainBorrower.Repository
	audit     audit.Sink
	notifier  Notifier
	log       *zap.Logger
}

func NewUsecase(loans domainLoan.Repository, payments domainPayment.Repository, borrowers domainBorrower.Repository, sink audit.Sink, n Notifier, log *zap.Logger) *Usecase {
	return &Usecase{loans: loans, payments: payments, borrowers: borrowers, audit: sink, notifier: n, log: log}
}

type Result struct {
	Scanned  int `json:"scanned"`
	Notified int `json:"notified"`
	Skipped  int `json:"skipped"`
}

// Run scans ACTIVE loans past their due date. A loan whose ledger
// already covers the debt, or whose borrower has no email on file, is
// skipped rather than failed; one bad row must not abort the sweep.
func (u *Usecase) Run(ctx context.Context) (*Result, error) {
	now := time.Now().UTC()
	overdue, err := u.loans.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	res := &Result{Scanned: len(overdue)}
	for i := range overdue {
		l := &overdue[i]

		pays, err := u.payments.ListByLoan(ctx, l.ID)
		if err != nil {
			u.log.Warn("overdue sweep: listing payments failed",
				zap.String("loan_id", l.LoanID), zap.Error(err))
			res.Skipped++
			continue
		}
		calc := domainLoan.Calculate(l, pays, now)
		if !calc.IsOverdue || calc.Balance <= 0 {
			res.Skipped++
			continue
		}

		b, err := u.borrowers.GetByID(ctx, l.BorrowerID)
		if err != nil {
			u.log.Warn("overdue sweep: borrower lookup failed",
				zap.String("loan_id", l.LoanID), zap.Error(err))
			res.Skipped++
			continue
		}
		if b.Email == "" {
			res.Skipped++
			continue
		}

		u.notifier.Enqueue(notify.Message{
			Kind:      notify.KindPaymentReminder,
			To:        b.Email,
			Name:      b.Name,
			Amount:    l.Amount,
			AmountDue: calc.Balance,
			DueDate:   l.DueDate,
		})
		res.Notified++
	}

	u.audit.Record(ctx, "CRON_OVERDUE_NOTIFICATIONS", "system", map[string]any{
		"scanned":  res.Scanned,
		"notified": res.Notified,
		"skipped":  res.Skipped,
	})
	u.log.Info("overdue sweep finished",
		zap.Int("scanned", res.Scanned),
		zap.Int("notified", res.Notified),
		zap.Int("skipped", res.Skipped))
	return res, nil
}
