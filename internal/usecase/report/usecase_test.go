package report

import (
	"context"
	"testing"
	"time"

	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/testutil/loanmock"
	"microloan-backend/internal/testutil/paymentmock"
)

func TestSummary(t *testing.T) {
	now := time.Now().UTC()
	loans := []domainLoan.Loan{
		{ID: 1, LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa1", Amount: 2000,
			IssuedAt: now.AddDate(-1, 0, 0), DueDate: now.AddDate(0, -2, 0),
			Status: domainLoan.StatusActive},
		{ID: 2, LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa2", Amount: 1000,
			IssuedAt: now.AddDate(0, -1, 0), DueDate: now.AddDate(0, 11, 0),
			Status: domainLoan.StatusPaid},
	}

	uc := NewUsecase(
		&loanmock.Repo{
			ListAllFn: func(_ context.Context) ([]domainLoan.Loan, error) { return loans, nil },
		},
		&paymentmock.Repo{
			ListByLoanIDsFn: func(_ context.Context, ids []uint64) ([]domainPayment.Payment, error) {
				if len(ids) != 2 {
					t.Fatalf("ids=%v", ids)
				}
				return []domainPayment.Payment{
					{LoanID: 1, Amount: 500, PaidAt: now},
					{LoanID: 2, Amount: 1000, PaidAt: now},
				}, nil
			},
		},
	)

	sum, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Portfolio.TotalLoans != 2 || sum.Portfolio.ActiveLoans != 1 || sum.Portfolio.PaidLoans != 1 {
		t.Fatalf("portfolio=%+v", sum.Portfolio)
	}
	if len(sum.Overdue) != 1 {
		t.Fatalf("overdue=%+v", sum.Overdue)
	}
	o := sum.Overdue[0]
	if o.LoanID != loans[0].LoanID || o.Balance != 1500 {
		t.Fatalf("overdue entry=%+v", o)
	}
	if o.DaysOverdue <= 0 {
		t.Fatalf("days overdue=%d", o.DaysOverdue)
	}
}

func TestMonthly(t *testing.T) {
	uc := NewUsecase(
		&loanmock.Repo{
			CountFn: func(_ context.Context) (int64, error) { return 10, nil },
			CountByStatusFn: func(_ context.Context, s domainLoan.Status) (int64, error) {
				switch s {
				case domainLoan.StatusActive:
					return 6, nil
				case domainLoan.StatusPaid:
					return 3, nil
				}
				return 1, nil
			},
			ListOverdueFn: func(_ context.Context, _ time.Time) ([]domainLoan.Loan, error) {
				return make([]domainLoan.Loan, 2), nil
			},
			SumIssuedBetweenFn: func(_ context.Context, from, to time.Time) (float64, int64, error) {
				if !from.Before(to) {
					t.Fatalf("window [%v, %v)", from, to)
				}
				return 4000, 2, nil
			},
			SumPrincipalFn: func(_ context.Context) (float64, error) { return 50000, nil },
		},
		&paymentmock.Repo{
			SumPaidBetweenFn: func(_ context.Context, from, to time.Time) (float64, int64, error) {
				return 1200, 5, nil
			},
			SumAllFn: func(_ context.Context) (float64, error) { return 20000, nil },
		},
	)

	m, err := uc.Monthly(context.Background())
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if m.TotalLoans != 10 || m.ActiveLoans != 6 || m.PaidLoans != 3 || m.OverdueLoans != 2 {
		t.Fatalf("counts=%+v", m)
	}
	if m.PaymentsThisMonth != 1200 || m.PaymentCount != 5 {
		t.Fatalf("payments=%+v", m)
	}
	if m.DisbursedThisMonth != 4000 || m.DisbursementCount != 2 {
		t.Fatalf("disbursements=%+v", m)
	}
	if m.OutstandingBalance != 30000 {
		t.Fatalf("outstanding=%v", m.OutstandingBalance)
	}
	if m.Month != time.Now().UTC().Format("2006-01") {
		t.Fatalf("month=%s", m.Month)
	}
}
