package report

import (
	"context"
	"time"

	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
)

type Usecase struct {
	loans    domainLoan.Repository
	payments domainPayment.Repository
}

func NewUsecase(loans domainLoan.Repository, payments domainPayment.Repository) *Usecase {
	return &Usecase{loans: loans, payments: payments}
}

type OverdueLoan struct {
	LoanID      string    `json:"loan_id"`
	DueDate     time.Time `json:"due_date"`
	Balance     float64   `json:"balance"`
	DaysOverdue int       `json:"days_overdue"`
}

type Summary struct {
	Portfolio domainLoan.PortfolioStats `json:"portfolio"`
	Overdue   []OverdueLoan             `json:"overdue_loans"`
}

// Summary computes portfolio statistics across every loan and lists the
// currently overdue ones.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(loans))
	for i := range loans {
		ids = append(ids, loans[i].ID)
	}
	pays, err := u.payments.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byLoan := make(map[uint64][]domainPayment.Payment, len(loans))
	for _, p := range pays {
		byLoan[p.LoanID] = append(byLoan[p.LoanID], p)
	}

	now := time.Now().UTC()
	withPays := make([]domainLoan.WithPayments, 0, len(loans))
	var overdue []OverdueLoan
	for i := range loans {
		wp := domainLoan.WithPayments{Loan: loans[i], Payments: byLoan[loans[i].ID]}
		withPays = append(withPays, wp)

		calc := domainLoan.Calculate(&loans[i], wp.Payments, now)
		if calc.IsOverdue {
			overdue = append(overdue, OverdueLoan{
				LoanID:      loans[i].LoanID,
				DueDate:     loans[i].DueDate,
				Balance:     calc.Balance,
				DaysOverdue: -domainLoan.DaysUntilDue(loans[i].DueDate, now),
			})
		}
	}

	return &Summary{
		Portfolio: domainLoan.CalculatePortfolio(withPays, now),
		Overdue:   overdue,
	}, nil
}

type Monthly struct {
	Month              string  `json:"month"`
	TotalLoans         int64   `json:"total_loans"`
	ActiveLoans        int64   `json:"active_loans"`
	PaidLoans          int64   `json:"paid_loans"`
	OverdueLoans       int     `json:"overdue_loans"`
	PaymentsThisMonth  float64 `json:"payments_this_month"`
	PaymentCount       int64   `json:"payment_count"`
	DisbursedThisMonth float64 `json:"disbursed_this_month"`
	DisbursementCount  int64   `json:"disbursement_count"`
	TotalDisbursed     float64 `json:"total_disbursed"`
	TotalCollected     float64 `json:"total_collected"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

// Monthly aggregates this calendar month's activity plus running totals.
func (u *Usecase) Monthly(ctx context.Context) (*Monthly, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	total, err := u.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := u.loans.CountByStatus(ctx, domainLoan.StatusActive)
	if err != nil {
		return nil, err
	}
	paid, err := u.loans.CountByStatus(ctx, domainLoan.StatusPaid)
	if err != nil {
		return nil, err
	}
	overdue, err := u.loans.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	paidSum, paidN, err := u.payments.SumPaidBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	issuedSum, issuedN, err := u.loans.SumIssuedBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	totalDisbursed, err := u.loans.SumPrincipal(ctx)
	if err != nil {
		return nil, err
	}
	totalCollected, err := u.payments.SumAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Monthly{
		Month:              monthStart.Format("2006-01"),
		TotalLoans:         total,
		ActiveLoans:        active,
		PaidLoans:          paid,
		OverdueLoans:       len(overdue),
		PaymentsThisMonth:  paidSum,
		PaymentCount:       paidN,
		DisbursedThisMonth: issuedSum,
		DisbursementCount:  issuedN,
		TotalDisbursed:     totalDisbursed,
		TotalCollected:     totalCollected,
		OutstandingBalance: totalDisbursed - totalCollected,
	}, nil
}
