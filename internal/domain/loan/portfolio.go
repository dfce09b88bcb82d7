package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/payment"
)

// WithPayments pairs a loan with its ledger for aggregate computations.
type WithPayments struct {
	Loan     Loan
	Payments []payment.Payment
}

// PortfolioStats aggregates money figures and counts across a set of loans.
// Every ratio is guarded against a zero denominator and reports 0, never NaN.
type PortfolioStats struct {
	TotalLoans       int     `json:"total_loans"`
	ActiveLoans      int     `json:"active_loans"`
	PaidLoans        int     `json:"paid_loans"`
	OverdueLoans     int     `json:"overdue_loans"`
	DefaultedLoans   int     `json:"defaulted_loans"`
	TotalPrincipal   float64 `json:"total_principal"`
	TotalDisbursed   float64 `json:"total_disbursed"`
	TotalRepaid      float64 `json:"total_repaid"`
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalOverdue     float64 `json:"total_overdue"`
	AverageLoanSize  float64 `json:"average_loan_size"`
	PortfolioAtRisk  float64 `json:"portfolio_at_risk"`
	DefaultRate      float64 `json:"default_rate"`
	RepaymentRate    float64 `json:"repayment_rate"`
}

// CalculatePortfolio folds per-loan calculations into portfolio totals.
func CalculatePortfolio(loans []WithPayments, now time.Time) PortfolioStats {
	var stats PortfolioStats
	stats.TotalLoans = len(loans)

	principal := decimal.Zero
	repaid := decimal.Zero
	outstanding := decimal.Zero
	overdue := decimal.Zero

	for i := range loans {
		l := &loans[i].Loan
		calc := Calculate(l, loans[i].Payments, now)

		principal = principal.Add(decimal.NewFromFloat(calc.Principal))
		repaid = repaid.Add(decimal.NewFromFloat(calc.TotalPaid))
		outstanding = outstanding.Add(decimal.NewFromFloat(calc.Balance))

		switch l.Status {
		case StatusActive:
			stats.ActiveLoans++
			if calc.IsOverdue {
				stats.OverdueLoans++
				overdue = overdue.Add(decimal.NewFromFloat(calc.Balance))
			}
		case StatusPaid:
			stats.PaidLoans++
		case StatusDefaulted:
			stats.DefaultedLoans++
		}
	}

	stats.TotalPrincipal, _ = principal.Float64()
	stats.TotalDisbursed = stats.TotalPrincipal
	stats.TotalRepaid, _ = repaid.Float64()
	stats.TotalOutstanding, _ = outstanding.Float64()
	stats.TotalOverdue, _ = overdue.Float64()

	if stats.TotalLoans > 0 {
		stats.AverageLoanSize = stats.TotalPrincipal / float64(stats.TotalLoans)
		stats.DefaultRate = float64(stats.DefaultedLoans) / float64(stats.TotalLoans) * 100
	}
	if outstanding.IsPositive() {
		par, _ := overdue.Div(outstanding).Mul(hundred).Float64()
		stats.PortfolioAtRisk = par
	}
	if principal.IsPositive() {
		rr, _ := repaid.Div(principal).Mul(hundred).Float64()
		stats.RepaymentRate = rr
	}
	return stats
}
