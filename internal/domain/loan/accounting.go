package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/payment"
)

// Calculation is the full money picture of one loan, derived from principal,
// flat rate, and the payment ledger. All functions here are pure.
type Calculation struct {
	Principal       float64 `json:"principal"`
	InterestRate    float64 `json:"interest_rate"`
	InterestAmount  float64 `json:"interest_amount"`
	TotalOwed       float64 `json:"total_owed"`
	TotalPaid       float64 `json:"total_paid"`
	Balance         float64 `json:"balance"`
	IsOverdue       bool    `json:"is_overdue"`
	IsFullyPaid     bool    `json:"is_fully_paid"`
	PaymentProgress float64 `json:"payment_progress"`
}

var hundred = decimal.NewFromInt(100)

// Calculate derives the loan's money figures at the given instant.
// Interest is flat: charged once on principal, never compounded.
func Calculate(l *Loan, payments []payment.Payment, now time.Time) Calculation {
	principal := decimal.NewFromFloat(l.Amount)
	rate := decimal.NewFromFloat(l.InterestRate)

	interest := principal.Mul(rate).Div(hundred)
	owed := principal.Add(interest)

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(decimal.NewFromFloat(p.Amount))
	}
	balance := owed.Sub(paid)

	progress := decimal.Zero
	if owed.IsPositive() {
		progress = paid.Div(owed).Mul(hundred)
	}

	balF, _ := balance.Float64()
	interestF, _ := interest.Float64()
	owedF, _ := owed.Float64()
	paidF, _ := paid.Float64()
	progressF, _ := progress.Float64()

	return Calculation{
		Principal:       l.Amount,
		InterestRate:    l.InterestRate,
		InterestAmount:  interestF,
		TotalOwed:       owedF,
		TotalPaid:       paidF,
		Balance:         balF,
		IsOverdue:       now.After(l.DueDate) && l.Status == StatusActive && balance.IsPositive(),
		IsFullyPaid:     !balance.IsPositive() || l.Status == StatusPaid,
		PaymentProgress: progressF,
	}
}

// CoversOwed reports whether totalPaid settles totalOwed, using exact
// decimal comparison rather than float subtraction.
func CoversOwed(totalPaid, totalOwed float64) bool {
	return decimal.NewFromFloat(totalPaid).GreaterThanOrEqual(decimal.NewFromFloat(totalOwed))
}

// Exceeds reports whether amount > balance at cent precision.
func Exceeds(amount, balance float64) bool {
	return decimal.NewFromFloat(amount).GreaterThan(decimal.NewFromFloat(balance))
}

// SumAmounts adds payment amounts without float drift.
func SumAmounts(payments []payment.Payment) float64 {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	f, _ := sum.Float64()
	return f
}

// DaysUntilDue is negative once the due date has passed.
func DaysUntilDue(dueDate, now time.Time) int {
	return int(dueDate.Sub(now).Hours() / 24)
}

// LoanAgeInDays counts whole days since issuance.
func LoanAgeInDays(issuedAt, now time.Time) int {
	return int(now.Sub(issuedAt).Hours() / 24)
}
