package loan

import (
	"fmt"
	"time"

	"microloan-backend/internal/domain/payment"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type RiskAssessment struct {
	Level   RiskLevel `json:"risk_level"`
	Score   int       `json:"risk_score"`
	Factors []string  `json:"risk_factors"`
}

// AssessRisk scores a loan 0-100 from age, overdue days, payment progress,
// size, and recent payment activity.
func AssessRisk(l *Loan, payments []payment.Payment, now time.Time) RiskAssessment {
	calc := Calculate(l, payments, now)
	var factors []string
	score := 0

	age := LoanAgeInDays(l.IssuedAt, now)
	if age > 365 {
		factors = append(factors, "Loan is over 1 year old")
		score += 20
	}

	if calc.IsOverdue {
		daysOverdue := -DaysUntilDue(l.DueDate, now)
		factors = append(factors, fmt.Sprintf("%d days overdue", daysOverdue))
		if add := daysOverdue * 2; add < 40 {
			score += add
		} else {
			score += 40
		}
	}

	if calc.PaymentProgress < 25 && age > 90 {
		factors = append(factors, "Low payment progress for loan age")
		score += 15
	}

	if l.Amount > 10000 {
		factors = append(factors, "High loan amount")
		score += 10
	}

	cutoff := now.AddDate(0, 0, -90)
	recent := 0
	for _, p := range payments {
		if p.PaidAt.After(cutoff) {
			recent++
		}
	}
	if recent == 0 && len(payments) > 0 && !calc.IsFullyPaid {
		factors = append(factors, "No payments in last 90 days")
		score += 25
	}

	if score > 100 {
		score = 100
	}

	level := RiskHigh
	switch {
	case score <= 20:
		level = RiskLow
	case score <= 50:
		level = RiskMedium
	}

	return RiskAssessment{Level: level, Score: score, Factors: factors}
}
