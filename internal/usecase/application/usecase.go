package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainApp "microloan-backend/internal/domain/application"
	"microloan-backend/internal/domain/audit"
	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/internal/infrastructure/metrics"
	"microloan-backend/internal/notify"
	"microloan-backend/pkg/id"
)

// Loans spawned from an approved application carry 0% interest. This is
// policy, not an omission: staff-created loans carry a staff-entered rate,
// application-sourced loans are promotional.
const applicationLoanRate = 0.0

// loanTermMonths is the default term for application-sourced loans.
const loanTermMonths = 12

// Notifier receives messages to deliver after the transaction commits.
type Notifier interface {
	Enqueue(m notify.Message)
}

type Usecase struct {
	apps     domainApp.Repository
	uow      uow.UnitOfWork
	audit    audit.Sink
	notifier Notifier
	log      *zap.Logger
}

func NewUsecase(apps domainApp.Repository, tx uow.UnitOfWork, sink audit.Sink, n Notifier, log *zap.Logger) *Usecase {
	return &Usecase{apps: apps, uow: tx, audit: sink, notifier: n, log: log}
}

type SubmitInput struct {
	FullName         string
	Email            string
	Phone            string
	Address          string
	EmploymentStatus string
	MonthlyIncome    float64
	LoanAmount       float64
	LoanPurpose      string
	Documents        []string
}

var ErrInvalidInput = domainApp.ErrInvalidInput

func (in SubmitInput) validate() error {
	switch {
	case in.FullName == "":
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	case in.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	case in.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	case in.Address == "":
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	case in.EmploymentStatus == "":
		return fmt.Errorf("%w: employment status is required", ErrInvalidInput)
	case in.MonthlyIncome <= 0:
		return fmt.Errorf("%w: monthly income must be positive", ErrInvalidInput)
	case in.LoanAmount <= 0:
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidInput)
	case len(in.LoanPurpose) < 10:
		return fmt.Errorf("%w: loan purpose needs more detail", ErrInvalidInput)
	}
	return nil
}

// Submit creates a new application in SUBMITTED.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*domainApp.Application, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	a := &domainApp.Application{
		AppID:            id.NewID32(),
		FullName:         in.FullName,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		EmploymentStatus: in.EmploymentStatus,
		MonthlyIncome:    in.MonthlyIncome,
		LoanAmount:       in.LoanAmount,
		LoanPurpose:      in.LoanPurpose,
		Documents:        in.Documents,
		Status:           domainApp.StatusSubmitted,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, "LOAN_APPLICATION_SUBMITTED", "", map[string]any{
		"application_id": a.AppID,
		"full_name":      a.FullName,
		"loan_amount":    a.LoanAmount,
	})
	u.notifier.Enqueue(notify.Message{
		Kind:   notify.KindApplicationReceived,
		To:     a.Email,
		Name:   a.FullName,
		Amount: a.LoanAmount,
	})
	return a, nil
}

// Apply fires one workflow event against the application's current
// persisted state. The row is locked for the duration of the transition;
// an event fired from a disallowed state fails with ErrInvalidTransition
// and mutates nothing. Notifications and audit entries happen only after
// the transaction commits.
func (u *Usecase) Apply(ctx context.Context, appID string, act domainApp.Action) (*domainApp.Application, error) {
	if err := act.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domainApp.Application
		msgs    []notify.Message
		actor   string
		payload map[string]any
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		msgs, actor, payload = nil, "", nil

		a, err := r.Applications.GetByAppIDForUpdate(ctx, appID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainApp.ErrNotFound
			}
			return err
		}
		if !domainApp.CanApply(act, a.Status) {
			return fmt.Errorf("%w: cannot %s from %s", domainApp.ErrInvalidTransition, act.Name(), a.Status)
		}

		now := time.Now().UTC()
		payload = map[string]any{"application_id": a.AppID}

		switch ev := act.(type) {
		case domainApp.StartReview:
			a.ReviewedBy = ev.ReviewedBy
			a.ReviewedAt = &now
			a.ReviewNotes = ev.ReviewNotes
			actor = ev.ReviewedBy

		case domainApp.ConditionalApprove:
			a.ReviewedBy = ev.ReviewedBy
			a.ReviewedAt = &now
			a.ConditionalApprovalNotes = ev.Conditions
			a.RequiredDocuments = ev.RequiredDocuments
			actor = ev.ReviewedBy
			payload["required_documents"] = ev.RequiredDocuments
			msgs = append(msgs, notify.Message{
				Kind:       notify.KindApplicationConditional,
				To:         a.Email,
				Name:       a.FullName,
				Amount:     a.LoanAmount,
				Conditions: ev.Conditions,
			})

		case domainApp.Reject:
			a.ReviewedBy = ev.ReviewedBy
			a.ReviewedAt = &now
			a.ReviewNotes = ev.Reason
			actor = ev.ReviewedBy
			payload["reason"] = ev.Reason
			msgs = append(msgs, notify.Message{
				Kind:   notify.KindApplicationRejected,
				To:     a.Email,
				Name:   a.FullName,
				Reason: ev.Reason,
			})

		case domainApp.SignDocuments:
			a.SignedDocuments = ev.SignedDocuments
			a.DocumentsSignedAt = &now
			payload["documents"] = ev.SignedDocuments

		case domainApp.FinalApprove:
			b := &domainBorrower.Borrower{
				BorrowerID: id.NewID32(),
				Name:       a.FullName,
				Email:      a.Email,
				Phone:      a.Phone,
				Address:    a.Address,
				Notes:      fmt.Sprintf("Employment: %s, Monthly Income: $%.2f", a.EmploymentStatus, a.MonthlyIncome),
			}
			owner, _, err := r.Borrowers.FindOrCreateByEmail(ctx, b)
			if err != nil {
				return err
			}

			l := &domainLoan.Loan{
				LoanID:       id.NewID32(),
				BorrowerID:   owner.ID,
				Amount:       a.LoanAmount,
				InterestRate: applicationLoanRate,
				IssuedAt:     now,
				DueDate:      now.AddDate(0, loanTermMonths, 0),
				Status:       domainLoan.StatusActive,
				Notes:        a.LoanPurpose,
			}
			if err := r.Loans.Create(ctx, l); err != nil {
				return err
			}

			a.LoanID = &l.ID
			a.FinalApprovedBy = ev.ApprovedBy
			a.FinalApprovedAt = &now
			actor = ev.ApprovedBy
			payload["loan_id"] = l.LoanID
			payload["borrower_id"] = owner.BorrowerID
			msgs = append(msgs, notify.Message{
				Kind:   notify.KindApplicationApproved,
				To:     a.Email,
				Name:   a.FullName,
				Amount: a.LoanAmount,
			})

		case domainApp.Disburse:
			a.DisbursedBy = ev.DisbursedBy
			a.DisbursedAt = &now
			a.DisbursementAmount = &ev.Amount
			a.DisbursementMethod = ev.Method
			a.DisbursementReference = ev.Reference
			actor = ev.DisbursedBy
			payload["amount"] = ev.Amount
			payload["method"] = ev.Method

		default:
			return fmt.Errorf("%w: unknown event %s", domainApp.ErrInvalidTransition, act.Name())
		}

		a.Status = act.To()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		if errors.Is(err, domainApp.ErrInvalidTransition) {
			metrics.WorkflowTransitionsRejected.WithLabelValues(act.Name()).Inc()
		}
		return nil, err
	}

	metrics.WorkflowTransitions.WithLabelValues(act.Name()).Inc()
	u.audit.Record(ctx, auditAction(act), actor, payload)
	for _, m := range msgs {
		u.notifier.Enqueue(m)
	}
	return updated, nil
}

func auditAction(act domainApp.Action) string {
	switch act.(type) {
	case domainApp.StartReview:
		return "LOAN_APPLICATION_UNDER_REVIEW"
	case domainApp.ConditionalApprove:
		return "LOAN_APPLICATION_CONDITIONALLY_APPROVED"
	case domainApp.Reject:
		return "LOAN_APPLICATION_REJECTED"
	case domainApp.SignDocuments:
		return "LOAN_APPLICATION_DOCUMENTS_SIGNED"
	case domainApp.FinalApprove:
		return "LOAN_APPLICATION_FINAL_APPROVED"
	case domainApp.Disburse:
		return "LOAN_APPLICATION_DISBURSED"
	}
	return "LOAN_APPLICATION_" + act.Name()
}

func (u *Usecase) Get(ctx context.Context, appID string) (*domainApp.Application, error) {
	a, err := u.apps.GetByAppID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApp.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

type ListInput struct {
	Status string
	Page   int
	Limit  int
}

type Page struct {
	Applications []domainApp.Application `json:"applications"`
	Total        int64                   `json:"total"`
	Page         int                     `json:"page"`
	Pages        int64                   `json:"pages"`
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*Page, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 10
	}
	apps, total, err := u.apps.List(ctx, domainApp.ListFilter{
		Status: domainApp.Status(in.Status),
		Offset: (in.Page - 1) * in.Limit,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, err
	}
	pages := (total + int64(in.Limit) - 1) / int64(in.Limit)
	return &Page{Applications: apps, Total: total, Page: in.Page, Pages: pages}, nil
}
