package application

import (
	"fmt"
	"strings"
)

// Action is one workflow event. Each event is its own type with its own
// required-field set; dispatch is an exhaustive type switch, never a generic
// struct of optional fields.
type Action interface {
	// Name is the audit/metric label for the event.
	Name() string
	// Validate checks required input. Runs before any store access.
	Validate() error
	// AllowedFrom lists the states the event may fire from.
	AllowedFrom() []Status
	// To is the state the event transitions into.
	To() Status
}

// CanApply reports whether the action is allowed from the current state.
func CanApply(a Action, current Status) bool {
	for _, s := range a.AllowedFrom() {
		if s == current {
			return true
		}
	}
	return false
}

type StartReview struct {
	ReviewedBy  string
	ReviewNotes string
}

func (StartReview) Name() string          { return "start_review" }
func (StartReview) AllowedFrom() []Status { return []Status{StatusSubmitted} }
func (StartReview) To() Status            { return StatusUnderReview }
func (a StartReview) Validate() error {
	if strings.TrimSpace(a.ReviewedBy) == "" {
		return fmt.Errorf("%w: reviewer is required", ErrInvalidInput)
	}
	return nil
}

type ConditionalApprove struct {
	ReviewedBy        string
	Conditions        string
	RequiredDocuments []string
}

func (ConditionalApprove) Name() string          { return "conditional_approve" }
func (ConditionalApprove) AllowedFrom() []Status { return []Status{StatusUnderReview} }
func (ConditionalApprove) To() Status            { return StatusConditionallyApproved }
func (a ConditionalApprove) Validate() error {
	if strings.TrimSpace(a.ReviewedBy) == "" {
		return fmt.Errorf("%w: reviewer is required", ErrInvalidInput)
	}
	if strings.TrimSpace(a.Conditions) == "" {
		return fmt.Errorf("%w: conditions are required", ErrInvalidInput)
	}
	if len(a.RequiredDocuments) == 0 {
		return fmt.Errorf("%w: at least one required document", ErrInvalidInput)
	}
	return nil
}

type Reject struct {
	ReviewedBy string
	Reason     string
}

func (Reject) Name() string { return "reject" }
func (Reject) AllowedFrom() []Status {
	return []Status{StatusSubmitted, StatusUnderReview, StatusConditionallyApproved, StatusDocumentsSigned}
}
func (Reject) To() Status { return StatusRejected }
func (a Reject) Validate() error {
	if strings.TrimSpace(a.ReviewedBy) == "" {
		return fmt.Errorf("%w: reviewer is required", ErrInvalidInput)
	}
	if strings.TrimSpace(a.Reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	return nil
}

type SignDocuments struct {
	SignedDocuments []string
}

func (SignDocuments) Name() string          { return "sign_documents" }
func (SignDocuments) AllowedFrom() []Status { return []Status{StatusConditionallyApproved} }
func (SignDocuments) To() Status            { return StatusDocumentsSigned }
func (a SignDocuments) Validate() error {
	if len(a.SignedDocuments) == 0 {
		return fmt.Errorf("%w: at least one signed document", ErrInvalidInput)
	}
	return nil
}

type FinalApprove struct {
	ApprovedBy string
}

func (FinalApprove) Name() string          { return "final_approve" }
func (FinalApprove) AllowedFrom() []Status { return []Status{StatusDocumentsSigned} }
func (FinalApprove) To() Status            { return StatusApproved }
func (a FinalApprove) Validate() error {
	if strings.TrimSpace(a.ApprovedBy) == "" {
		return fmt.Errorf("%w: approver is required", ErrInvalidInput)
	}
	return nil
}

type Disburse struct {
	DisbursedBy string
	Amount      float64
	Method      string
	Reference   string
}

func (Disburse) Name() string          { return "disburse" }
func (Disburse) AllowedFrom() []Status { return []Status{StatusApproved} }
func (Disburse) To() Status            { return StatusDisbursed }
func (a Disburse) Validate() error {
	if strings.TrimSpace(a.DisbursedBy) == "" {
		return fmt.Errorf("%w: disbursement officer is required", ErrInvalidInput)
	}
	if a.Amount <= 0 {
		return fmt.Errorf("%w: disbursement amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(a.Method) == "" {
		return fmt.Errorf("%w: disbursement method is required", ErrInvalidInput)
	}
	return nil
}
