package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainApp "microloan-backend/internal/domain/application"
	"microloan-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	FullName         string   `json:"full_name"         validate:"required"`
	Email            string   `json:"email"             validate:"required,email"`
	Phone            string   `json:"phone"             validate:"required"`
	Address          string   `json:"address"           validate:"required"`
	EmploymentStatus string   `json:"employment_status" validate:"required"`
	MonthlyIncome    float64  `json:"monthly_income"    validate:"required,gt=0,dec2"`
	LoanAmount       float64  `json:"loan_amount"       validate:"required,gt=0,dec2"`
	LoanPurpose      string   `json:"loan_purpose"      validate:"required,min=10"`
	Documents        []string `json:"documents"`
}

func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	a, err := h.uc.Submit(c.Request().Context(), application.SubmitInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// One request struct per workflow event. The envelope carries the event
// name plus the raw payload; the payload is bound and validated against
// the event's own struct before it ever reaches the workflow.
type applicationEventReq struct {
	Event   string          `json:"event" validate:"required,oneof=start_review conditional_approve reject sign_documents final_approve disburse"`
	Payload json.RawMessage `json:"payload"`
}

type startReviewReq struct {
	ReviewedBy  string `json:"reviewed_by" validate:"required"`
	ReviewNotes string `json:"review_notes"`
}

type conditionalApproveReq struct {
	ReviewedBy        string   `json:"reviewed_by"        validate:"required"`
	Conditions        string   `json:"conditions"         validate:"required"`
	RequiredDocuments []string `json:"required_documents" validate:"required,min=1"`
}

type rejectReq struct {
	ReviewedBy string `json:"reviewed_by" validate:"required"`
	Reason     string `json:"reason"      validate:"required"`
}

type signDocumentsReq struct {
	SignedDocuments []string `json:"signed_documents" validate:"required,min=1"`
}

type finalApproveReq struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

type disburseReq struct {
	DisbursedBy string  `json:"disbursed_by" validate:"required"`
	Amount      float64 `json:"amount"       validate:"required,gt=0,dec2"`
	Method      string  `json:"method"       validate:"required"`
	Reference   string  `json:"reference"`
}

func (h *ApplicationHandler) ApplyEvent(c echo.Context) error {
	var env applicationEventReq
	if err := c.Bind(&env); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&env); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	act, vErr, bindErr := h.decodeEvent(c, env)
	if bindErr != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
	}
	if vErr != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(vErr),
		})
	}

	a, err := h.uc.Apply(c.Request().Context(), c.Param("application_id"), act)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) decodeEvent(c echo.Context, env applicationEventReq) (domainApp.Action, error, error) {
	payload := env.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	bind := func(dst any) error { return json.Unmarshal(payload, dst) }

	switch env.Event {
	case "start_review":
		var req startReviewReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.StartReview(req), nil, nil
	case "conditional_approve":
		var req conditionalApproveReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.ConditionalApprove(req), nil, nil
	case "reject":
		var req rejectReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.Reject(req), nil, nil
	case "sign_documents":
		var req signDocumentsReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.SignDocuments(req), nil, nil
	case "final_approve":
		var req finalApproveReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.FinalApprove(req), nil, nil
	default: // disburse, guarded by the envelope's oneof
		var req disburseReq
		if err := bind(&req); err != nil {
			return nil, nil, err
		}
		if err := c.Validate(&req); err != nil {
			return nil, err, nil
		}
		return domainApp.Disburse(req), nil, nil
	}
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	a, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.uc.List(c.Request().Context(), application.ListInput{
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
