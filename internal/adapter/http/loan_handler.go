package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID   string  `json:"borrower_id"   validate:"required,hex32"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,lte=100"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	IssuedAt string `json:"issued_at" validate:"required,datetime=2006-01-02"`
	DueDate  string `json:"due_date"  validate:"required,datetime=2006-01-02"`
	Notes    string `json:"notes"`
}

type updateLoanReq struct {
	DueDate *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status  *string `json:"status"   validate:"omitempty,oneof=ACTIVE PAID DEFAULTED"`
	Notes   *string `json:"notes"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	issuedAt, _ := time.Parse("2006-01-02", req.IssuedAt)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:   req.BorrowerID,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		IssuedAt:     issuedAt,
		DueDate:      dueDate,
		Notes:        req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.uc.List(c.Request().Context(), loan.ListInput{
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := loan.UpdateLoanInput{Status: req.Status, Notes: req.Notes}
	if req.DueDate != nil {
		d, _ := time.Parse("2006-01-02", *req.DueDate)
		in.DueDate = &d
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("loan_id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
