package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LoanID string  `json:"loan_id" validate:"required,hex32"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
	PaidAt *string `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
	Method string  `json:"method"`
	Notes  string  `json:"notes"`
}

type updatePaymentReq struct {
	Amount *float64 `json:"amount"  validate:"omitempty,gt=0,dec2"`
	PaidAt *string  `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
	Method *string  `json:"method"`
	Notes  *string  `json:"notes"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := payment.CreatePaymentInput{
		LoanID: req.LoanID,
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	}
	if req.PaidAt != nil {
		t, _ := time.Parse("2006-01-02", *req.PaidAt)
		in.PaidAt = &t
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.uc.List(c.Request().Context(), payment.ListPaymentsInput{
		LoanID: c.QueryParam("loan_id"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	var req updatePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := payment.UpdatePaymentInput{Amount: req.Amount, Method: req.Method, Notes: req.Notes}
	if req.PaidAt != nil {
		t, _ := time.Parse("2006-01-02", *req.PaidAt)
		in.PaidAt = &t
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("payment_id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("payment_id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
