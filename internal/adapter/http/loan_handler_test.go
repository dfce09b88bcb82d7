package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/testutil/auditmock"
	"microloan-backend/internal/testutil/borrowermock"
	"microloan-backend/internal/testutil/loanmock"
	"microloan-backend/internal/testutil/paymentmock"
	uc "microloan-backend/internal/usecase/loan"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func loanHandlerWith(loans *loanmock.Repo, borrowers *borrowermock.Repo) *LoanHandler {
	return NewLoanHandler(uc.NewUsecase(loans, borrowers, &paymentmock.Repo{}, &auditmock.Sink{}))
}

func TestCreateLoan_Success(t *testing.T) {
	e := newEchoWithValidator()

	borrowerID := strings.Repeat("b", 32)
	borrowers := &borrowermock.Repo{
		GetByBorrowerIDFn: func(ctx context.Context, id string) (*domainBorrower.Borrower, error) {
			require.Equal(t, borrowerID, id)
			return &domainBorrower.Borrower{ID: 7, BorrowerID: id, Name: "Maria Santos"}, nil
		},
	}
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domainLoan.Loan) error {
			l.ID = 1
			return nil
		},
	}
	h := loanHandlerWith(loans, borrowers)

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(map[string]any{
		"borrower_id":   borrowerID,
		"amount":        2000,
		"interest_rate": 3,
		"issued_at":     "2026-01-15",
		"due_date":      "2027-01-15",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateLoan(e.NewContext(req, rec)))
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	var got uc.LoanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, borrowerID, got.BorrowerID)
	require.Equal(t, string(domainLoan.StatusActive), got.Status)
	require.InDelta(t, 2060.0, got.Details.TotalOwed, 0.001)
}

func TestCreateLoan_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := loanHandlerWith(&loanmock.Repo{}, &borrowermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", strings.NewReader(`{"borrower_id":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateLoan(e.NewContext(req, rec)))
	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	var er ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	require.Equal(t, "invalid body", er.Error)
}

func TestCreateLoan_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := loanHandlerWith(&loanmock.Repo{}, &borrowermock.Repo{}) // never reached

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(map[string]any{
		"borrower_id":   "NOT_HEX_32",
		"amount":        100.999,
		"interest_rate": 150,
		"issued_at":     "15-01-2026", // wrong layout
		"due_date":      "2027-01-15",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateLoan(e.NewContext(req, rec)))
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)

	var er ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	require.Equal(t, "validation failed", er.Error)
	require.True(t, containsFieldMsg(er.Details, "BorrowerID", "32-char lowercase hex"), "details: %+v", er.Details)
	require.True(t, containsFieldMsg(er.Details, "Amount", "at most 2 decimal places"), "details: %+v", er.Details)
	require.True(t, containsFieldMsg(er.Details, "InterestRate", "less than or equal to 100"), "details: %+v", er.Details)
}

func TestGetLoan_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := loanHandlerWith(loans, &borrowermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/"+strings.Repeat("e", 32), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/loans/:loan_id")
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("e", 32))

	require.NoError(t, h.GetLoan(c))
	require.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestUpdateLoan_StatusRejected(t *testing.T) {
	e := newEchoWithValidator()
	h := loanHandlerWith(&loanmock.Repo{}, &borrowermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPut, "/loans/x", mustJSON(map[string]any{
		"status": "CLOSED",
	}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("a", 32))

	require.NoError(t, h.UpdateLoan(c))
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)

	var er ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	require.True(t, containsFieldMsg(er.Details, "Status", "one of: ACTIVE PAID DEFAULTED"), "details: %+v", er.Details)
}
