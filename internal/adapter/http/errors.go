package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	domainApp "microloan-backend/internal/domain/application"
	domainBorrower "microloan-backend/internal/domain/borrower"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	ucBorrower "microloan-backend/internal/usecase/borrower"
	ucLoan "microloan-backend/internal/usecase/loan"
	ucPayment "microloan-backend/internal/usecase/payment"
)

// writeError maps a usecase error onto the wire. Unknown errors become an
// opaque 500 so storage details never leak to clients.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainBorrower.ErrNotFound),
		errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainPayment.ErrNotFound),
		errors.Is(err, domainApp.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, domainApp.ErrInvalidTransition),
		errors.Is(err, domainPayment.ErrLoanAlreadyPaid),
		errors.Is(err, domainPayment.ErrExceedsBalance),
		errors.Is(err, domainLoan.ErrHasPayments),
		errors.Is(err, domainBorrower.ErrHasActiveLoans):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainApp.ErrInvalidInput),
		errors.Is(err, ucBorrower.ErrInvalidInput),
		errors.Is(err, ucLoan.ErrInvalidInput),
		errors.Is(err, ucPayment.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
