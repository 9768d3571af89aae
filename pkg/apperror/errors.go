package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

const (
	CodeInsufficientFunds = "PAY_001"
	CodeValidation        = "PAY_002"
	CodeNotFound          = "PAY_004"
	CodeInvalidOperand    = "PAY_008"
	CodeRemoteLedger      = "LEDGER_001"
	CodeRemoteUnknown     = "LEDGER_002"
	CodeBoletoGeneration  = "BOLETO_001"
	CodePayrollPartial    = "PAYROLL_001"
	CodeRateLimit         = "RATE_001"
	CodePayloadTooLarge   = "REQ_001"
	CodeInternal          = "SYS_001"
	CodeLockTimeout       = "SYS_002"
	CodePersistence       = "SYS_004"
)

// ---- Payment Business Logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeValidation, "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidOperand(message string) *AppError {
	return New(CodeInvalidOperand, message, http.StatusUnprocessableEntity)
}

// ---- Remote Ledger (LEDGER) ----

// ErrRemoteLedger reports a failed or rejected custodial ledger call.
// No local state has been written when this is returned.
func ErrRemoteLedger(operation string, err error) *AppError {
	return Wrap(CodeRemoteLedger, fmt.Sprintf("Remote ledger %s failed", operation), http.StatusBadGateway, err)
}

// ErrRemoteOutcomeUnknown reports a ledger mutation that was answered with a
// 2xx the service could not read. It has been journaled for reconciliation.
func ErrRemoteOutcomeUnknown(operation string, err error) *AppError {
	return Wrap(CodeRemoteUnknown, fmt.Sprintf("Remote ledger %s outcome unknown, do not retry before reconciliation", operation), http.StatusBadGateway, err)
}

// ---- Boletos & Payroll ----

func ErrBoletoGeneration(err error) *AppError {
	return Wrap(CodeBoletoGeneration, "Bank slip issued but digitable line generation failed", http.StatusBadGateway, err)
}

func ErrPayrollPartial(failed, total int) *AppError {
	return New(CodePayrollPartial, fmt.Sprintf("%d of %d employee payments failed", failed, total), http.StatusBadGateway)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Request (REQ) ----

func ErrPayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

func ErrLockTimeout(err error) *AppError {
	return Wrap(CodeLockTimeout, "Wallet is busy with another operation", http.StatusServiceUnavailable, err)
}

// ErrPersistence reports a local write that failed after the remote ledger
// already accepted the mutation. The caller must not retry blindly.
func ErrPersistence(err error) *AppError {
	return Wrap(CodePersistence, "Remote operation succeeded but could not be recorded locally", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
