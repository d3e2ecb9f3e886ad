package errors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DomainError is a business-rule violation carrying the offending value.
// It is returned, never panicked; callers classify it by Code.
type DomainError struct {
	Code  ErrorCode
	Field string
	Value any
}

// NewDomainError creates a domain error for the given code and offending value
func NewDomainError(code ErrorCode, field string, value any) *DomainError {
	return &DomainError{Code: code, Field: field, Value: value}
}

func (e *DomainError) Error() string {
	if e.Field == "" {
		return GetErrorMessage(e.Code)
	}
	return fmt.Sprintf("%s (%s: %v)", GetErrorMessage(e.Code), e.Field, e.Value)
}

// Is matches any DomainError with the same code, so sentinel comparisons
// like errors.Is(err, ErrUnauthorized) work regardless of carried values.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if errors.As(target, &de) {
		return de.Code == e.Code
	}
	return false
}

// ErrUnauthorized is the single authentication failure value. It deliberately
// carries nothing: a missing account and a PIN mismatch must be
// indistinguishable to the caller.
var ErrUnauthorized = &DomainError{Code: AuthUnauthorized}

// InsufficientFundsError reports a debit that exceeded the available balance.
// It carries the attempted amount and the balance at the time of the attempt.
type InsufficientFundsError struct {
	Attempted decimal.Decimal
	Current   decimal.Decimal
}

func NewInsufficientFundsError(attempted, current decimal.Decimal) *InsufficientFundsError {
	return &InsufficientFundsError{Attempted: attempted, Current: current}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s (attempted: %s, current: %s)",
		GetErrorMessage(TransactionInsufficientFunds), e.Attempted.String(), e.Current.String())
}

// CodeOf extracts the domain error code from an error chain.
// Non-domain errors report as an empty code.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var ife *InsufficientFundsError
	if errors.As(err, &ife) {
		return TransactionInsufficientFunds
	}
	return ""
}

// IsCode reports whether the error chain carries the given domain code
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
