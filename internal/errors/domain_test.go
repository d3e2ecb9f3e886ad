package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "without field carries only the message",
			err:      &DomainError{Code: AuthUnauthorized},
			expected: "Unauthorized",
		},
		{
			name:     "with field carries the offending value",
			err:      NewDomainError(AccountInvalidNumber, "account_number", "123"),
			expected: "Account number must be exactly 10 characters (account_number: 123)",
		},
		{
			name:     "decimal value renders through its stringer",
			err:      NewDomainError(TransferInvalidAmount, "amount", decimal.NewFromInt(-5)),
			expected: "Transfer amount cannot be negative (amount: -5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDomainError_Is_MatchesByCode(t *testing.T) {
	err := NewDomainError(AuthUnauthorized, "pin", 4)

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, NewDomainError(AccountInvalidPin, "", nil)))
}

func TestDomainError_Is_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("operation failed: %w", ErrUnauthorized)

	assert.True(t, errors.Is(wrapped, ErrUnauthorized))
	assert.Equal(t, AuthUnauthorized, CodeOf(wrapped))
}

func TestInsufficientFundsError_CarriesAmounts(t *testing.T) {
	attempted := decimal.NewFromFloat(150.25)
	current := decimal.NewFromFloat(100.00)

	err := NewInsufficientFundsError(attempted, current)

	require.NotNil(t, err)
	assert.True(t, err.Attempted.Equal(attempted))
	assert.True(t, err.Current.Equal(current))
	assert.Contains(t, err.Error(), "Insufficient balance for debit")
	assert.Contains(t, err.Error(), "150.25")
	assert.Contains(t, err.Error(), "100")
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "domain error",
			err:      NewDomainError(TransferLimitExceeded, "amount", decimal.NewFromInt(600)),
			expected: TransferLimitExceeded,
		},
		{
			name:     "insufficient funds error",
			err:      NewInsufficientFundsError(decimal.NewFromInt(10), decimal.NewFromInt(5)),
			expected: TransactionInsufficientFunds,
		},
		{
			name:     "wrapped domain error",
			err:      fmt.Errorf("transfer: %w", NewDomainError(TransferSameAccount, "account_number", "1012345678")),
			expected: TransferSameAccount,
		},
		{
			name:     "non-domain error reports empty code",
			err:      errors.New("boom"),
			expected: "",
		},
		{
			name:     "nil error reports empty code",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewDomainError(TransactionInvalidCreditAmount, "amount", decimal.NewFromInt(-1))

	assert.True(t, IsCode(err, TransactionInvalidCreditAmount))
	assert.False(t, IsCode(err, TransactionInvalidDebitAmount))
	assert.False(t, IsCode(nil, TransactionInvalidCreditAmount))
}
