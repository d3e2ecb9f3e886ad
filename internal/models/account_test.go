package models

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-simulation/internal/dto"
	ledgererrors "ledger-simulation/internal/errors"
)

func validAccountInput() dto.NewAccountInput {
	return dto.NewAccountInput{
		AccountNumber:  "1012345678",
		InitialBalance: decimal.NewFromFloat(500.00),
		HolderName:     gofakeit.Name(),
		AccountType:    AccountTypeChecking,
		DateOpened:     time.Now().AddDate(-2, 0, 0),
		Pin:            "1234",
	}
}

func mustAccount(t *testing.T, input dto.NewAccountInput) *Account {
	t.Helper()
	account, err := NewAccount(input)
	require.NoError(t, err)
	return account
}

func TestNewAccount_Valid(t *testing.T) {
	input := validAccountInput()
	account, err := NewAccount(input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID())
	assert.Equal(t, input.AccountNumber, account.AccountNumber())
	assert.Equal(t, input.HolderName, account.HolderName())
	assert.Equal(t, input.AccountType, account.AccountType())
	assert.True(t, input.DateOpened.Equal(account.DateOpened()))
	assert.True(t, account.Balance().Equal(input.InitialBalance))
}

func TestNewAccount_ZeroInitialBalance(t *testing.T) {
	input := validAccountInput()
	input.InitialBalance = decimal.Zero

	account, err := NewAccount(input)

	require.NoError(t, err)
	assert.True(t, account.Balance().IsZero())
}

func TestNewAccount_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*dto.NewAccountInput)
		wantCode ledgererrors.ErrorCode
	}{
		{
			name:     "account number too short",
			mutate:   func(in *dto.NewAccountInput) { in.AccountNumber = "12345" },
			wantCode: ledgererrors.AccountInvalidNumber,
		},
		{
			name:     "account number blank",
			mutate:   func(in *dto.NewAccountInput) { in.AccountNumber = "" },
			wantCode: ledgererrors.AccountInvalidNumber,
		},
		{
			name:     "negative initial balance",
			mutate:   func(in *dto.NewAccountInput) { in.InitialBalance = decimal.NewFromFloat(-0.01) },
			wantCode: ledgererrors.AccountInvalidInitialBalance,
		},
		{
			name:     "holder name too short",
			mutate:   func(in *dto.NewAccountInput) { in.HolderName = "A" },
			wantCode: ledgererrors.AccountInvalidHolderName,
		},
		{
			name:     "unknown account type",
			mutate:   func(in *dto.NewAccountInput) { in.AccountType = "offshore" },
			wantCode: ledgererrors.AccountInvalidType,
		},
		{
			name:     "date opened in the future",
			mutate:   func(in *dto.NewAccountInput) { in.DateOpened = time.Now().Add(24 * time.Hour) },
			wantCode: ledgererrors.AccountInvalidDateOpened,
		},
		{
			name:     "pin too short",
			mutate:   func(in *dto.NewAccountInput) { in.Pin = "123" },
			wantCode: ledgererrors.AccountInvalidPin,
		},
		{
			name:     "pin blank",
			mutate:   func(in *dto.NewAccountInput) { in.Pin = "    " },
			wantCode: ledgererrors.AccountInvalidPin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAccountInput()
			tt.mutate(&input)

			account, err := NewAccount(input)

			assert.Nil(t, account)
			assert.True(t, ledgererrors.IsCode(err, tt.wantCode),
				"expected code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestNewAccount_MultipleFailuresReportDeterministically(t *testing.T) {
	input := validAccountInput()
	input.AccountNumber = "123"
	input.HolderName = "X"
	input.Pin = "1"

	_, err := NewAccount(input)

	// Account number is checked first, so its failure wins.
	assert.True(t, ledgererrors.IsCode(err, ledgererrors.AccountInvalidNumber))
}

func TestAccount_Authenticate(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	assert.NoError(t, account.Authenticate("1234"))
	assert.ErrorIs(t, account.Authenticate("4321"), ledgererrors.ErrUnauthorized)
	assert.ErrorIs(t, account.Authenticate(""), ledgererrors.ErrUnauthorized)
}

func TestAccount_Credit(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Credit(decimal.NewFromFloat(100.50), "1234")

	require.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(600.50)))
}

func TestAccount_Credit_ZeroAmount(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	require.NoError(t, account.Credit(decimal.Zero, "1234"))
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)))
}

func TestAccount_Credit_NegativeAmount(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Credit(decimal.NewFromFloat(-10), "1234")

	assert.True(t, ledgererrors.IsCode(err, ledgererrors.TransactionInvalidCreditAmount))
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)))
}

func TestAccount_Credit_WrongPinLeavesBalanceUntouched(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Credit(decimal.NewFromFloat(100), "9999")

	assert.ErrorIs(t, err, ledgererrors.ErrUnauthorized)
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)))
}

func TestAccount_Debit(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Debit(decimal.NewFromFloat(200.25), "1234")

	require.NoError(t, err)
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(299.75)))
}

func TestAccount_Debit_ExactBalance(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Debit(decimal.NewFromFloat(500.00), "1234")

	require.NoError(t, err)
	assert.True(t, account.Balance().IsZero())
}

func TestAccount_Debit_NegativeAmount(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Debit(decimal.NewFromFloat(-10), "1234")

	assert.True(t, ledgererrors.IsCode(err, ledgererrors.TransactionInvalidDebitAmount))
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)))
}

func TestAccount_Debit_InsufficientFunds(t *testing.T) {
	account := mustAccount(t, validAccountInput())
	attempted := decimal.NewFromFloat(500.01)

	err := account.Debit(attempted, "1234")

	var ife *ledgererrors.InsufficientFundsError
	require.ErrorAs(t, err, &ife)
	assert.True(t, ife.Attempted.Equal(attempted))
	assert.True(t, ife.Current.Equal(decimal.NewFromFloat(500.00)))
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)), "failed debit must not mutate the balance")
}

func TestAccount_Debit_WrongPinLeavesBalanceUntouched(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	err := account.Debit(decimal.NewFromFloat(100), "0000")

	assert.ErrorIs(t, err, ledgererrors.ErrUnauthorized)
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)))
}

func TestAccount_CalculateInterest(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	interest, err := account.CalculateInterest(decimal.NewFromFloat(0.05))

	require.NoError(t, err)
	assert.True(t, interest.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, account.Balance().Equal(decimal.NewFromFloat(500.00)), "interest calculation must not mutate the balance")
}

func TestAccount_CalculateInterest_ZeroRate(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	interest, err := account.CalculateInterest(decimal.Zero)

	require.NoError(t, err)
	assert.True(t, interest.IsZero())
}

func TestAccount_CalculateInterest_NegativeRate(t *testing.T) {
	account := mustAccount(t, validAccountInput())

	_, err := account.CalculateInterest(decimal.NewFromFloat(-0.01))

	assert.True(t, ledgererrors.IsCode(err, ledgererrors.TransactionInvalidInterestRate))
}

func TestAccount_DefaultInterestRate(t *testing.T) {
	tests := []struct {
		accountType string
		expected    decimal.Decimal
	}{
		{AccountTypeChecking, decimal.Zero},
		{AccountTypeSavings, decimal.NewFromFloat(0.0150)},
		{AccountTypeMoneyMarket, decimal.NewFromFloat(0.0250)},
		{AccountTypeCertificateOfDeposit, decimal.NewFromFloat(0.0400)},
		{AccountTypeRetirement, decimal.NewFromFloat(0.0300)},
	}

	for _, tt := range tests {
		t.Run(tt.accountType, func(t *testing.T) {
			input := validAccountInput()
			input.AccountType = tt.accountType
			input.AccountNumber = GetAccountPrefix(tt.accountType) + "12345678"
			account := mustAccount(t, input)

			assert.True(t, account.DefaultInterestRate().Equal(tt.expected))
		})
	}
}

func TestAccount_Statement(t *testing.T) {
	input := validAccountInput()
	input.HolderName = "Grace Hopper"
	account := mustAccount(t, input)

	statement := account.Statement()

	assert.Contains(t, statement, "1012345678")
	assert.Contains(t, statement, "Grace Hopper")
	assert.Contains(t, statement, AccountTypeChecking)
	assert.Contains(t, statement, "500.00")
}

func TestAccount_ConcurrentCredits_NoLostUpdates(t *testing.T) {
	input := validAccountInput()
	input.InitialBalance = decimal.Zero
	account := mustAccount(t, input)

	const goroutines = 50
	const creditsEach = 20
	amount := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < creditsEach; j++ {
				assert.NoError(t, account.Credit(amount, "1234"))
			}
		}()
	}
	wg.Wait()

	assert.True(t, account.Balance().Equal(decimal.NewFromInt(goroutines*creditsEach)),
		"expected %d, got %s", goroutines*creditsEach, account.Balance())
}

func TestAccount_ConcurrentMixedOperations_BalanceConsistent(t *testing.T) {
	input := validAccountInput()
	input.InitialBalance = decimal.NewFromInt(1000)
	account := mustAccount(t, input)

	const pairs = 100
	amount := decimal.NewFromInt(5)

	var wg sync.WaitGroup
	for i := 0; i < pairs; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, account.Credit(amount, "1234"))
		}()
		go func() {
			defer wg.Done()
			// Initial balance covers every debit even if all of them land first.
			assert.NoError(t, account.Debit(amount, "1234"))
		}()
	}
	wg.Wait()

	assert.True(t, account.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestIsValidAccountType(t *testing.T) {
	for _, accountType := range AccountTypes() {
		assert.True(t, IsValidAccountType(accountType), accountType)
	}
	assert.False(t, IsValidAccountType("offshore"))
	assert.False(t, IsValidAccountType(""))
	assert.False(t, IsValidAccountType("Savings"))
}

func TestGetAccountPrefix(t *testing.T) {
	assert.Equal(t, CheckingPrefix, GetAccountPrefix(AccountTypeChecking))
	assert.Equal(t, SavingsPrefix, GetAccountPrefix(AccountTypeSavings))
	assert.Equal(t, MoneyMarketPrefix, GetAccountPrefix(AccountTypeMoneyMarket))
	assert.Equal(t, CertificateOfDepositPrefix, GetAccountPrefix(AccountTypeCertificateOfDeposit))
	assert.Equal(t, RetirementPrefix, GetAccountPrefix(AccountTypeRetirement))
	assert.Equal(t, "", GetAccountPrefix("offshore"))
}

func TestGenerateAccountNumber(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, accountType := range AccountTypes() {
		number := GenerateAccountNumber(rng, accountType)

		assert.Len(t, number, AccountNumberLength)
		assert.Equal(t, GetAccountPrefix(accountType), number[:2])
		assert.True(t, ValidateAccountNumber(number), number)
	}

	assert.Equal(t, "", GenerateAccountNumber(rng, "offshore"))
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "valid checking", number: "1012345678", want: true},
		{name: "valid retirement", number: "5099999999", want: true},
		{name: "too short", number: "101234567", want: false},
		{name: "too long", number: "10123456789", want: false},
		{name: "non-digit characters", number: "10abc45678", want: false},
		{name: "unknown prefix", number: "9912345678", want: false},
		{name: "empty", number: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccountNumber(tt.number))
		})
	}
}
