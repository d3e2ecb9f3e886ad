package models

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-simulation/internal/auth"
	"ledger-simulation/internal/dto"
	ledgererrors "ledger-simulation/internal/errors"
	"ledger-simulation/internal/validation"
)

const (
	AccountTypeSavings              = "savings"
	AccountTypeChecking             = "checking"
	AccountTypeMoneyMarket          = "money_market"
	AccountTypeCertificateOfDeposit = "certificate_of_deposit"
	AccountTypeRetirement           = "retirement"

	// Account number prefixes by type
	CheckingPrefix             = "10"
	SavingsPrefix              = "20"
	MoneyMarketPrefix          = "30"
	CertificateOfDepositPrefix = "40"
	RetirementPrefix           = "50"

	AccountNumberLength = 10
)

// Account is a ledger record. All identity fields are immutable after
// construction; the balance is the only mutable state and is guarded by mu.
// Mutating operations authenticate against the PIN digest before touching
// the balance; a mismatch never mutates state.
type Account struct {
	id            uuid.UUID
	accountNumber string
	holderName    string
	accountType   string
	dateOpened    time.Time
	pinDigest     auth.Digest

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewAccount validates the input and constructs an account. The PIN is hashed
// immediately and the plaintext is discarded. Validation failures return the
// corresponding domain error kind and construct nothing.
func NewAccount(input dto.NewAccountInput) (*Account, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	digest, err := auth.HashPin(input.Pin)
	if err != nil {
		return nil, err
	}

	return &Account{
		id:            uuid.New(),
		accountNumber: input.AccountNumber,
		holderName:    input.HolderName,
		accountType:   input.AccountType,
		dateOpened:    input.DateOpened,
		pinDigest:     digest,
		balance:       input.InitialBalance,
	}, nil
}

// validateInput maps field-level validation failures to their domain error
// kinds, checked in a fixed order so multi-field failures are deterministic.
func validateInput(input dto.NewAccountInput) error {
	fields := validation.GetValidator().FieldErrors(validation.GetValidator().Struct(input))

	if _, bad := fields["account_number"]; bad {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidNumber, "account_number", input.AccountNumber)
	}
	if input.InitialBalance.IsNegative() {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidInitialBalance, "initial_balance", input.InitialBalance)
	}
	if _, bad := fields["holder_name"]; bad {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidHolderName, "holder_name", input.HolderName)
	}
	if !IsValidAccountType(input.AccountType) {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidType, "account_type", input.AccountType)
	}
	if _, bad := fields["date_opened"]; bad {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidDateOpened, "date_opened", input.DateOpened)
	}
	// Pin carries json:"-", so the validator reports it by struct field name
	if _, bad := fields["Pin"]; bad {
		return ledgererrors.NewDomainError(ledgererrors.AccountInvalidPin, "pin", len(input.Pin))
	}
	return nil
}

// ID returns the run-scoped account identity
func (a *Account) ID() uuid.UUID {
	return a.id
}

// AccountNumber returns the immutable 10-character account number
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// HolderName returns the immutable account holder name
func (a *Account) HolderName() string {
	return a.holderName
}

// AccountType returns the account type
func (a *Account) AccountType() string {
	return a.accountType
}

// DateOpened returns the date the account was opened
func (a *Account) DateOpened() time.Time {
	return a.dateOpened
}

// Authenticate verifies the PIN against the stored digest. The failure is
// always the generic unauthorized kind.
func (a *Account) Authenticate(pin string) error {
	if !a.pinDigest.Verify(pin) {
		return ledgererrors.ErrUnauthorized
	}
	return nil
}

// Credit authenticates and atomically adds amount to the balance
func (a *Account) Credit(amount decimal.Decimal, pin string) error {
	if err := a.Authenticate(pin); err != nil {
		return err
	}
	if amount.IsNegative() {
		return ledgererrors.NewDomainError(ledgererrors.TransactionInvalidCreditAmount, "amount", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit authenticates and atomically subtracts amount from the balance.
// The funds check happens inside the critical section: the balance cannot
// change between the check and the subtraction.
func (a *Account) Debit(amount decimal.Decimal, pin string) error {
	if err := a.Authenticate(pin); err != nil {
		return err
	}
	if amount.IsNegative() {
		return ledgererrors.NewDomainError(ledgererrors.TransactionInvalidDebitAmount, "amount", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return ledgererrors.NewInsufficientFundsError(amount, a.balance)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Balance returns a consistent snapshot of the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// CalculateInterest returns balance * rate without mutating state
func (a *Account) CalculateInterest(rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ledgererrors.NewDomainError(ledgererrors.TransactionInvalidInterestRate, "rate", rate)
	}
	return a.Balance().Mul(rate), nil
}

// DefaultInterestRate returns the standing annual rate for the account type
func (a *Account) DefaultInterestRate() decimal.Decimal {
	switch a.accountType {
	case AccountTypeSavings:
		return decimal.NewFromFloat(0.0150) // 1.50% APY
	case AccountTypeMoneyMarket:
		return decimal.NewFromFloat(0.0250) // 2.50% APY
	case AccountTypeCertificateOfDeposit:
		return decimal.NewFromFloat(0.0400) // 4.00% APY
	case AccountTypeRetirement:
		return decimal.NewFromFloat(0.0300) // 3.00% APY
	default:
		return decimal.Zero
	}
}

// Statement renders a one-line account snapshot for presentation collaborators
func (a *Account) Statement() string {
	return fmt.Sprintf("Account Number: %s, Holder: %s, Type: %s, Balance: %s",
		a.accountNumber, a.holderName, a.accountType, a.Balance().StringFixed(2))
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeMoneyMarket,
		AccountTypeCertificateOfDeposit, AccountTypeRetirement:
		return true
	default:
		return false
	}
}

// AccountTypes lists every valid account type
func AccountTypes() []string {
	return []string{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeMoneyMarket,
		AccountTypeCertificateOfDeposit,
		AccountTypeRetirement,
	}
}

// GetAccountPrefix returns the prefix for an account type
func GetAccountPrefix(accountType string) string {
	switch accountType {
	case AccountTypeChecking:
		return CheckingPrefix
	case AccountTypeSavings:
		return SavingsPrefix
	case AccountTypeMoneyMarket:
		return MoneyMarketPrefix
	case AccountTypeCertificateOfDeposit:
		return CertificateOfDepositPrefix
	case AccountTypeRetirement:
		return RetirementPrefix
	default:
		return ""
	}
}

// GenerateAccountNumber generates a 10-digit account number for the type.
// Uniqueness is the caller's responsibility; the provisioner dedupes within
// the pool.
func GenerateAccountNumber(rng *rand.Rand, accountType string) string {
	prefix := GetAccountPrefix(accountType)
	if prefix == "" {
		return ""
	}

	middle := fmt.Sprintf("%02d", rng.Intn(100))
	suffix := fmt.Sprintf("%06d", rng.Intn(1000000))

	return prefix + middle + suffix
}

// ValidateAccountNumber validates an account number format
func ValidateAccountNumber(accountNumber string) bool {
	if len(accountNumber) != AccountNumberLength {
		return false
	}

	for _, char := range accountNumber {
		if char < '0' || char > '9' {
			return false
		}
	}

	switch accountNumber[:2] {
	case CheckingPrefix, SavingsPrefix, MoneyMarketPrefix,
		CertificateOfDepositPrefix, RetirementPrefix:
		return true
	default:
		return false
	}
}
