package models

import (
	"github.com/shopspring/decimal"

	ledgererrors "ledger-simulation/internal/errors"
)

// MaxTransferForDifferentOwners is the inter-owner cap: the largest amount
// that may move in one transfer between accounts with different holders.
var MaxTransferForDifferentOwners = decimal.NewFromInt(500)

// ExceedsInterOwnerCap reports whether a transfer between the two accounts
// would break the inter-owner cap. Holder names are immutable, so this needs
// no locks.
func ExceedsInterOwnerCap(from, to *Account, amount decimal.Decimal) bool {
	return from.holderName != to.holderName && amount.GreaterThan(MaxTransferForDifferentOwners)
}

// TransferFunds moves amount between two accounts as a single atomic unit:
// an observer of the pair never sees the debit applied without the credit.
//
// Both account locks are acquired in ascending account-number order,
// regardless of the direction requested, so two opposite-direction transfers
// between the same pair cannot deadlock. Account numbers are unique within
// the pool, which makes the order total. The funds check happens after both
// locks are held; the source balance cannot change between check and debit.
//
// Callers are responsible for authentication and amount/cap validation.
func TransferFunds(from, to *Account, amount decimal.Decimal) error {
	if from == to {
		return ledgererrors.NewDomainError(ledgererrors.TransferSameAccount, "account_number", from.accountNumber)
	}

	first, second := from, to
	if second.accountNumber < first.accountNumber {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.balance.LessThan(amount) {
		return ledgererrors.NewInsufficientFundsError(amount, from.balance)
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)
	return nil
}
