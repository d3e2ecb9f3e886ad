package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ledgererrors "ledger-simulation/internal/errors"
)

// Operation kinds recorded in outcome feeds
const (
	OperationCredit   = "credit"
	OperationDebit    = "debit"
	OperationTransfer = "transfer"
)

// Outcome statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// OperationOutcome is the per-operation record the core hands to reporting and
// logging collaborators. Failures carry the classifying error code; successes
// carry the resulting balance of the acted-on account.
type OperationOutcome struct {
	OperationID    uuid.UUID              `json:"operation_id"`
	WorkerID       int                    `json:"worker_id"`
	AccountNumber  string                 `json:"account_number"`
	CounterpartyNo string                 `json:"counterparty_account,omitempty"`
	Operation      string                 `json:"operation"`
	Amount         decimal.Decimal        `json:"amount"`
	Balance        decimal.Decimal        `json:"resulting_balance"`
	Status         string                 `json:"status"`
	ErrorCode      ledgererrors.ErrorCode `json:"error_code,omitempty"`
	Duration       time.Duration          `json:"duration"`
	RecordedAt     time.Time              `json:"recorded_at"`
}

// Succeeded returns true if the operation completed without a domain error
func (o OperationOutcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// NewAccountInput carries validated account construction parameters.
// The PIN travels in cleartext only until construction hashes it.
type NewAccountInput struct {
	AccountNumber  string          `json:"account_number" validate:"required,account_number"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	HolderName     string          `json:"holder_name" validate:"required,holder_name"`
	AccountType    string          `json:"account_type" validate:"required"`
	DateOpened     time.Time       `json:"date_opened" validate:"not_future"`
	Pin            string          `json:"-" validate:"pin"`
}
