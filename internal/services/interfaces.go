package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ledger-simulation/internal/dto"
	"ledger-simulation/internal/models"
)

// LedgerServiceInterface defines single-account ledger operations
type LedgerServiceInterface interface {
	Credit(ctx context.Context, account *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error)
	Debit(ctx context.Context, account *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error)
}

// TransferServiceInterface defines the cross-account transfer coordinator
type TransferServiceInterface interface {
	Transfer(ctx context.Context, from, to *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error)
}

// OutcomeSinkInterface receives per-operation outcome records for
// reporting/logging collaborators. Record must be safe for concurrent use.
type OutcomeSinkInterface interface {
	Record(outcome dto.OperationOutcome)
}

// MetricsRecorderInterface defines the contract for recording simulation metrics
type MetricsRecorderInterface interface {
	RecordOperation(operation, status string)
	ObserveOperationDuration(operation string, duration time.Duration)
	ObserveTransferAmount(amount decimal.Decimal)
	SetActiveWorkers(count int)
	AddAccountsProvisioned(count int)
}

// AuditLoggerInterface defines structured audit events for ledger activity
type AuditLoggerInterface interface {
	LogOperationCompleted(ctx context.Context, outcome dto.OperationOutcome)
	LogOperationFailed(ctx context.Context, outcome dto.OperationOutcome)
	LogPhaseChange(ctx context.Context, oldPhase, newPhase string)
}
