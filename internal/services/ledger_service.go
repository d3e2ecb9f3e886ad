package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-simulation/internal/dto"
	ledgererrors "ledger-simulation/internal/errors"
	"ledger-simulation/internal/models"
)

// LedgerService orchestrates single-account credits and debits: it executes
// the entity operation, classifies the result, and hands the outcome record
// to the sink, metrics, and audit collaborators. The entity layer stays
// deterministic; everything observable happens here, after the critical
// section has been released.
type LedgerService struct {
	sink    OutcomeSinkInterface
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
}

func NewLedgerService(
	sink OutcomeSinkInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
) LedgerServiceInterface {
	return &LedgerService{
		sink:    sink,
		metrics: metrics,
		audit:   audit,
	}
}

// Credit adds amount to the account balance
func (s *LedgerService) Credit(ctx context.Context, account *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error) {
	start := time.Now()
	err := account.Credit(amount, pin)
	return s.finish(ctx, dto.OperationCredit, account, "", amount, start, err), err
}

// Debit subtracts amount from the account balance
func (s *LedgerService) Debit(ctx context.Context, account *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error) {
	start := time.Now()
	err := account.Debit(amount, pin)
	return s.finish(ctx, dto.OperationDebit, account, "", amount, start, err), err
}

// finish builds the outcome record and fans it out to the collaborators
func (s *LedgerService) finish(
	ctx context.Context,
	operation string,
	account *models.Account,
	counterparty string,
	amount decimal.Decimal,
	start time.Time,
	err error,
) dto.OperationOutcome {
	outcome := dto.OperationOutcome{
		OperationID:    uuid.New(),
		WorkerID:       getWorkerID(ctx),
		AccountNumber:  account.AccountNumber(),
		CounterpartyNo: counterparty,
		Operation:      operation,
		Amount:         amount,
		Duration:       time.Since(start),
		RecordedAt:     time.Now(),
	}

	if err != nil {
		outcome.Status = dto.StatusFailed
		outcome.ErrorCode = ledgererrors.CodeOf(err)
	} else {
		outcome.Status = dto.StatusSuccess
		outcome.Balance = account.Balance()
	}

	s.sink.Record(outcome)
	s.metrics.RecordOperation(operation, outcome.Status)
	s.metrics.ObserveOperationDuration(operation, outcome.Duration)
	if err != nil {
		s.audit.LogOperationFailed(ctx, outcome)
	} else {
		s.audit.LogOperationCompleted(ctx, outcome)
	}
	return outcome
}
