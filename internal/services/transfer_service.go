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

// TransferService coordinates cross-account fund movement. It authenticates
// against the source account, enforces amount and inter-owner cap rules before
// any mutation, and delegates the atomic debit+credit pair to the entity
// layer's ordered pair-lock.
type TransferService struct {
	sink    OutcomeSinkInterface
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
}

func NewTransferService(
	sink OutcomeSinkInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
) TransferServiceInterface {
	return &TransferService{
		sink:    sink,
		metrics: metrics,
		audit:   audit,
	}
}

// Transfer atomically moves amount from one account to another
func (s *TransferService) Transfer(ctx context.Context, from, to *models.Account, amount decimal.Decimal, pin string) (dto.OperationOutcome, error) {
	start := time.Now()
	err := s.executeTransfer(from, to, amount, pin)
	outcome := s.finish(ctx, from, to, amount, start, err)
	if err == nil {
		s.metrics.ObserveTransferAmount(amount)
	}
	return outcome, err
}

// executeTransfer runs the validation chain in rule order; every check
// happens before any mutation.
func (s *TransferService) executeTransfer(from, to *models.Account, amount decimal.Decimal, pin string) error {
	if err := from.Authenticate(pin); err != nil {
		return err
	}
	if amount.IsNegative() {
		return ledgererrors.NewDomainError(ledgererrors.TransferInvalidAmount, "amount", amount)
	}
	if models.ExceedsInterOwnerCap(from, to, amount) {
		return ledgererrors.NewDomainError(ledgererrors.TransferLimitExceeded, "amount", amount)
	}
	return models.TransferFunds(from, to, amount)
}

func (s *TransferService) finish(
	ctx context.Context,
	from, to *models.Account,
	amount decimal.Decimal,
	start time.Time,
	err error,
) dto.OperationOutcome {
	outcome := dto.OperationOutcome{
		OperationID:    uuid.New(),
		WorkerID:       getWorkerID(ctx),
		AccountNumber:  from.AccountNumber(),
		CounterpartyNo: to.AccountNumber(),
		Operation:      dto.OperationTransfer,
		Amount:         amount,
		Duration:       time.Since(start),
		RecordedAt:     time.Now(),
	}

	if err != nil {
		outcome.Status = dto.StatusFailed
		outcome.ErrorCode = ledgererrors.CodeOf(err)
	} else {
		outcome.Status = dto.StatusSuccess
		outcome.Balance = from.Balance()
	}

	s.sink.Record(outcome)
	s.metrics.RecordOperation(dto.OperationTransfer, outcome.Status)
	s.metrics.ObserveOperationDuration(dto.OperationTransfer, outcome.Duration)
	if err != nil {
		s.audit.LogOperationFailed(ctx, outcome)
	} else {
		s.audit.LogOperationCompleted(ctx, outcome)
	}
	return outcome
}
