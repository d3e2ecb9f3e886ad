package services

import (
	"context"
	"log/slog"
	"time"

	"ledger-simulation/internal/dto"
)

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	workerIDKey      contextKey = "worker_id"
)

// WithCorrelationID attaches a correlation ID to the context for audit events
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

func getCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return "unknown"
}

// WithWorkerID attaches the issuing worker's ID to the context
func WithWorkerID(ctx context.Context, workerID int) context.Context {
	return context.WithValue(ctx, workerIDKey, workerID)
}

func getWorkerID(ctx context.Context) int {
	if id, ok := ctx.Value(workerIDKey).(int); ok {
		return id
	}
	return -1
}

// AuditLogger emits structured audit events for ledger activity. It runs
// outside account critical sections; operations never block on it mid-mutation.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogOperationCompleted(ctx context.Context, outcome dto.OperationOutcome) {
	al.logger.InfoContext(ctx, "ledger operation completed",
		slog.String("event_type", "ledger_operation_completed"),
		slog.String("operation_id", outcome.OperationID.String()),
		slog.String("operation", outcome.Operation),
		slog.String("account_number", outcome.AccountNumber),
		slog.String("amount", outcome.Amount.String()),
		slog.String("resulting_balance", outcome.Balance.String()),
		slog.Int("worker_id", outcome.WorkerID),
		slog.Int64("duration_ms", outcome.Duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOperationFailed(ctx context.Context, outcome dto.OperationOutcome) {
	al.logger.WarnContext(ctx, "ledger operation failed",
		slog.String("event_type", "ledger_operation_failed"),
		slog.String("operation_id", outcome.OperationID.String()),
		slog.String("operation", outcome.Operation),
		slog.String("account_number", outcome.AccountNumber),
		slog.String("amount", outcome.Amount.String()),
		slog.String("error_code", string(outcome.ErrorCode)),
		slog.Int("worker_id", outcome.WorkerID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPhaseChange(ctx context.Context, oldPhase, newPhase string) {
	al.logger.InfoContext(ctx, "simulation phase change",
		slog.String("event_type", "simulation_phase_change"),
		slog.String("old_phase", oldPhase),
		slog.String("new_phase", newPhase),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}
