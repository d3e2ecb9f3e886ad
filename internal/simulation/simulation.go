// Package simulation drives many concurrent workers against a shared pool of
// accounts to exercise the ledger under real parallelism. The harness is the
// only component that originates randomized inputs; accounts and transfers
// are deterministic given theirs.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"ledger-simulation/internal/config"
	"ledger-simulation/internal/models"
	"ledger-simulation/internal/services"
)

// State is a simulation lifecycle phase. Transitions only move forward;
// Completed is terminal.
type State string

const (
	StateCreated             State = "created"
	StateAccountsProvisioned State = "accounts_provisioned"
	StateRunning             State = "running"
	StateCompleted           State = "completed"
)

var ErrInvalidTransition = errors.New("invalid simulation state transition")

// Simulation owns the account pool and the worker fleet. The pool is
// read-only once provisioned; workers share it without further
// synchronization beyond each account's own critical section.
type Simulation struct {
	cfg       config.SimulationConfig
	ledger    services.LedgerServiceInterface
	transfers services.TransferServiceInterface
	metrics   services.MetricsRecorderInterface
	audit     services.AuditLoggerInterface
	logger    *slog.Logger

	runID uuid.UUID
	seed  int64

	mu       sync.Mutex
	state    State
	accounts []simAccount

	activeWorkers atomic.Int32
}

func New(
	cfg config.SimulationConfig,
	ledger services.LedgerServiceInterface,
	transfers services.TransferServiceInterface,
	metrics services.MetricsRecorderInterface,
	audit services.AuditLoggerInterface,
	logger *slog.Logger,
) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulation{
		cfg:       cfg,
		ledger:    ledger,
		transfers: transfers,
		metrics:   metrics,
		audit:     audit,
		logger:    logger,
		runID:     uuid.New(),
		seed:      seed,
		state:     StateCreated,
	}
}

// RunID identifies this simulation run in audit events
func (s *Simulation) RunID() uuid.UUID {
	return s.runID
}

// State returns the current lifecycle phase
func (s *Simulation) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Accounts returns the provisioned pool. Callers get the live handles: the
// pool membership is immutable after provisioning, only balances change.
func (s *Simulation) Accounts() []*models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]*models.Account, len(s.accounts))
	for i, sa := range s.accounts {
		accounts[i] = sa.account
	}
	return accounts
}

// InitialBalances maps account numbers to their balances at provisioning
// time, for replay verification by reporting collaborators.
func (s *Simulation) InitialBalances() map[string]decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	balances := make(map[string]decimal.Decimal, len(s.accounts))
	for _, sa := range s.accounts {
		balances[sa.account.AccountNumber()] = sa.initialBalance
	}
	return balances
}

func (s *Simulation) transition(ctx context.Context, from, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return fmt.Errorf("%w: %s -> %s (current state %s)", ErrInvalidTransition, from, to, s.state)
	}
	s.state = to
	s.audit.LogPhaseChange(ctx, string(from), string(to))
	return nil
}

// Provision builds the shared account pool and advances the lifecycle to
// AccountsProvisioned. A single invalid candidate never aborts provisioning;
// failing to fill the pool at all does.
func (s *Simulation) Provision(ctx context.Context) error {
	if current := s.State(); current != StateCreated {
		return fmt.Errorf("%w: provision requires %s, current state %s", ErrInvalidTransition, StateCreated, current)
	}

	accounts, err := newProvisioner(s.cfg, s.seed, s.logger).provision()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	if err := s.transition(ctx, StateCreated, StateAccountsProvisioned); err != nil {
		return err
	}
	s.metrics.AddAccountsProvisioned(len(accounts))
	s.logger.Info("accounts provisioned",
		slog.Int("accounts", len(accounts)),
		slog.Int64("seed", s.seed),
		slog.String("run_id", s.runID.String()),
	)
	return nil
}

// Run launches the worker fleet and blocks until every worker has finished
// its bounded iteration count (or the context is cancelled). A failed
// operation never stops a worker; each outcome is recorded independently.
func (s *Simulation) Run(ctx context.Context) error {
	if err := s.transition(ctx, StateAccountsProvisioned, StateRunning); err != nil {
		return err
	}

	ctx = services.WithCorrelationID(ctx, s.runID.String())

	var limiter *rate.Limiter
	if s.cfg.OpsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.OpsPerSecond), s.cfg.OpsPerSecond)
	}

	var sem chan struct{}
	if s.cfg.MaxConcurrentWorkers > 0 {
		sem = make(chan struct{}, s.cfg.MaxConcurrentWorkers)
	}

	s.logger.Info("simulation running",
		slog.Int("workers", s.cfg.NumWorkers),
		slog.Int("ops_per_worker", s.cfg.OpsPerWorker),
	)

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.NumWorkers; i++ {
		wg.Add(1)
		// Each worker gets its own generator: a shared rand.Rand across
		// workers would itself be a race.
		w := newWorker(i, s.seed+int64(i)+1, s, limiter, sem)
		go w.run(ctx, &wg)
	}
	wg.Wait()

	if err := s.transition(ctx, StateRunning, StateCompleted); err != nil {
		return err
	}
	s.logger.Info("simulation completed", slog.String("run_id", s.runID.String()))
	return ctx.Err()
}

func (s *Simulation) workerStarted() {
	s.metrics.SetActiveWorkers(int(s.activeWorkers.Add(1)))
}

func (s *Simulation) workerStopped() {
	s.metrics.SetActiveWorkers(int(s.activeWorkers.Add(-1)))
}
