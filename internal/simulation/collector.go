package simulation

import (
	"sync"

	"ledger-simulation/internal/dto"
)

// Collector accumulates the per-operation outcome feed. It is the boundary
// between the core and reporting/logging collaborators: workers record into
// it concurrently, and presentation code reads a snapshot after the run.
type Collector struct {
	mu       sync.Mutex
	outcomes []dto.OperationOutcome
}

func NewCollector(capacityHint int) *Collector {
	return &Collector{
		outcomes: make([]dto.OperationOutcome, 0, capacityHint),
	}
}

// Record appends an outcome. Safe for concurrent use.
func (c *Collector) Record(outcome dto.OperationOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, outcome)
}

// Snapshot returns a copy of every outcome recorded so far
func (c *Collector) Snapshot() []dto.OperationOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]dto.OperationOutcome, len(c.outcomes))
	copy(snapshot, c.outcomes)
	return snapshot
}

// Len returns the number of outcomes recorded so far
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.outcomes)
}
