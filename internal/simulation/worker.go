package simulation

import (
	"context"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"ledger-simulation/internal/services"
)

// wrongPinPercent is the share of operations issued with a deliberately wrong
// PIN, so authentication failures are part of the measured outcome mix.
const wrongPinPercent = 2

// badPin never matches a provisioned PIN: real PINs are four digits.
const badPin = "XXXX"

// worker repeatedly issues randomized credit/debit/transfer operations
// against the shared pool. Errors are already recorded by the services; the
// worker never stops for them.
type worker struct {
	id      int
	rng     *rand.Rand
	sim     *Simulation
	limiter *rate.Limiter
	sem     chan struct{}
}

func newWorker(id int, seed int64, sim *Simulation, limiter *rate.Limiter, sem chan struct{}) *worker {
	return &worker{
		id:      id,
		rng:     rand.New(rand.NewSource(seed)),
		sim:     sim,
		limiter: limiter,
		sem:     sem,
	}
}

func (w *worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	if w.sem != nil {
		w.sem <- struct{}{}
		defer func() { <-w.sem }()
	}

	w.sim.workerStarted()
	defer w.sim.workerStopped()

	ctx = services.WithWorkerID(ctx, w.id)

	for i := 0; i < w.sim.cfg.OpsPerWorker; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
		}

		w.step(ctx)
	}
}

// step issues one randomized operation. The operation's result, success or
// classified failure, flows to the outcome sink; nothing here aborts the loop.
func (w *worker) step(ctx context.Context) {
	source := w.sim.accounts[w.rng.Intn(len(w.sim.accounts))]

	pin := source.pin
	if w.rng.Intn(100) < wrongPinPercent {
		pin = badPin
	}

	if w.rng.Intn(100) < w.sim.cfg.TransferPercent && len(w.sim.accounts) > 1 {
		target := w.randomCounterparty(source)
		// Draw past the inter-owner cap on purpose so limit rejections
		// show up in the outcome mix.
		amount := w.randomAmount(0, w.sim.cfg.MaxTransactionAmt*1.5)
		_, _ = w.sim.transfers.Transfer(ctx, source.account, target.account, amount, pin)
		return
	}

	amount := w.randomAmount(-w.sim.cfg.MaxTransactionAmt, w.sim.cfg.MaxTransactionAmt)
	if amount.IsNegative() {
		_, _ = w.sim.ledger.Debit(ctx, source.account, amount.Neg(), pin)
		return
	}
	_, _ = w.sim.ledger.Credit(ctx, source.account, amount, pin)
}

func (w *worker) randomCounterparty(source simAccount) simAccount {
	for {
		candidate := w.sim.accounts[w.rng.Intn(len(w.sim.accounts))]
		if candidate.account != source.account {
			return candidate
		}
	}
}

func (w *worker) randomAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + w.rng.Float64()*(max-min)).Round(2)
}
