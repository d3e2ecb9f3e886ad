// Package report aggregates the outcome feed of a finished simulation into
// per-operation and per-account summaries, and replays the successful
// operations against the recorded starting balances to confirm that no
// update was lost under concurrency.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledger-simulation/internal/dto"
	ledgererrors "ledger-simulation/internal/errors"
)

// OperationTotals counts outcomes for one operation kind.
type OperationTotals struct {
	Issued    int
	Succeeded int
	Failed    int
}

// AccountActivity is the successful activity replayed for one account.
// ExpectedBalance is InitialBalance plus credits and incoming transfers,
// minus debits and outgoing transfers.
type AccountActivity struct {
	AccountNumber   string
	InitialBalance  decimal.Decimal
	Credits         decimal.Decimal
	Debits          decimal.Decimal
	TransfersIn     decimal.Decimal
	TransfersOut    decimal.Decimal
	ExpectedBalance decimal.Decimal
	FinalBalance    decimal.Decimal
}

// Balanced reports whether the replayed expectation matches the final
// balance observed on the account itself.
func (a AccountActivity) Balanced() bool {
	return a.ExpectedBalance.Equal(a.FinalBalance)
}

// Summary is the aggregate view of a completed run.
type Summary struct {
	TotalOperations int
	ByOperation     map[string]OperationTotals
	FailuresByCode  map[ledgererrors.ErrorCode]int
	Accounts        []AccountActivity
	TotalDuration   time.Duration
}

// Balanced reports whether every account's replayed activity matches its
// final balance.
func (s *Summary) Balanced() bool {
	for _, a := range s.Accounts {
		if !a.Balanced() {
			return false
		}
	}
	return true
}

// Unbalanced returns the accounts whose replayed activity disagrees with
// their final balance.
func (s *Summary) Unbalanced() []AccountActivity {
	var out []AccountActivity
	for _, a := range s.Accounts {
		if !a.Balanced() {
			out = append(out, a)
		}
	}
	return out
}

// Build aggregates outcomes against the starting and final balances of the
// accounts that participated in the run. Outcomes referring to accounts
// absent from initialBalances are still counted in the operation totals but
// excluded from the replay.
func Build(
	outcomes []dto.OperationOutcome,
	initialBalances map[string]decimal.Decimal,
	finalBalances map[string]decimal.Decimal,
) *Summary {
	summary := &Summary{
		ByOperation:    make(map[string]OperationTotals),
		FailuresByCode: make(map[ledgererrors.ErrorCode]int),
	}

	activity := make(map[string]*AccountActivity, len(initialBalances))
	for number, balance := range initialBalances {
		activity[number] = &AccountActivity{
			AccountNumber:  number,
			InitialBalance: balance,
		}
	}

	for _, outcome := range outcomes {
		summary.TotalOperations++
		summary.TotalDuration += outcome.Duration

		totals := summary.ByOperation[outcome.Operation]
		totals.Issued++
		if outcome.Succeeded() {
			totals.Succeeded++
			applyOutcome(activity, outcome)
		} else {
			totals.Failed++
			summary.FailuresByCode[outcome.ErrorCode]++
		}
		summary.ByOperation[outcome.Operation] = totals
	}

	for number, act := range activity {
		act.ExpectedBalance = act.InitialBalance.
			Add(act.Credits).
			Add(act.TransfersIn).
			Sub(act.Debits).
			Sub(act.TransfersOut)
		act.FinalBalance = finalBalances[number]
		summary.Accounts = append(summary.Accounts, *act)
	}
	sort.Slice(summary.Accounts, func(i, j int) bool {
		return summary.Accounts[i].AccountNumber < summary.Accounts[j].AccountNumber
	})

	return summary
}

func applyOutcome(activity map[string]*AccountActivity, outcome dto.OperationOutcome) {
	source, ok := activity[outcome.AccountNumber]
	if !ok {
		return
	}

	switch outcome.Operation {
	case dto.OperationCredit:
		source.Credits = source.Credits.Add(outcome.Amount)
	case dto.OperationDebit:
		source.Debits = source.Debits.Add(outcome.Amount)
	case dto.OperationTransfer:
		source.TransfersOut = source.TransfersOut.Add(outcome.Amount)
		if target, ok := activity[outcome.CounterpartyNo]; ok {
			target.TransfersIn = target.TransfersIn.Add(outcome.Amount)
		}
	}
}

// Render formats the summary as a plain-text table for the simulator's
// stdout. Keeping presentation here leaves the aggregation reusable.
func Render(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "operations: %d", s.TotalOperations)
	if s.TotalOperations > 0 {
		fmt.Fprintf(&b, " (avg %s)", (s.TotalDuration / time.Duration(s.TotalOperations)).Round(time.Microsecond))
	}
	b.WriteString("\n\n")

	operations := make([]string, 0, len(s.ByOperation))
	for op := range s.ByOperation {
		operations = append(operations, op)
	}
	sort.Strings(operations)

	fmt.Fprintf(&b, "%-10s %10s %10s %10s\n", "operation", "issued", "succeeded", "failed")
	for _, op := range operations {
		totals := s.ByOperation[op]
		fmt.Fprintf(&b, "%-10s %10d %10d %10d\n", op, totals.Issued, totals.Succeeded, totals.Failed)
	}

	if len(s.FailuresByCode) > 0 {
		b.WriteString("\nfailures by code:\n")
		codes := make([]string, 0, len(s.FailuresByCode))
		for code := range s.FailuresByCode {
			codes = append(codes, string(code))
		}
		sort.Strings(codes)
		for _, code := range codes {
			errorCode := ledgererrors.ErrorCode(code)
			fmt.Fprintf(&b, "  %-16s %6d  %s\n",
				code, s.FailuresByCode[errorCode], ledgererrors.GetErrorMessage(errorCode))
		}
	}

	b.WriteString("\naccounts:\n")
	fmt.Fprintf(&b, "  %-12s %12s %12s %12s %12s %12s %12s %s\n",
		"number", "initial", "credits", "debits", "in", "out", "final", "balanced")
	for _, a := range s.Accounts {
		fmt.Fprintf(&b, "  %-12s %12s %12s %12s %12s %12s %12s %t\n",
			a.AccountNumber,
			a.InitialBalance.StringFixed(2),
			a.Credits.StringFixed(2),
			a.Debits.StringFixed(2),
			a.TransfersIn.StringFixed(2),
			a.TransfersOut.StringFixed(2),
			a.FinalBalance.StringFixed(2),
			a.Balanced())
	}

	return b.String()
}
