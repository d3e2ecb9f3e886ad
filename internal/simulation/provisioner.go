package simulation

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"ledger-simulation/internal/config"
	"ledger-simulation/internal/dto"
	"ledger-simulation/internal/models"
)

// simAccount pairs a provisioned account with the PIN its worker operations
// authenticate with. The PIN never leaves the harness.
type simAccount struct {
	account        *models.Account
	pin            string
	initialBalance decimal.Decimal
}

// provisioner generates randomized but valid account inputs. An invalid
// candidate aborts only that account's creation; the provisioner regenerates
// and moves on.
type provisioner struct {
	cfg    config.SimulationConfig
	rng    *rand.Rand
	faker  *gofakeit.Faker
	logger *slog.Logger
}

func newProvisioner(cfg config.SimulationConfig, seed int64, logger *slog.Logger) *provisioner {
	return &provisioner{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		faker:  gofakeit.New(seed),
		logger: logger,
	}
}

// provision creates the shared account pool. Account numbers are unique
// within the pool; the pool is read-only once returned.
func (p *provisioner) provision() ([]simAccount, error) {
	accounts := make([]simAccount, 0, p.cfg.NumAccounts)
	seen := make(map[string]struct{}, p.cfg.NumAccounts)

	// Generation is random, so bound the attempts; exhausting them means the
	// configuration is broken, not that we should retry forever.
	maxAttempts := p.cfg.NumAccounts * 20
	for attempt := 0; len(accounts) < p.cfg.NumAccounts && attempt < maxAttempts; attempt++ {
		input, pin := p.randomAccountInput()
		if _, dup := seen[input.AccountNumber]; dup {
			continue
		}

		account, err := models.NewAccount(input)
		if err != nil {
			p.logger.Warn("account creation failed, regenerating",
				slog.String("account_number", input.AccountNumber),
				slog.String("error", err.Error()),
			)
			continue
		}

		seen[input.AccountNumber] = struct{}{}
		accounts = append(accounts, simAccount{
			account:        account,
			pin:            pin,
			initialBalance: input.InitialBalance,
		})
	}

	if len(accounts) < p.cfg.NumAccounts {
		return nil, fmt.Errorf("provisioned only %d of %d accounts after %d attempts",
			len(accounts), p.cfg.NumAccounts, maxAttempts)
	}
	return accounts, nil
}

func (p *provisioner) randomAccountInput() (dto.NewAccountInput, string) {
	accountType := models.AccountTypes()[p.rng.Intn(len(models.AccountTypes()))]
	pin := fmt.Sprintf("%04d", p.rng.Intn(10000))

	input := dto.NewAccountInput{
		AccountNumber:  models.GenerateAccountNumber(p.rng, accountType),
		InitialBalance: p.randomInitialBalance(),
		HolderName:     p.faker.Name(),
		AccountType:    accountType,
		DateOpened:     p.randomDateOpened(),
		Pin:            pin,
	}
	return input, pin
}

func (p *provisioner) randomInitialBalance() decimal.Decimal {
	span := p.cfg.MaxInitialBalance - p.cfg.MinInitialBalance
	value := p.cfg.MinInitialBalance + p.rng.Float64()*span
	return decimal.NewFromFloat(value).Round(2)
}

func (p *provisioner) randomDateOpened() time.Time {
	now := time.Now()
	start := now.AddDate(-p.cfg.MaxYearsBack, 0, 0)
	opened := p.faker.DateRange(start, now)
	if opened.After(now) {
		opened = now.AddDate(0, 0, -1)
	}
	return opened
}
