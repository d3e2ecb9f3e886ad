package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"ledger-simulation/internal/config"
	"ledger-simulation/internal/report"
	"ledger-simulation/internal/services"
	"ledger-simulation/internal/simulation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	if cfg.App.MetricsAddr != "" {
		go serveMetrics(logger, cfg.App.MetricsAddr, registry)
	}

	collector := simulation.NewCollector(cfg.Simulation.NumWorkers * cfg.Simulation.OpsPerWorker)
	audit := services.NewAuditLogger(logger)
	ledger := services.NewLedgerService(collector, metrics, audit)
	transfers := services.NewTransferService(collector, metrics, audit)

	sim := simulation.New(cfg.Simulation, ledger, transfers, metrics, audit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation starting",
		"run_id", sim.RunID(),
		"accounts", cfg.Simulation.NumAccounts,
		"workers", cfg.Simulation.NumWorkers,
		"ops_per_worker", cfg.Simulation.OpsPerWorker)

	if err := sim.Provision(ctx); err != nil {
		logger.Error("provisioning failed", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := sim.Run(ctx); err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}
	elapsed := time.Since(start)

	summary := report.Build(collector.Snapshot(), sim.InitialBalances(), finalBalances(sim))
	fmt.Println(report.Render(summary))

	if !summary.Balanced() {
		for _, a := range summary.Unbalanced() {
			logger.Error("account out of balance",
				"account_number", a.AccountNumber,
				"expected", a.ExpectedBalance.String(),
				"final", a.FinalBalance.String())
		}
		os.Exit(1)
	}

	logger.Info("simulation completed",
		"run_id", sim.RunID(),
		"state", sim.State(),
		"operations", summary.TotalOperations,
		"elapsed", elapsed.Round(time.Millisecond))

	// Leave the metrics endpoint up briefly so a final scrape can land.
	if cfg.App.MetricsAddr != "" {
		time.Sleep(cfg.Simulation.ShutdownGrace)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func serveMetrics(logger *slog.Logger, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Info("metrics endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics endpoint failed", "error", err)
	}
}

func finalBalances(sim *simulation.Simulation) map[string]decimal.Decimal {
	accounts := sim.Accounts()
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, account := range accounts {
		balances[account.AccountNumber()] = account.Balance()
	}
	return balances
}
