package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App        AppConfig
	Simulation SimulationConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
	// MetricsAddr exposes prometheus metrics when set (e.g. ":9090"); empty disables
	MetricsAddr string
}

type SimulationConfig struct {
	NumAccounts          int
	NumWorkers           int
	OpsPerWorker         int
	MaxConcurrentWorkers int
	MinInitialBalance    float64
	MaxInitialBalance    float64
	MaxTransactionAmt    float64
	TransferPercent      int
	MaxYearsBack         int
	Seed                 int64
	OpsPerSecond         int
	ShutdownGrace        time.Duration
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			MetricsAddr: getEnv("METRICS_ADDR", ""),
		},
		Simulation: SimulationConfig{
			NumAccounts:          getIntEnv("SIM_ACCOUNTS", 20),
			NumWorkers:           getIntEnv("SIM_WORKERS", 50),
			OpsPerWorker:         getIntEnv("SIM_OPS_PER_WORKER", 1000),
			MaxConcurrentWorkers: getIntEnv("SIM_MAX_CONCURRENT_WORKERS", 0),
			MinInitialBalance:    getFloatEnv("SIM_MIN_INITIAL_BALANCE", 200.0),
			MaxInitialBalance:    getFloatEnv("SIM_MAX_INITIAL_BALANCE", 1000.0),
			MaxTransactionAmt:    getFloatEnv("SIM_MAX_TRANSACTION_AMOUNT", 500.0),
			TransferPercent:      getIntEnv("SIM_TRANSFER_PERCENT", 30),
			MaxYearsBack:         getIntEnv("SIM_MAX_YEARS_BACK", 10),
			Seed:                 getInt64Env("SIM_SEED", 0),
			OpsPerSecond:         getIntEnv("SIM_OPS_PER_SECOND", 0),
			ShutdownGrace:        getDurationEnv("SIM_SHUTDOWN_GRACE", 5*time.Second),
		},
	}
}

// Validate rejects configurations the simulation cannot run with.
// Misconfiguration is fatal, never a recoverable business outcome.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.NumAccounts < 2 {
		return fmt.Errorf("SIM_ACCOUNTS must be at least 2 for transfers, got %d", s.NumAccounts)
	}
	if s.NumWorkers < 1 {
		return fmt.Errorf("SIM_WORKERS must be positive, got %d", s.NumWorkers)
	}
	if s.OpsPerWorker < 1 {
		return fmt.Errorf("SIM_OPS_PER_WORKER must be positive, got %d", s.OpsPerWorker)
	}
	if s.MinInitialBalance < 0 || s.MaxInitialBalance < s.MinInitialBalance {
		return fmt.Errorf("invalid initial balance range [%v, %v]", s.MinInitialBalance, s.MaxInitialBalance)
	}
	if s.MaxTransactionAmt <= 0 {
		return fmt.Errorf("SIM_MAX_TRANSACTION_AMOUNT must be positive, got %v", s.MaxTransactionAmt)
	}
	if s.TransferPercent < 0 || s.TransferPercent > 100 {
		return fmt.Errorf("SIM_TRANSFER_PERCENT must be within [0, 100], got %d", s.TransferPercent)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
