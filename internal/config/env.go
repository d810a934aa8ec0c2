package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	DataDir           string `envconfig:"WALLET_DATA_DIR" default:"./data"`
	APIBaseURL        string `envconfig:"API_BASE_URL" required:"true"`
	RPCTimeoutSeconds int    `envconfig:"RPC_TIMEOUT_SECONDS" default:"30"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON           bool   `envconfig:"LOG_JSON" default:"false"`
	SolanaNetwork     string `envconfig:"SOLANA_NETWORK" default:"mainnet"`
}

// RPCTimeout returns the per-call RPC deadline.
func (c *Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPCTimeoutSeconds) * time.Second
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Set installs a configuration directly, bypassing the environment.
// Intended for tests and embedded use.
func Set(c *Config) {
	cfg = c
}
