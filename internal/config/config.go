package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	// ReloginOverride replaces an active session on login, clearing the
	// previous account's flag.
	ReloginOverride = "override"
	// ReloginReject refuses a login while another session is active.
	ReloginReject = "reject"
)

type Config struct {
	BankName      string `toml:"bank_name"`
	ReloginPolicy string `toml:"relogin_policy"`
	HashCost      int    `toml:"hash_cost"`
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	QueueSize     int    `toml:"queue_size"`
}

func Default() *Config {
	return &Config{
		BankName:      "ABC Bank",
		ReloginPolicy: ReloginOverride,
		HashCost:      bcrypt.DefaultCost,
		LogLevel:      "info",
		LogFile:       "",
		QueueSize:     64,
	}
}

// Load builds the configuration from defaults, the optional TOML file at
// path and the TELLER_* environment variables, in that order.
func Load(path string) (*Config, error) {
	env := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, env); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
	}

	if err := applyEnvironment(env); err != nil {
		return nil, err
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// ProcessEnvironmentVariables loads the configuration without a config file.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load("")
}

func applyEnvironment(env *Config) error {
	envBankName := os.Getenv("TELLER_BANK_NAME")
	envReloginPolicy := os.Getenv("TELLER_RELOGIN_POLICY")
	envHashCost := os.Getenv("TELLER_HASH_COST")
	envLogLevel := os.Getenv("TELLER_LOG_LEVEL")
	envLogFile := os.Getenv("TELLER_LOG_FILE")
	envQueueSize := os.Getenv("TELLER_QUEUE_SIZE")

	if len(envBankName) != 0 {
		env.BankName = envBankName
	}

	if len(envReloginPolicy) != 0 {
		env.ReloginPolicy = envReloginPolicy
	}

	if len(envHashCost) != 0 {
		cost, err := strconv.Atoi(envHashCost)
		if err != nil {
			return fmt.Errorf("TELLER_HASH_COST has invalid value %q: %w", envHashCost, err)
		}
		env.HashCost = cost
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envLogFile) != 0 {
		env.LogFile = envLogFile
	}

	if len(envQueueSize) != 0 {
		size, err := strconv.Atoi(envQueueSize)
		if err != nil {
			return fmt.Errorf("TELLER_QUEUE_SIZE has invalid value %q: %w", envQueueSize, err)
		}
		env.QueueSize = size
	}

	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.ReloginPolicy {
	case ReloginOverride, ReloginReject:
	default:
		return fmt.Errorf("relogin policy must be %q or %q, got %q", ReloginOverride, ReloginReject, c.ReloginPolicy)
	}

	if c.HashCost < bcrypt.MinCost || c.HashCost > bcrypt.MaxCost {
		return fmt.Errorf("hash cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.HashCost)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.QueueSize < 1 {
		return fmt.Errorf("queue size must be positive, got %d", c.QueueSize)
	}

	return nil
}
