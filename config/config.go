// Package config loads the account credential configuration consumed by the
// enumerator. The file format is a yaml document with a single top-level
// `aws_accounts` list; entry order is preserved and meaningful.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Account is one named credential entry. Name is the lookup key used by the
// enumerator; matching is case-insensitive.
type Account struct {
	Name   string `yaml:"name"`
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`
}

// Config is the full credential configuration. It is a value handed to the
// enumerator at construction and never mutated afterwards.
type Config struct {
	Accounts []Account `yaml:"aws_accounts"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate ensures the configuration is usable: at least one account, every
// field present, and no two accounts whose names collide case-insensitively.
func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("at least one account must be defined under aws_accounts")
	}

	seen := make(map[string]bool, len(c.Accounts))
	for i, account := range c.Accounts {
		if account.Name == "" {
			return fmt.Errorf("aws_accounts[%d]: name is required", i)
		}
		if account.Key == "" {
			return fmt.Errorf("aws_accounts[%d]: key is required", i)
		}
		if account.Secret == "" {
			return fmt.Errorf("aws_accounts[%d]: secret is required", i)
		}
		name := strings.ToLower(account.Name)
		if seen[name] {
			return fmt.Errorf("aws_accounts[%d]: duplicate account name: %s", i, account.Name)
		}
		seen[name] = true
	}
	return nil
}
