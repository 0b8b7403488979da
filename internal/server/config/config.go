// Package config handles configuration for the server component:
// defaults, JSON overlay, environment, and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the campushub server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required;
//     there is deliberately no default.
//   - TokenValidityDuration: session token lifetime.
//   - StoreTimeout: upper bound on any single credential-store access.
//   - BcryptCost: password hashing cost factor.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	StoreTimeout          time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with development defaults. SecretKey is
// intentionally left empty; startup fails unless one is supplied.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.TokenValidityDuration = 1 * time.Hour
	c.StoreTimeout = 3 * time.Second
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
// It returns an error when no signing secret was provided by any layer.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)

	if cfg.SecretKey == "" {
		return nil, errors.New("signing secret is required: set SECRET_KEY or pass -s")
	}
	return cfg, nil
}
