package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from the environment. The signing secret
// normally arrives this way (SECRET_KEY); durations use Go syntax, e.g.
// "1h" or "3s".
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("STORE_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.StoreTimeout = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
