package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/campushub/campushub/internal/flagx"
	"github.com/campushub/campushub/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which parses both string
// values such as "1h" and integer nanoseconds. After unmarshalling, set
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	StoreTimeout          timex.Duration `json:"store_timeout"`
	BcryptCost            int            `json:"bcrypt_cost"`
}

// parseJson loads configuration from the JSON file named by the -c or
// -config flags. When no flag is set, nothing is loaded. Unset fields in
// the file keep their current values; a missing or invalid file panics,
// since the operator explicitly asked for it.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.StoreTimeout.Duration != 0 {
		config.StoreTimeout = time.Duration(c.StoreTimeout.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
