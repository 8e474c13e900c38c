package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/timex"
)

// JsonConfig is the file-format DTO. timex.Duration lets the lifetime be
// written as "24h" or as integer nanoseconds.
type JsonConfig struct {
	EndpointAddr         string         `json:"endpoint_addr"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	TokenValidity        timex.Duration `json:"token_validity"`
	DefaultAccountStatus string         `json:"default_account_status"`
	CORSAllowedOrigins   []string       `json:"cors_allowed_origins"`
}

// jsonConfigPath extracts the config file path from -c/-config arguments
// without disturbing the main flag parse.
func jsonConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range []string{"-c", "--c", "-config", "--config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v
			}
		}
	}
	return ""
}

// parseJson overlays values from the JSON file named by -c/-config, if any.
func parseJson(config *Config) error {
	path := jsonConfigPath(os.Args[1:])
	if path == "" {
		return nil
	}
	return loadJSONFile(config, path)
}

// loadJSONFile applies the file's values to config. Absent fields keep their
// current values.
func loadJSONFile(config *Config, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = c.TokenValidity.Duration
	}
	if c.DefaultAccountStatus != "" {
		config.DefaultAccountStatus = models.AccountStatus(c.DefaultAccountStatus)
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}

	return nil
}
