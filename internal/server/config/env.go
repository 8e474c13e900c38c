package config

import (
	"os"
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/server/models"
)

// parseEnv overlays configuration from environment variables. Unset variables
// keep their current values; a malformed TOKEN_VALIDITY is ignored rather
// than masking the flag layer.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v, ok := os.LookupEnv("DEFAULT_ACCOUNT_STATUS"); ok {
		config.DefaultAccountStatus = models.AccountStatus(v)
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
}

func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
