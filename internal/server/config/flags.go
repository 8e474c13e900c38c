package config

import (
	"flag"
	"os"

	"github.com/inkpress/inkpress/internal/server/models"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-s string     token signing secret
//	-t duration   token validity (e.g., "24h")
//	-m string     default account status: APPROVED or PENDING
//	-o string     comma-separated CORS origins
//	-c string     path to a JSON config file (consumed by parseJson)
func parseFlags(config *Config) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	fs.DurationVar(&config.TokenValidity, "t", config.TokenValidity, "token validity duration")

	status := fs.String("m", string(config.DefaultAccountStatus), "default account status (APPROVED|PENDING)")
	origins := fs.String("o", "", "comma-separated CORS allowed origins")

	// Declared so the shared argv parses cleanly; the value is read earlier
	// by parseJson.
	var configPath string
	fs.StringVar(&configPath, "c", "", "path to JSON config file")
	fs.StringVar(&configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	config.DefaultAccountStatus = models.AccountStatus(*status)
	if *origins != "" {
		config.CORSAllowedOrigins = splitOrigins(*origins)
	}

	return nil
}
