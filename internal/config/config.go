package config

import (
	"github.com/caarlos0/env/v11"

	"bulk-trafficker/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server started by `serve`.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL run journal.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Google holds credentials shared by every Google API client.
	Google configs.Google `envPrefix:"GOOGLE_"`

	// Sheet selects the trafficking workbook.
	Sheet configs.Sheet `envPrefix:"SHEET_"`

	// Files selects where creative asset files are read from.
	Files configs.Files `envPrefix:"FILES_"`

	// Trafficking overrides workbook settings and tunes batch behaviour.
	Trafficking configs.Trafficking `envPrefix:"TRAFFICKING_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
