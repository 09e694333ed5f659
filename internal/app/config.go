package app

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppBaseURL        string        `envconfig:"APP_BASE_URL" default:"http://localhost:8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	UploadMaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`

	Houses        []string `envconfig:"HOUSES" default:"House 1,House 2,House 3"`
	HousesEnforce bool     `envconfig:"HOUSES_ENFORCE" default:"false"`

	AuthHashScheme string `envconfig:"AUTH_HASH_SCHEME" default:"plain"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.AppBaseURL = strings.TrimRight(cfg.AppBaseURL, "/")
	if cfg.AppBaseURL == "" {
		return nil, errors.New("base url must be provided")
	}
	switch cfg.AuthHashScheme {
	case "plain", "bcrypt":
	default:
		return nil, errors.New("auth hash scheme must be plain or bcrypt")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
