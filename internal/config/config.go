package config

import (
	"fmt"
	"time"

	"github.com/maxviazov/swapi-mock/internal/logger"
)

type Config struct {
	Server ServerConfig        `mapstructure:"server"`
	Data   DataConfig          `mapstructure:"data"`
	Logger logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New
}

// ServerConfig controls the HTTP listener and the absolute URLs put into next links.
type ServerConfig struct {
	Name              string        `mapstructure:"name" validate:"required"`
	Env               string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"min=1,max=65535"`
	BaseURL           string        `mapstructure:"base_url" validate:"omitempty,url"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DataConfig tunes the generated tables.
type DataConfig struct {
	// SeedBase pins the instant generated dates are offset from. Empty means process start.
	SeedBase string `mapstructure:"seed_base" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PublicURL is the prefix for next links; it falls back to localhost on the listen port.
func (s ServerConfig) PublicURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("http://localhost:%d", s.Port)
}

// Base returns the pinned seed instant, or now when none is configured.
// Load has already validated the format.
func (d DataConfig) Base(now time.Time) time.Time {
	if d.SeedBase == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, d.SeedBase)
	if err != nil {
		return now
	}
	return t
}
