package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration, populated from the environment.
// A .env file in the working directory is honored when present.
type Config struct {
	HTTP struct {
		Address string
	}

	// HostURL is the externally reachable base URL of this service,
	// used to build the card share links that feed the QR endpoint.
	HostURL string

	Card struct {
		IconPath string
	}

	Logging struct {
		Level  string // "debug" | "info" | "warn" | "error"
		Format string // "text" | "json"
	}
}

// Load reads the environment (plus optional .env) and applies defaults.
func Load() Config {
	_ = godotenv.Load()

	var c Config
	if port := os.Getenv("PORT"); port != "" {
		c.HTTP.Address = ":" + port
	}
	c.HostURL = os.Getenv("HOST_URL")
	c.Card.IconPath = os.Getenv("STAMP_ICON_PATH")
	c.Logging.Level = os.Getenv("LOG_LEVEL")
	c.Logging.Format = os.Getenv("LOG_FORMAT")
	c.Defaults()
	return c
}

// Defaults fills unset fields with development-friendly values.
func (c *Config) Defaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HostURL == "" {
		c.HostURL = "http://localhost:8080"
	}
	if c.Card.IconPath == "" {
		c.Card.IconPath = "coffee.png"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}
