package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	var c Config
	c.Defaults()

	assert.Equal(t, ":8080", c.HTTP.Address)
	assert.Equal(t, "http://localhost:8080", c.HostURL)
	assert.Equal(t, "coffee.png", c.Card.IconPath)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST_URL", "https://cards.example.com")
	t.Setenv("STAMP_ICON_PATH", "/srv/assets/stamp.png")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	c := Load()
	assert.Equal(t, ":9090", c.HTTP.Address)
	assert.Equal(t, "https://cards.example.com", c.HostURL)
	assert.Equal(t, "/srv/assets/stamp.png", c.Card.IconPath)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "text", c.Logging.Format)
}
