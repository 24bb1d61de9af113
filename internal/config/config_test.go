package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en-US", cfg.Catalog.Language)
	assert.Equal(t, "newest", cfg.UI.DefaultSort)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Storage.DataDir)
	assert.NotEmpty(t, cfg.Logging.File)
}

func TestIsConfigured(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.IsConfigured())

	cfg.Catalog.TMDBKey = "abc123"
	assert.True(t, cfg.IsConfigured())

	// OMDb alone is not enough; the catalog key is the required one.
	cfg.Catalog.TMDBKey = ""
	cfg.Catalog.OMDBKey = "xyz"
	assert.False(t, cfg.IsConfigured())
}
