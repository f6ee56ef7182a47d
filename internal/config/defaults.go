package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBaseURL       = "http://localhost:8080"
	defaultTimeout       = 30 * time.Second
	defaultServerAddress = ":8080"
	defaultTokenLifetime = 12 * time.Hour
)

// applyDefaults fills the gaps none of the sources covered. The local cache
// and thumbnails live under ~/.shpixel by default.
func (c *StructuredConfig) applyDefaults() {
	if c.Adapter.BaseURL == "" {
		c.Adapter.BaseURL = defaultBaseURL
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = filepath.Join(homeDir(), ".shpixel", "gallery.db")
	}
	if c.App.ThumbDir == "" {
		c.App.ThumbDir = filepath.Join(homeDir(), ".shpixel", "thumbs")
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultServerAddress
	}
	if c.Server.TokenDuration <= 0 {
		c.Server.TokenDuration = defaultTokenLifetime
	}
	if c.Server.TokenSignKey == "" {
		c.Server.TokenSignKey = "dev-only-sign-key"
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
