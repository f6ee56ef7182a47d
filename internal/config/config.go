// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package config assembles the application configuration by merging three
// sources, in priority order: environment variables, command-line flags, and
// an optional JSON file referenced by either of the first two.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote service endpoint settings used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// App holds client application settings (thumbnail directory).
	App App `envPrefix:"APP_" json:"app"`

	// Server holds the dev stub server settings; ignored by the client.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Adapter holds network settings for the outbound HTTP client.
type Adapter struct {
	// BaseURL is the root URL of the identity + gallery service.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout bounds every outbound request, the multipart uploads
	// included. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the sqlite cache settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB contains the local cache database location.
type DB struct {
	// DSN is the sqlite file path; ":memory:" for a throwaway database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// App holds application-level client settings.
type App struct {
	// ThumbDir is the directory that receives locally generated thumbnails.
	// Env: APP_THUMB_DIR
	ThumbDir string `env:"THUMB_DIR" json:"thumb_dir"`
}

// Server configures the dev stub server binary.
type Server struct {
	// Address is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// TokenSignKey signs the JWT tokens the stub issues.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenDuration is the issued token lifetime (e.g. "12h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"token_duration"`

	// DevOTP, when non-empty, fixes the one-time code instead of generating
	// one, which keeps scripted dev logins reproducible.
	// Env: SERVER_DEV_OTP
	DevOTP string `env:"DEV_OTP" json:"dev_otp"`
}

// GetStructuredConfig assembles the merged configuration: env first, then
// flags, then the JSON file either of them pointed at.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
