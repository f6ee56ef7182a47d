package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d local cache database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-thumb-dir thumbnail directory
//	-listen stub server listen address
//	-token-sign-key stub server token signing key
//	-token-duration stub server token lifetime
//	-dev-otp fixed one-time code for the stub server
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var thumbDir string
	var listenAddress string
	var tokenSignKey string
	var tokenDuration time.Duration
	var devOTP string

	flag.StringVar(&baseURL, "a", "", "Gallery service base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&thumbDir, "thumb-dir", "", "Thumbnail directory")
	flag.StringVar(&listenAddress, "listen", "", "Stub server listen address")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Stub server token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Stub server token lifetime")
	flag.StringVar(&devOTP, "dev-otp", "", "Fixed one-time code for the stub server")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		App:     App{ThumbDir: thumbDir},
		Server: Server{
			Address:       listenAddress,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			DevOTP:        devOTP,
		},
		JSONFilePath: jsonConfigPath,
	}
}
