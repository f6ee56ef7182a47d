package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shpixel/gallery/internal/config"
	"github.com/shpixel/gallery/internal/devserver"
	"github.com/shpixel/gallery/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("gallery-stubserver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv := devserver.New(devserver.Config{
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenDuration: cfg.Server.TokenDuration,
		DevOTP:        cfg.Server.DevOTP,
		AdminEmails:   splitEmails(os.Getenv("SERVER_ADMIN_EMAILS")),
	}, log)

	if err = srv.Run(cfg.Server.Address); err != nil {
		log.Fatal().Err(err).Msg("stub server stopped")
	}
}

func splitEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
