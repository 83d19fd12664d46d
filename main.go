package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"billdesk/cmd"
	"billdesk/internal/config"
	"billdesk/internal/logger"
)

func main() {
	// .env is optional; the process environment and defaults still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		// Fall back to the default logger so the failure is still reported
		if setupErr := logger.Setup(logger.DefaultConfig()); setupErr != nil {
			log.Fatalf("Failed to initialize logger: %v", setupErr)
		}
		startupLog := logger.WithComponent("main")
		startupLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.WithComponent("main")
	log.Info().Msg("Starting Billdesk")

	cmd.Execute(cfg)

	log.Info().Msg("Billdesk shutdown")
	os.Exit(0)
}
