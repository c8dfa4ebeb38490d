package main

import (
	"context"
	"log"
	"os"
	"time"

	"accountdemo/internal/domain/account"
	"accountdemo/internal/infrastructure/memory"
	"accountdemo/internal/interfaces/cli"
	"accountdemo/internal/shared/config"
	"accountdemo/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  cfg.Telemetry.Environment,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		})
		defer shutdownTelemetry(shutdown)
		if err != nil {
			return err
		}
	}

	repo := memory.LoadAccounts()
	accountService := account.NewService(repo, os.Stdout, log.New(os.Stderr, "", 0))

	return cli.NewShowcase(accountService, cfg.Log.Verbose).Run(ctx)
}

// shutdownTelemetry flushes whatever telemetry.Init installed, including after
// a partial failure.
func shutdownTelemetry(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}
}
