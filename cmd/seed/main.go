// Mr_Evra | 2025
// main.go

// Command seed wipes the content tables and loads the initial portfolio
// dataset along with the single admin account. It is destructive and meant
// for first boot or a local reset, not for routine operation.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mr-evra/portfolio-api/internal/config"
	"github.com/mr-evra/portfolio-api/internal/core"
	"github.com/mr-evra/portfolio-api/internal/seed"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return seed.Run(ctx, db.DB, cfg.Seed, logger)
}
