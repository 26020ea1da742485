package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/nonsonwune/srms/auth"
	"github.com/nonsonwune/srms/backend"
	"github.com/nonsonwune/srms/config"
	"github.com/nonsonwune/srms/console"
	"github.com/nonsonwune/srms/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zl.Sync()

	rollMode, err := cfg.RollMode()
	if err != nil {
		zl.Fatal("invalid roster configuration", zap.Error(err))
	}

	store := backend.New(
		backend.WithLogger(zl),
		backend.WithRollMode(rollMode),
	)
	authenticator := auth.NewAuthenticator(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.DisplayID, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	zl.Info("srms started", zap.Stringer("roll_mode", rollMode))
	if err := console.New(os.Stdin, color.Output, store, authenticator, zl).Run(ctx); err != nil {
		zl.Error("session ended with error", zap.Error(err))
		os.Exit(1)
	}
}
