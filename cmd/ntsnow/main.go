package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soundfield-hq/nts-radio-client/internal/app"
	"github.com/soundfield-hq/nts-radio-client/internal/config"
	"github.com/soundfield-hq/nts-radio-client/internal/logger"
	"github.com/soundfield-hq/nts-radio-client/pkg/nts"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ntsnow failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	_, err = logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("ntsnow starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := nts.NewClient(
		nts.WithBaseURL(cfg.BaseURL),
		nts.WithTimeout(cfg.RequestTimeout),
		nts.WithUserAgent(cfg.UserAgent),
	)

	if err := app.New(client, os.Stdout).Run(ctx); err != nil {
		if errors.Is(err, nts.ErrAPI) {
			logger.ErrorObj("nts api request failed", "error", err.Error())
		}
		return err
	}

	return nil
}
