package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tracklyy/helpdesk-client/internal/cli"
	"github.com/tracklyy/helpdesk-client/internal/core/service"
	"github.com/tracklyy/helpdesk-client/internal/infrastructure/config"
	"github.com/tracklyy/helpdesk-client/internal/infrastructure/gateway"
	"github.com/tracklyy/helpdesk-client/internal/infrastructure/session"
	"github.com/tracklyy/helpdesk-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	sessions := session.NewStore(cfg.SessionFile)
	if err := sessions.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	api := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	auth := service.NewAuthService(api, sessions, log)
	complaints := service.NewComplaintService(api, log)

	app := cli.New(auth, complaints, api, api, api, log, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		if cli.IsHelp(err) {
			os.Exit(2)
		}
		// Every failure class lands here as a user-visible message; the user
		// retries manually.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
