// helpdesk-stub serves an in-memory fake of the helpdesk REST API on
// localhost so the client can be tried without the real backend. All data
// is lost on exit.
package main

import (
	"github.com/joho/godotenv"

	"github.com/tracklyy/helpdesk-client/internal/infrastructure/config"
	"github.com/tracklyy/helpdesk-client/internal/infrastructure/stubserver"
	"github.com/tracklyy/helpdesk-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	srv := stubserver.New(log)
	if err := srv.Start(":" + cfg.StubPort); err != nil {
		log.Fatal().Err(err).Msg("stub server stopped")
	}
}
