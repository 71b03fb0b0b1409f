// @title         c4ctexts API
// @version       0.1.0
// @description   Resolves CRM tickets into their texts, internal memos and e-mail notes

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/platform/logger"
	phttp "c4ctexts/internal/platform/net/http"

	"c4ctexts/internal/services/api"
)

func main() {
	// .env first so LOG_* and C4C_* see it
	envFile := config.LoadDotEnv()
	logger.Init(logger.FromEnv())
	l := logger.Named("api")
	if envFile != "" {
		l.Info().Str("file", envFile).Msg("loaded .env")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(srv.Router(), api.FromConfig(root, apiCfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run
	grace := apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second)
	if err := srv.Run(ctx, grace); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
