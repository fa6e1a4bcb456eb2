package main

import (
	"log"

	"detectia-backend/internal/bootstrap"
	"detectia-backend/internal/shared/config"
	"detectia-backend/internal/shared/server"
	"detectia-backend/internal/shared/telemetry"
)

func main() {
	app, err := bootstrap.Build(config.Load())
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(app.Config.Port)
	telemetry.Info("server.start", map[string]any{
		"addr": addr,
		"env":  app.Config.Env,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
