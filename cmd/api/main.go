package main

import (
	"context"
	"log"

	"cvforge/internal/bootstrap"
	"cvforge/internal/shared/config"
	"cvforge/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	r := server.NewRouter(cfg, app.ResumesHandler)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
