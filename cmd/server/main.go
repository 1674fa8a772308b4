package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/stampcard/internal/api"
	"github.com/youruser/stampcard/internal/card"
	"github.com/youruser/stampcard/internal/config"
	"github.com/youruser/stampcard/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	// Fonts and icon load once here; the renderer degrades rather than
	// fails when assets are missing.
	renderer := card.NewRenderer(card.Config{IconPath: cfg.Card.IconPath}, log)

	r := gin.Default()
	api.RegisterRoutes(r, api.New(renderer, cfg.HostURL, log))

	log.Info("starting server", "addr", cfg.HTTP.Address, "host_url", cfg.HostURL)
	if err := r.Run(cfg.HTTP.Address); err != nil && err != http.ErrServerClosed {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
