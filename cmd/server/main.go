package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/config"
	"github.com/stagefolio/internal/db"
	"github.com/stagefolio/internal/handler"
	"github.com/stagefolio/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api := handler.NewAPI(db.DB, cfg)

	// Startup sweep of expired sessions; lookups still re-check expiry.
	if purged, err := api.Sessions().PurgeExpired(); err != nil {
		log.Printf("failed to purge expired sessions: %v", err)
	} else if purged > 0 {
		log.Printf("purged %d expired admin sessions", purged)
	}

	r := router.SetupRouter(api, cfg.AllowedOrigins)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
