package main

import (
	"github.com/gin-gonic/gin"

	"github.com/autokomis-pl/autokomis-api/internal/config"
	dbpkg "github.com/autokomis-pl/autokomis-api/internal/db"
	"github.com/autokomis-pl/autokomis-api/internal/logger"
	"github.com/autokomis-pl/autokomis-api/internal/middleware"
	"github.com/autokomis-pl/autokomis-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.CORS(cfg))

	if err := routes.RegisterRoutes(r, db, cfg, log); err != nil {
		log.Fatalf("failed to set up routes: %v", err)
	}

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
