package main

import (
	"context"
	"log"
	"net/http"

	"portfolio-api/cmd/api/auth"
	"portfolio-api/cmd/api/router"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/config"
	"portfolio-api/db"
)

// @title           Portfolio API
// @version         1.0
// @description     Portfolio profile backend with CV generation
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(db.Database(), jwtManager)

	port := config.GetConfig().Server.Port
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
