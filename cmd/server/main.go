package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/linkboard/backend/internal/api"
	"github.com/linkboard/backend/internal/classifier"
	"github.com/linkboard/backend/internal/config"
	"github.com/linkboard/backend/internal/db"
	apperrors "github.com/linkboard/backend/internal/errors"
	"github.com/linkboard/backend/internal/health"
	"github.com/linkboard/backend/internal/logger"
	"github.com/linkboard/backend/internal/session"
	"github.com/linkboard/backend/internal/web"
	"github.com/linkboard/backend/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found – falling back to system env")
	}

	cfg := config.Load()
	logger.SetDefault(logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), ""))

	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessions, err := session.NewService(cfg.AdminPassword, cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	videoRepo := db.NewVideoRepository(database)
	checker := health.NewChecker(database.DB)
	router := api.NewRouter(videoRepo, classifier.New(), sessions, renderer, hub, checker)

	handler := apperrors.RequestIDMiddleware(
		logger.RecoveryMiddleware(
			logger.LoggingMiddleware(router),
		),
	)

	log.Printf("Starting server on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
