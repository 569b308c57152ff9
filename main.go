package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/camden-git/moodmatebackend/auth"
	"github.com/camden-git/moodmatebackend/config"
	"github.com/camden-git/moodmatebackend/database"
	"github.com/camden-git/moodmatebackend/handlers"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		log.Printf("Ensuring database directory exists: %s", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create database directory %s: %v", dir, err)
		}
	}

	db, err := database.InitGormDB(cfg.DatabasePath, database.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}

	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := realtime.NewHub()
	go hub.Run(hubCtx)

	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Displaying dates in zone: %s", cfg.DisplayLocation)
	log.Printf("Token lifetimes: login %s, register %s", cfg.LoginTokenTTL, cfg.RegisterTokenTTL)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsHandler.Handler)

	api := handlers.NewAPI(db, cfg, tokens, hub)
	api.Mount(r)
	r.Route("/api", api.Mount)

	serverAddr := cfg.HTTPAddress()
	fmt.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      65 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received %s, shutting down", sig)

	shutdown(server, stopHub, db, 15*time.Second)
}

// shutdown drains the HTTP server, closes the websocket hub and releases the
// database, in that order.
func shutdown(server *http.Server, stopHub context.CancelFunc, db *gorm.DB, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown error: %v", err)
	}
	// hijacked websocket connections are not tracked by Shutdown
	stopHub()

	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
