package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"volunteerhub/internal/config"
	"volunteerhub/internal/handlers"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/server"
	"volunteerhub/internal/store"
)

const connectTimeout = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment as-is")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if cfg.APIKey == config.DefaultAPIKey {
		slog.Warn("API_KEY is not configured, falling back to the built-in default")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("JWT_SECRET is not configured, falling back to the built-in default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	st, err := store.Connect(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			slog.Error("closing MongoDB connection", "error", err)
		}
	}()
	slog.Info("connected to MongoDB", "database", cfg.DBName)

	router := server.NewRouter(cfg, server.Handlers{
		Auth:       handlers.NewAuthHandler(repository.NewMongoUserRepository(st), []byte(cfg.JWTSecret)),
		Activities: handlers.NewActivityHandler(repository.NewMongoActivityRepository(st)),
		Posts:      handlers.NewPostHandler(repository.NewMongoPostRepository(st)),
		Health:     handlers.NewHealthHandler(st),
	})

	slog.Info("VolunteerHub backend starting", "port", cfg.Port)
	if err := server.Run(ctx, ":"+cfg.Port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
