package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/bloglist/bloglist-go/internal/config"
	"github.com/bloglist/bloglist-go/internal/handler"
	"github.com/bloglist/bloglist-go/internal/middleware"
	"github.com/bloglist/bloglist-go/internal/repository"
	"github.com/bloglist/bloglist-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry)
	authHandler := handler.NewAuthHandler(authService)

	blogService := service.NewBlogService(blogRepo, userRepo)
	blogHandler := handler.NewBlogHandler(blogService)
	statsHandler := handler.NewStatsHandler(blogService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Credential endpoints are rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/login", authHandler.HandleLogin)
		r.Post("/api/users", authHandler.HandleRegister)
	})

	// Reads are public; no authentication required.
	r.Get("/api/blogs", blogHandler.HandleList)
	r.Get("/api/blogs/{id}", blogHandler.HandleGet)
	r.Get("/api/users", authHandler.HandleListUsers)
	r.Get("/api/stats", statsHandler.HandleStats)

	// Mutations require a valid bearer token resolving to a live user.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWTSecret, userRepo))
		r.Get("/api/users/me", authHandler.HandleMe)
		r.Post("/api/blogs", blogHandler.HandleCreate)
		r.Patch("/api/blogs/{id}", blogHandler.HandleUpdate)
		r.Delete("/api/blogs/{id}", blogHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
