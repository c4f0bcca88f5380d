package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Agora/internal/api/middleware"
	"Agora/internal/api/routes"
	"Agora/internal/auth"
	"Agora/internal/config"
	"Agora/internal/core/contentpolicy"
	"Agora/internal/core/posts"
	"Agora/internal/db/migrations"
	postgresRepo "Agora/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("Connected to database")

	if !cfg.MigrationsDisabled {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set goose dialect:", err)
		}
		if err := goose.Up(db.DB, "."); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		log.Println("Migrations completed successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var keys auth.KeySource
	if cfg.JWKSURL != "" {
		jwks, err := auth.NewJWKSKeySource(ctx, cfg.JWKSURL, cfg.JWKSRefresh)
		if err != nil {
			log.Fatal("Failed to load JWKS:", err)
		}
		keys = jwks
	}
	resolver := auth.NewTokenResolver([]byte(cfg.JWTSecret), cfg.JWTIssuer, keys, logger)

	policy, err := contentpolicy.New(cfg.SlurFilter)
	if err != nil {
		log.Fatal("Invalid SLUR_FILTER:", err)
	}

	// Initialize repositories and services
	postRepo := postgresRepo.NewPostRepository(db)
	voteRepo := postgresRepo.NewVoteRepository(db)
	saveRepo := postgresRepo.NewSaveRepository(db)
	modRepo := postgresRepo.NewModerationRepository(db)
	communityRepo := postgresRepo.NewCommunityRepository(db)
	userRepo := postgresRepo.NewUserRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)

	postService := posts.NewPostService(
		postRepo, voteRepo, saveRepo, modRepo,
		communityRepo, userRepo, commentRepo,
		resolver, policy,
		posts.WithLogger(logger.With("component", "posts")),
	)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 300,
	}))

	// Rate limiting keyed by user when authenticated, otherwise by IP
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	authMiddleware := middleware.NewAuthMiddleware(resolver)
	routes.RegisterPostRoutes(r, postService, authMiddleware, rateLimiter.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Agora AppView starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
