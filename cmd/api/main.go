package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/config"
	"github.com/imtiazahmadtanvir/quick-hire/internal/database"
	apphttp "github.com/imtiazahmadtanvir/quick-hire/internal/http"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/handlers"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/metrics"
	httpmw "github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
	"github.com/imtiazahmadtanvir/quick-hire/internal/observability"
	"github.com/imtiazahmadtanvir/quick-hire/internal/repository/postgres"
	"github.com/imtiazahmadtanvir/quick-hire/internal/security"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(context.Background(), db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	tokens := security.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)

	authService := app.NewAuthService(userRepo, tokens)
	userService := app.NewUserService(userRepo)
	jobService := app.NewJobService(jobRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, logger)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, limiter),
		ProfileHandler:     handlers.NewProfileHandler(userService),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter),
		EmployerHandler:    handlers.NewEmployerHandler(userService),
		AuthMiddleware:     httpmw.NewAuthMiddleware(tokens),
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
