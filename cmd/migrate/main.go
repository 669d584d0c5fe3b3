package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/imtiazahmadtanvir/quick-hire/internal/config"
	"github.com/imtiazahmadtanvir/quick-hire/internal/database"
	"github.com/imtiazahmadtanvir/quick-hire/internal/observability"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "migration timeout")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxIdle:     time.Minute,
		ConnMaxLifetime: 5 * time.Minute,
	})
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")
}
