package main

import (
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"arogya-dispatch-service/internal/adapters/cache"
	"arogya-dispatch-service/internal/config"
	"arogya-dispatch-service/internal/platform/db"
)

// dbtool provisions the Postgres geocode cache schema for deployments that
// point DATABASE_URL at a managed instance.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	if err := cache.InitPgSchema(pg); err != nil {
		log.Fatal(err)
	}

	log.Println("Postgres geocode cache schema is ready")
}
