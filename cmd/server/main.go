package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"arogya-dispatch-service/internal/adapters/cache"
	"arogya-dispatch-service/internal/adapters/facilities"
	"arogya-dispatch-service/internal/adapters/fleet"
	"arogya-dispatch-service/internal/adapters/geocode"
	"arogya-dispatch-service/internal/adapters/iplocate"
	"arogya-dispatch-service/internal/adapters/knowledge"
	"arogya-dispatch-service/internal/api"
	"arogya-dispatch-service/internal/config"
	"arogya-dispatch-service/internal/platform/db"
	"arogya-dispatch-service/internal/ports"
	"arogya-dispatch-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Redis/Postgres, Nominatim, the knowledge
// chain) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	geocodeCache, closeCache := openGeocodeCache(cfg)
	defer closeCache()

	source := facilities.NewSource(cfg.FacilitiesPath)
	facilityList, err := source.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	geocoder := geocode.NewNominatimGeocoder(geocodeCache)
	locator := iplocate.NewChainLocator()

	// Knowledge sources answer in order: the LLM when a key is configured,
	// then DuckDuckGo instant answers, then Wikipedia.
	asker := knowledge.NewChain(
		knowledge.NewLLMSource(cfg.OpenAIKey, cfg.OpenRouterKey),
		knowledge.NewDuckDuckGoSource(),
		knowledge.NewWikipediaSource(),
	)

	session := services.NewSession(cfg.TickInterval)

	router := api.NewRouter(api.Deps{
		Facilities: facilityList,
		Roster:     fleet.Roster(),
		Geocoder:   geocoder,
		Locator:    locator,
		Knowledge:  asker,
		Session:    session,
		SiteDir:    cfg.SiteDir,
	})

	// No write timeout: the websocket tracking feed outlives any fixed bound.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache picks the cache backend from the environment: Redis when
// REDIS_ADDR is set, Postgres when DATABASE_URL is set, SQLite otherwise.
func openGeocodeCache(cfg *config.Config) (ports.GeocodeCache, func()) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis ping failed: %v", err)
		}
		log.Printf("Geocode cache backend=redis addr=%s", cfg.RedisAddr)
		return cache.NewRedisGeocodeCache(client, cfg.CacheTTL), func() { client.Close() }
	}

	if cfg.DatabaseURL != "" {
		pg, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := cache.InitPgSchema(pg); err != nil {
			log.Fatal(err)
		}
		log.Println("Geocode cache backend=postgres")
		return cache.NewPgGeocodeCache(pg), func() { pg.Close() }
	}

	sqlite, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cache.InitSqliteSchema(sqlite); err != nil {
		log.Fatal(err)
	}
	log.Printf("Geocode cache backend=sqlite path=%s", cfg.DBPath)
	return cache.NewSqliteGeocodeCache(sqlite), func() { sqlite.Close() }
}
