package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arogya-dispatch-service/internal/domain"
)

// SQLite backed cache mapping geocode queries to coordinates. Query keys are
// expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// InitSqliteSchema creates the geocode cache table.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lng REAL NOT NULL
    );
	`

	if _, err := db.Exec(createGeocodeCacheQuery); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// Fetch cached coordinates for the given query.
func (s *SqliteGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	if s.DB == nil {
		return domain.GeoPoint{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT lat, lng
    FROM geocode_cache
    WHERE query = ?;
	`

	var p domain.GeoPoint
	err := s.DB.QueryRowContext(ctx, q, query).Scan(&p.Lat, &p.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeoPoint{}, false, nil
	}
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

// Store a query -> coordinate mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, query string, p domain.GeoPoint) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (query, lat, lng)
    VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, query, p.Lat, p.Lng); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
