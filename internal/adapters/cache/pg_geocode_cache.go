package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/platform/obs"
)

// PgGeocodeCache is the Postgres variant of the geocode cache, for
// deployments where several instances share one cache.
type PgGeocodeCache struct {
	DB *sql.DB
}

func NewPgGeocodeCache(db *sql.DB) *PgGeocodeCache {
	return &PgGeocodeCache{DB: db}
}

// InitPgSchema creates the geocode cache table.
func InitPgSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lng DOUBLE PRECISION NOT NULL
    );
	`

	if _, err := db.Exec(createGeocodeCacheQuery); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// Fetch cached coordinates for the given query.
func (s *PgGeocodeCache) Get(ctx context.Context, query string) (_ domain.GeoPoint, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.GeoPoint{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT lat, lng
    FROM geocode_cache
    WHERE query = $1;
	`

	var p domain.GeoPoint
	err = s.DB.QueryRowContext(ctx, q, query).Scan(&p.Lat, &p.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeoPoint{}, false, nil
	}
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

// Store a query -> coordinate mapping in the cache.
func (s *PgGeocodeCache) Put(ctx context.Context, query string, p domain.GeoPoint) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, lat, lng)
    VALUES ($1, $2, $3)
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, p.Lat, p.Lng); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
