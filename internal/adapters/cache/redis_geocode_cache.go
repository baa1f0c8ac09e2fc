package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"arogya-dispatch-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode resolutions in Redis with a TTL, for
// deployments that prefer a shared in-memory cache over SQL.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached coordinates for the given query.
func (r *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	if r.Client == nil {
		return domain.GeoPoint{}, false, errors.New("geocode cache: redis client is nil")
	}

	vals, err := r.Client.HGetAll(ctx, redisKeyPrefix+query).Result()
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: redis hgetall: %w", err)
	}
	if len(vals) == 0 {
		return domain.GeoPoint{}, false, nil
	}

	lat, err := strconv.ParseFloat(vals["lat"], 64)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: parse lat %q: %w", vals["lat"], err)
	}
	lng, err := strconv.ParseFloat(vals["lng"], 64)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: parse lng %q: %w", vals["lng"], err)
	}

	return domain.GeoPoint{Lat: lat, Lng: lng}, true, nil
}

// Store a query -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, query string, p domain.GeoPoint) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	key := redisKeyPrefix + query
	pipe := r.Client.TxPipeline()
	pipe.HSet(ctx, key,
		"lat", strconv.FormatFloat(p.Lat, 'f', -1, 64),
		"lng", strconv.FormatFloat(p.Lng, 'f', -1, 64),
	)
	pipe.Expire(ctx, key, r.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
