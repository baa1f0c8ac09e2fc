package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"arogya-dispatch-service/internal/domain"
)

func newTestSqliteCache(t *testing.T) *SqliteGeocodeCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSqliteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteGeocodeCache(db)
}

func TestSqliteGeocodeCachePutGet(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	want := domain.GeoPoint{Lat: 22.5726, Lng: 88.3639}
	if err := c.Put(ctx, "esplanade kolkata", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "esplanade kolkata")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestSqliteGeocodeCacheMiss(t *testing.T) {
	c := newTestSqliteCache(t)

	_, ok, err := c.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("miss reported as hit")
	}
}

func TestSqliteGeocodeCacheOverwrite(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "sskm", domain.GeoPoint{Lat: 1, Lng: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	want := domain.GeoPoint{Lat: 22.5380, Lng: 88.3538}
	if err := c.Put(ctx, "sskm", want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := c.Get(ctx, "sskm")
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if got != want {
		t.Fatalf("got %+v, want latest %+v", got, want)
	}
}
