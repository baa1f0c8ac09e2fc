package iplocate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/platform/obs"
	"arogya-dispatch-service/internal/ports"
)

// provider is one IP geolocation backend: a name and a parse of its response.
type provider struct {
	name  string
	url   string
	parse func([]byte) (domain.GeoPoint, error)
}

// ChainLocator implements ports.ApproxLocator by trying an ordered list of
// independent providers and returning the first success. The overall lookup
// fails only when every provider fails.
type ChainLocator struct {
	session   *http.Client
	providers []provider
}

func NewChainLocator() *ChainLocator {
	return &ChainLocator{
		session: &http.Client{Timeout: 8 * time.Second},
		providers: []provider{
			{name: "ipapi", url: "https://ipapi.co/json/", parse: parseIpapi},
			{name: "geolocation-db", url: "https://geolocation-db.com/json/", parse: parseGeolocationDB},
			{name: "ipinfo", url: "https://ipinfo.io/json", parse: parseIpinfo},
		},
	}
}

// WithProviders replaces the provider URLs while keeping their parsers, in
// declaration order. Used by tests to point at local fixtures.
func (c *ChainLocator) WithProviders(urls ...string) *ChainLocator {
	for i := range c.providers {
		if i < len(urls) {
			c.providers[i].url = urls[i]
		}
	}
	return c
}

// Locate queries providers in order and returns the first usable position.
func (c *ChainLocator) Locate(ctx context.Context) (_ ports.ApproxLocation, err error) {
	defer obs.Time(ctx, "iplocate.Locate")(&err)

	var lastErr error
	for _, p := range c.providers {
		point, err := c.fetch(ctx, p)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", p.name, err)
			continue
		}
		return ports.ApproxLocation{Point: point, Source: p.name}, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no providers configured")
	}
	return ports.ApproxLocation{}, fmt.Errorf("approx location: %w", lastErr)
}

func (c *ChainLocator) fetch(ctx context.Context, p provider) (domain.GeoPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return domain.GeoPoint{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("read response: %w", err)
	}

	return p.parse(raw)
}

func parseIpapi(data []byte) (domain.GeoPoint, error) {
	var d struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse: %w", err)
	}
	if d.Latitude == 0 && d.Longitude == 0 {
		return domain.GeoPoint{}, errors.New("no lat/lon in response")
	}
	return domain.GeoPoint{Lat: d.Latitude, Lng: d.Longitude}, nil
}

func parseGeolocationDB(data []byte) (domain.GeoPoint, error) {
	// geolocation-db returns the string "Not found" for unknown fields, so
	// decode into json.Number-tolerant raw values.
	var d struct {
		Latitude  any `json:"latitude"`
		Longitude any `json:"longitude"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse: %w", err)
	}
	lat, okLat := d.Latitude.(float64)
	lng, okLng := d.Longitude.(float64)
	if !okLat || !okLng || (lat == 0 && lng == 0) {
		return domain.GeoPoint{}, errors.New("no numeric lat/lon in response")
	}
	return domain.GeoPoint{Lat: lat, Lng: lng}, nil
}

func parseIpinfo(data []byte) (domain.GeoPoint, error) {
	var d struct {
		Loc string `json:"loc"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse: %w", err)
	}
	parts := strings.SplitN(d.Loc, ",", 2)
	if len(parts) != 2 {
		return domain.GeoPoint{}, fmt.Errorf("malformed loc %q", d.Loc)
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse lat %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse lng %q: %w", parts[1], err)
	}
	return domain.GeoPoint{Lat: lat, Lng: lng}, nil
}
