package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/platform/obs"
	"arogya-dispatch-service/internal/ports"
)

// NominatimGeocoder implements ports.Geocoder against the OpenStreetMap
// Nominatim API.
//
// It coordinates:
//   - Query normalization
//   - Persistent forward-geocode caching (cache-aside, write-behind on miss)
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     ports.GeocodeCache
}

func NewNominatimGeocoder(cache ports.GeocodeCache) *NominatimGeocoder {
	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: "arogya-dispatch-service/1.0",
		cache:     cache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace and case.
func (n *NominatimGeocoder) normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Forward resolves free text to its single best coordinate match. Cached
// resolutions are served without an external call; fresh resolutions are
// cached best-effort.
func (n *NominatimGeocoder) Forward(ctx context.Context, query string) (_ domain.GeoPoint, _ bool, err error) {
	defer obs.Time(ctx, "nominatim.Forward")(&err)

	norm := n.normalize(query)
	if norm == "" {
		return domain.GeoPoint{}, false, fmt.Errorf("forward geocode: query must be non-empty")
	}

	if n.cache != nil {
		p, ok, err := n.cache.Get(ctx, norm)
		if err != nil {
			return domain.GeoPoint{}, false, fmt.Errorf("forward geocode cache: %w", err)
		}
		if ok {
			return p, true, nil
		}
	}

	endpoint := n.baseURL + "/search"
	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("format", "jsonv2")
		q.Set("q", norm)
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("forward geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("decode search response: %w", err)
	}

	if len(decoded) == 0 {
		return domain.GeoPoint{}, false, nil
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("parse lat %q: %w", decoded[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("parse lon %q: %w", decoded[0].Lon, err)
	}

	p := domain.GeoPoint{Lat: lat, Lng: lng}

	if n.cache != nil {
		if err := n.cache.Put(ctx, norm, p); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return p, true, nil
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Reverse resolves a point to a display address. Callers fall back to a
// formatted coordinate pair when this fails.
func (n *NominatimGeocoder) Reverse(ctx context.Context, p domain.GeoPoint) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.Reverse")(&err)

	endpoint := n.baseURL + "/reverse"
	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("format", "jsonv2")
		q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	var decoded reverseResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse response: %w", err)
	}

	if decoded.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode: empty display name")
	}

	return decoded.DisplayName, nil
}

// SetBaseURL overrides the Nominatim endpoint, for tests.
func (n *NominatimGeocoder) SetBaseURL(raw string) error {
	if _, err := url.Parse(raw); err != nil {
		return fmt.Errorf("set base url: %w", err)
	}
	n.baseURL = strings.TrimRight(raw, "/")
	return nil
}
