package iplocate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocateFirstProviderWins(t *testing.T) {
	ipapi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude":22.5726,"longitude":88.3639}`))
	}))
	defer ipapi.Close()

	loc, err := NewChainLocator().WithProviders(ipapi.URL).Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Source != "ipapi" {
		t.Fatalf("source = %s, want ipapi", loc.Source)
	}
	if loc.Point.Lat != 22.5726 || loc.Point.Lng != 88.3639 {
		t.Fatalf("point = %+v", loc.Point)
	}
}

func TestLocateFallsThroughChain(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	// geolocation-db answers "Not found" strings for unknown clients; the
	// parser must treat that as a failure and move on.
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude":"Not found","longitude":"Not found"}`))
	}))
	defer notFound.Close()

	ipinfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"loc":"22.5726,88.3639"}`))
	}))
	defer ipinfo.Close()

	loc, err := NewChainLocator().WithProviders(failing.URL, notFound.URL, ipinfo.URL).Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Source != "ipinfo" {
		t.Fatalf("source = %s, want ipinfo", loc.Source)
	}
	if loc.Point.Lat != 22.5726 {
		t.Fatalf("point = %+v", loc.Point)
	}
}

func TestLocateAllProvidersFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer down.Close()

	_, err := NewChainLocator().WithProviders(down.URL, down.URL, down.URL).Locate(context.Background())
	if err == nil {
		t.Fatal("expected error when every provider fails")
	}
}

func TestParseIpapiRejectsNullIsland(t *testing.T) {
	if _, err := parseIpapi([]byte(`{"latitude":0,"longitude":0}`)); err == nil {
		t.Fatal("0,0 should be rejected")
	}
}

func TestParseIpinfoMalformedLoc(t *testing.T) {
	if _, err := parseIpinfo([]byte(`{"loc":"nope"}`)); err == nil {
		t.Fatal("malformed loc should be rejected")
	}
}
