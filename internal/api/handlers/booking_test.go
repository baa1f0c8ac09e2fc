package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arogya-dispatch-service/internal/adapters/facilities"
	"arogya-dispatch-service/internal/adapters/fleet"
	"arogya-dispatch-service/internal/adapters/geocode"
	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/domain"
)

func newBookingHandler() *BookingHandler {
	return &BookingHandler{
		Facilities: facilities.DefaultFacilities(),
		Roster:     fleet.Roster(),
		Geocoder: geocode.NewMockGeocoder([]geocode.MockEntry{
			{Query: "park street kolkata", Point: domain.GeoPoint{Lat: 22.5550, Lng: 88.3520}},
		}),
	}
}

func postQuotes(t *testing.T, h *BookingHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Quotes(rec, req)
	return rec
}

func TestQuotesHappyPath(t *testing.T) {
	rec := postQuotes(t, newBookingHandler(), `{
		"pickup": {"lat": 22.5726, "lng": 88.3639},
		"destination_text": "SSKM Hospital (IPGMER)",
		"service_class": "BLS",
		"phone": "9876543210"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var res dto.ListQuotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("count = %d, want 2 BLS quotes", res.Count)
	}
	if res.Quotes[0].VehicleID != "AMB-101" {
		t.Fatalf("nearest = %s, want AMB-101", res.Quotes[0].VehicleID)
	}
	// Destination resolved to the named facility's coordinates.
	if res.Quotes[0].Destination.Lat != 22.5380 || res.Quotes[0].Destination.Lng != 88.3538 {
		t.Fatalf("destination = %+v", res.Quotes[0].Destination)
	}
}

func TestQuotesValidation(t *testing.T) {
	h := newBookingHandler()

	cases := []struct {
		name string
		body string
	}{
		{"missing pickup", `{"destination_text":"SSKM","service_class":"BLS","phone":"9876543210"}`},
		{"unknown class", `{"pickup":{"lat":22.57,"lng":88.36},"destination_text":"SSKM","service_class":"ICU","phone":"9876543210"}`},
		{"missing destination", `{"pickup":{"lat":22.57,"lng":88.36},"service_class":"BLS","phone":"9876543210"}`},
		{"short phone", `{"pickup":{"lat":22.57,"lng":88.36},"destination_text":"SSKM","service_class":"BLS","phone":"12345"}`},
		{"bad json", `{nope`},
	}

	for _, tc := range cases {
		if rec := postQuotes(t, h, tc.body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestQuotesMortuaryWithoutDestination(t *testing.T) {
	rec := postQuotes(t, newBookingHandler(), `{
		"pickup": {"lat": 22.5726, "lng": 88.3639},
		"service_class": "Mortuary",
		"phone": "9876543210"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var res dto.ListQuotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count != 1 || res.Quotes[0].VehicleID != "MORT-21" {
		t.Fatalf("quotes = %+v, want only MORT-21", res.Quotes)
	}
	// No destination means the pickup is the baseline: zero trip distance.
	if res.Quotes[0].TripDistanceKm != 0 {
		t.Fatalf("trip distance = %v, want 0", res.Quotes[0].TripDistanceKm)
	}
}

func TestQuotesExplicitDestinationWins(t *testing.T) {
	rec := postQuotes(t, newBookingHandler(), `{
		"pickup": {"lat": 22.5726, "lng": 88.3639},
		"destination_text": "SSKM Hospital (IPGMER)",
		"destination": {"lat": 22.5, "lng": 88.4},
		"service_class": "Any",
		"phone": "9876543210"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var res dto.ListQuotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Quotes[0].Destination.Lat != 22.5 || res.Quotes[0].Destination.Lng != 88.4 {
		t.Fatalf("explicit coordinates ignored: %+v", res.Quotes[0].Destination)
	}
}

func TestQuotesDefaultsToAnyClass(t *testing.T) {
	rec := postQuotes(t, newBookingHandler(), `{
		"pickup": {"lat": 22.5726, "lng": 88.3639},
		"destination_text": "park street kolkata",
		"phone": "9876543210"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var res dto.ListQuotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count != 4 {
		t.Fatalf("count = %d, want 4 emergency vehicles", res.Count)
	}
	for _, q := range res.Quotes {
		if q.ServiceClass == "Mortuary" {
			t.Fatal("mortuary van quoted for default class")
		}
	}
}
