package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arogya-dispatch-service/internal/adapters/facilities"
	"arogya-dispatch-service/internal/api/dto"
)

func getSuggest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := &FacilityHandler{Facilities: facilities.DefaultFacilities()}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Suggest(rec, req)
	return rec
}

func TestSuggestRanksQuery(t *testing.T) {
	rec := getSuggest(t, "/api/facilities/suggest?q=ssk")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListFacilitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count == 0 {
		t.Fatal("no suggestions")
	}
	if res.Facilities[0].Name != "SSKM Hospital (IPGMER)" {
		t.Fatalf("top = %q", res.Facilities[0].Name)
	}
	if res.Facilities[0].DistanceKm != nil {
		t.Fatal("distance should be omitted without a pickup")
	}
}

func TestSuggestWithPickupCarriesDistance(t *testing.T) {
	rec := getSuggest(t, "/api/facilities/suggest?q=ssk&lat=22.5380&lng=88.3538")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListFacilitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Facilities[0].DistanceKm == nil {
		t.Fatal("distance missing with a pickup")
	}
	if *res.Facilities[0].DistanceKm != 0 {
		t.Fatalf("distance at pickup = %v, want 0", *res.Facilities[0].DistanceKm)
	}
}

func TestSuggestRejectsBadCoordinates(t *testing.T) {
	if rec := getSuggest(t, "/api/facilities/suggest?q=ssk&lat=abc&lng=88.35"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSuggestEmptyQueryListsByPopularity(t *testing.T) {
	rec := getSuggest(t, "/api/facilities/suggest")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListFacilitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Count != 10 {
		t.Fatalf("count = %d, want capped 10", res.Count)
	}
}
