package facilities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	s := NewSource("")

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(DefaultFacilities()) {
		t.Fatalf("got %d facilities, want %d defaults", len(got), len(DefaultFacilities()))
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	s := NewSource(filepath.Join(t.TempDir(), "missing.json"))

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "SSKM Hospital (IPGMER)" {
		t.Fatalf("fallback first entry = %q", got[0].Name)
	}
}

func TestLoadInvalidJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(DefaultFacilities()) {
		t.Fatalf("got %d facilities, want defaults", len(got))
	}
}

func TestLoadEmptyArrayFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(DefaultFacilities()) {
		t.Fatalf("empty dataset should fall back to defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.json")
	body := `[{"name":"Test Hospital","type":"Private Hospital","area":"Test","lat":22.5,"lng":88.4,"alt":["TH"],"pop":3}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Test Hospital" || got[0].Popularity != 3 {
		t.Fatalf("loaded %+v", got)
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Remote Hospital","lat":22.5,"lng":88.4,"pop":1}]`))
	}))
	defer srv.Close()

	got, err := NewSource(srv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Remote Hospital" {
		t.Fatalf("loaded %+v", got)
	}
}

func TestLoadHTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	got, err := NewSource(srv.URL).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(DefaultFacilities()) {
		t.Fatalf("server error should fall back to defaults")
	}
}
