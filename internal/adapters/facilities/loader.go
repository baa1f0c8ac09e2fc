package facilities

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"arogya-dispatch-service/internal/domain"
)

// Source loads the facility dataset from a JSON file or HTTP URL. Any failure
// (read error, non-success status, invalid or empty array) falls back to the
// bundled default list, so Load never fails.
type Source struct {
	// Path is a local file path or an http(s) URL to a JSON facility array.
	// Empty means defaults only.
	Path    string
	session *http.Client
}

func NewSource(path string) *Source {
	return &Source{
		Path:    path,
		session: &http.Client{Timeout: 10 * time.Second},
	}
}

// Load returns the active facility dataset.
func (s *Source) Load(ctx context.Context) ([]domain.Facility, error) {
	if strings.TrimSpace(s.Path) == "" {
		return DefaultFacilities(), nil
	}

	raw, err := s.read(ctx)
	if err != nil {
		log.Printf("facility source unavailable, using bundled defaults: %v", err)
		return DefaultFacilities(), nil
	}

	var loaded []domain.Facility
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("facility source invalid, using bundled defaults: %v", err)
		return DefaultFacilities(), nil
	}

	if len(loaded) == 0 {
		log.Printf("facility source empty, using bundled defaults")
		return DefaultFacilities(), nil
	}

	return loaded, nil
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(s.Path, "http://") || strings.HasPrefix(s.Path, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Path, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := s.session.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
		}

		return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	}

	return os.ReadFile(s.Path)
}
