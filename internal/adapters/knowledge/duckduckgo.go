package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"arogya-dispatch-service/internal/platform/obs"
	"arogya-dispatch-service/internal/ports"
)

// DuckDuckGoSource answers from the DuckDuckGo instant-answer API's abstract.
type DuckDuckGoSource struct {
	session *http.Client
	baseURL string
}

func NewDuckDuckGoSource() *DuckDuckGoSource {
	return &DuckDuckGoSource{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.duckduckgo.com",
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (s *DuckDuckGoSource) SetBaseURL(url string) { s.baseURL = strings.TrimRight(url, "/") }

type instantAnswer struct {
	Heading        string `json:"Heading"`
	AbstractText   string `json:"AbstractText"`
	AbstractURL    string `json:"AbstractURL"`
	AbstractSource string `json:"AbstractSource"`
}

func (s *DuckDuckGoSource) Ask(ctx context.Context, query string) (_ ports.Answer, err error) {
	defer obs.Time(ctx, "duckduckgo.Ask")(&err)

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return ports.Answer{}, fmt.Errorf("duckduckgo ask: create request: %w", err)
	}

	resp, err := s.session.Do(req)
	if err != nil {
		return ports.Answer{}, fmt.Errorf("duckduckgo ask: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Answer{}, fmt.Errorf("duckduckgo ask: unexpected status: %d", resp.StatusCode)
	}

	var ia instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&ia); err != nil {
		return ports.Answer{}, fmt.Errorf("duckduckgo ask: decode response: %w", err)
	}

	if strings.TrimSpace(ia.AbstractText) == "" {
		return ports.Answer{}, ports.ErrNoAnswer
	}

	source := ia.AbstractSource
	if source == "" {
		source = "DuckDuckGo IA"
	}

	return ports.Answer{
		Text:      ia.AbstractText,
		Source:    source,
		SourceURL: ia.AbstractURL,
	}, nil
}
