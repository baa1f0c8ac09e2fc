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

// WikipediaSource searches Wikipedia and answers with the top hit's summary
// extract.
type WikipediaSource struct {
	session *http.Client
	baseURL string
}

func NewWikipediaSource() *WikipediaSource {
	return &WikipediaSource{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://en.wikipedia.org",
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (s *WikipediaSource) SetBaseURL(url string) { s.baseURL = strings.TrimRight(url, "/") }

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func (s *WikipediaSource) Ask(ctx context.Context, query string) (_ ports.Answer, err error) {
	defer obs.Time(ctx, "wikipedia.Ask")(&err)

	title, err := s.search(ctx, query)
	if err != nil {
		return ports.Answer{}, err
	}

	summary, err := s.summary(ctx, title)
	if err != nil {
		return ports.Answer{}, err
	}

	text := summary.Extract
	if strings.TrimSpace(text) == "" {
		return ports.Answer{}, ports.ErrNoAnswer
	}

	page := summary.ContentURLs.Desktop.Page
	if page == "" {
		page = s.baseURL + "/wiki/" + url.PathEscape(title)
	}

	return ports.Answer{
		Text:      text,
		Source:    "Wikipedia",
		SourceURL: page,
	}, nil
}

func (s *WikipediaSource) search(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("format", "json")
	q.Set("srsearch", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/w/api.php?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("wikipedia search: create request: %w", err)
	}

	resp, err := s.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("wikipedia search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia search: unexpected status: %d", resp.StatusCode)
	}

	var decoded wikiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("wikipedia search: decode response: %w", err)
	}

	if len(decoded.Query.Search) == 0 {
		return "", ports.ErrNoAnswer
	}

	return decoded.Query.Search[0].Title, nil
}

func (s *WikipediaSource) summary(ctx context.Context, title string) (wikiSummary, error) {
	endpoint := s.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return wikiSummary{}, fmt.Errorf("wikipedia summary: create request: %w", err)
	}

	resp, err := s.session.Do(req)
	if err != nil {
		return wikiSummary{}, fmt.Errorf("wikipedia summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return wikiSummary{}, fmt.Errorf("wikipedia summary: unexpected status: %d", resp.StatusCode)
	}

	var decoded wikiSummary
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return wikiSummary{}, fmt.Errorf("wikipedia summary: decode response: %w", err)
	}

	return decoded, nil
}
