package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"arogya-dispatch-service/internal/platform/obs"
	"arogya-dispatch-service/internal/ports"
)

const systemPrompt = "You are a health information assistant. Provide concise, structured, and clear guidance. " +
	"Include a brief disclaimer: not a substitute for professional medical advice; in emergencies, call local emergency number."

// LLMSource asks a chat-completion API for an answer. The provider is chosen
// by which key is configured: OpenAI when its key is set, else OpenRouter.
// With no key at all, Ask reports ErrNoAnswer so the chain moves on.
type LLMSource struct {
	session  *http.Client
	provider string
	endpoint string
	model    string
	apiKey   string
}

func NewLLMSource(openaiKey, openrouterKey string) *LLMSource {
	s := &LLMSource{session: &http.Client{Timeout: 30 * time.Second}}
	switch {
	case strings.TrimSpace(openaiKey) != "":
		s.provider = "openai"
		s.endpoint = "https://api.openai.com/v1/chat/completions"
		s.model = "gpt-4o-mini"
		s.apiKey = openaiKey
	case strings.TrimSpace(openrouterKey) != "":
		s.provider = "openrouter"
		s.endpoint = "https://openrouter.ai/api/v1/chat/completions"
		s.model = "openai/gpt-4o-mini"
		s.apiKey = openrouterKey
	}
	return s
}

// Configured reports whether any provider key is present.
func (s *LLMSource) Configured() bool { return s.apiKey != "" }

// SetEndpoint overrides the completion endpoint, for tests.
func (s *LLMSource) SetEndpoint(url string) { s.endpoint = url }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *LLMSource) Ask(ctx context.Context, query string) (_ ports.Answer, err error) {
	defer obs.Time(ctx, "llm.Ask")(&err)

	if !s.Configured() {
		return ports.Answer{}, ports.ErrNoAnswer
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		Temperature: 0.5,
	})
	if err != nil {
		return ports.Answer{}, fmt.Errorf("llm ask: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.Answer{}, fmt.Errorf("llm ask: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.session.Do(req)
	if err != nil {
		return ports.Answer{}, fmt.Errorf("llm ask: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return ports.Answer{}, fmt.Errorf("llm ask: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Answer{}, fmt.Errorf("llm ask: decode response: %w", err)
	}

	if len(decoded.Choices) == 0 || strings.TrimSpace(decoded.Choices[0].Message.Content) == "" {
		return ports.Answer{}, ports.ErrNoAnswer
	}

	return ports.Answer{
		Text:   decoded.Choices[0].Message.Content,
		Source: s.provider,
	}, nil
}
