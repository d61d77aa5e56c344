package trivia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kingrea/riseshine/internal/i18n"
)

// Provider fetches one riddle in the requested language. Implementations
// may block on the network; callers run Fetch off the update loop.
type Provider interface {
	Fetch(ctx context.Context, lang i18n.Language) (Question, error)
}

const (
	// DefaultEndpoint is the generateContent API base.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when the config names none.
	DefaultModel = "gemini-2.0-flash"

	fetchTimeout = 15 * time.Second
)

// Gemini asks a generateContent-style endpoint for a structured riddle.
type Gemini struct {
	APIKey   string
	Model    string
	Endpoint string
	Client   *http.Client
}

// NewGemini builds a provider with defaults filled in.
func NewGemini(apiKey, model, endpoint string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Gemini{
		APIKey:   apiKey,
		Model:    model,
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: fetchTimeout},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

var questionSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"question": {"type": "STRING"},
		"options": {"type": "ARRAY", "items": {"type": "STRING"}},
		"answer": {"type": "STRING"}
	},
	"required": ["question", "options", "answer"]
}`)

// Fetch requests a fresh riddle. An empty API key fails immediately so
// the caller can drop to the fallback bank without a network round trip.
func (g *Gemini) Fetch(ctx context.Context, lang i18n.Language) (Question, error) {
	if g.APIKey == "" {
		return Question{}, fmt.Errorf("trivia: no API key configured")
	}

	prompt := fmt.Sprintf(
		"Generate a clever, short morning riddle to wake someone up in %s. "+
			"Provide the question, 4 distinct options (one correct), and the correct answer string. "+
			"Ensure the output is in %s.",
		languageName(lang), languageName(lang),
	)
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   questionSchema,
		},
	})
	if err != nil {
		return Question{}, fmt.Errorf("trivia: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.Endpoint, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Question{}, fmt.Errorf("trivia: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Question{}, fmt.Errorf("trivia: fetch riddle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Question{}, fmt.Errorf("trivia: endpoint returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Question{}, fmt.Errorf("trivia: decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return Question{}, fmt.Errorf("trivia: empty response")
	}

	var q Question
	if err := json.Unmarshal([]byte(parsed.Candidates[0].Content.Parts[0].Text), &q); err != nil {
		return Question{}, fmt.Errorf("trivia: parse riddle payload: %w", err)
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}
