package originality

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"detectia-backend/internal/providers"
)

const defaultBaseURL = "https://api.originality.ai/api/v1"

// Client implements providers.Provider against the Originality.ai scan API.
// Originality reports AI-likelihood directly on a 0-1 scale.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New constructs an Originality.ai client. baseURL may be empty to use the
// public endpoint.
func New(baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ORIGINALITY_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}, nil
}

// Name returns the provider key.
func (c *Client) Name() string { return providers.SourceOriginality }

type scanRequest struct {
	Content        string `json:"content"`
	Title          string `json:"title"`
	AIModelVersion string `json:"aiModelVersion"`
	StoreScan      bool   `json:"storeScan"`
}

type scanResponse struct {
	Score struct {
		AI       float64 `json:"ai"`
		Original float64 `json:"original"`
	} `json:"score"`
	Sentences []struct {
		Text    string  `json:"text"`
		AIScore float64 `json:"ai_score"`
	} `json:"sentences"`
	ModelUsed string `json:"model_used"`
}

// Detect submits the text for an AI scan and normalizes the verdict to the
// common 0-100 scale.
func (c *Client) Detect(ctx context.Context, text string) (providers.Signal, error) {
	payload, err := json.Marshal(scanRequest{
		Content:        text,
		Title:          "Student Work Analysis",
		AIModelVersion: "1",
		StoreScan:      false,
	})
	if err != nil {
		return providers.Signal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scan/ai", bytes.NewReader(payload))
	if err != nil {
		return providers.Signal{}, err
	}
	req.Header.Set("X-OAI-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Signal{}, fmt.Errorf("originality request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providers.Signal{}, fmt.Errorf("originality status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.Signal{}, err
	}
	var parsed scanResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return providers.Signal{}, fmt.Errorf("originality response parse: %w", err)
	}

	signal := providers.Signal{
		Score: clampScore(parsed.Score.AI * 100),
		Agent: parsed.ModelUsed,
	}
	for _, s := range parsed.Sentences {
		signal.Sentences = append(signal.Sentences, providers.Sentence{
			Text:  s.Text,
			Score: clampScore(s.AIScore * 100),
		})
	}
	return signal, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var _ providers.Provider = (*Client)(nil)
