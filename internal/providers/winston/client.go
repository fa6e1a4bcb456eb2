package winston

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

const defaultBaseURL = "https://api.gowinston.ai/v1"

// Client implements providers.Provider against the Winston AI predict API.
// Winston reports human-likelihood, so scores are inverted to the common
// AI-likelihood scale: 100 - human.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New constructs a Winston AI client. baseURL may be empty to use the public
// endpoint.
func New(baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("WINSTON_API_KEY is required")
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
func (c *Client) Name() string { return providers.SourceWinston }

type predictRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Version  string `json:"version"`
}

type predictResponse struct {
	Result struct {
		Score     float64 `json:"score"`
		IsHuman   bool    `json:"is_human"`
		Sentences []struct {
			Text  string  `json:"text"`
			Score float64 `json:"score"`
		} `json:"sentences"`
	} `json:"result"`
}

// Detect submits the text for prediction and inverts Winston's
// human-likelihood scores into AI-likelihood.
func (c *Client) Detect(ctx context.Context, text string) (providers.Signal, error) {
	payload, err := json.Marshal(predictRequest{
		Text:     text,
		Language: "fr",
		Version:  "3.0",
	})
	if err != nil {
		return providers.Signal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return providers.Signal{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Signal{}, fmt.Errorf("winston request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providers.Signal{}, fmt.Errorf("winston status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.Signal{}, err
	}
	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return providers.Signal{}, fmt.Errorf("winston response parse: %w", err)
	}

	signal := providers.Signal{
		Score: invert(parsed.Result.Score),
	}
	for _, s := range parsed.Result.Sentences {
		signal.Sentences = append(signal.Sentences, providers.Sentence{
			Text:  s.Text,
			Score: invert(s.Score),
		})
	}
	return signal, nil
}

// invert maps a 0-1 human-likelihood to a 0-100 AI-likelihood.
func invert(human float64) float64 {
	ai := (1 - human) * 100
	if ai < 0 {
		return 0
	}
	if ai > 100 {
		return 100
	}
	return ai
}

var _ providers.Provider = (*Client)(nil)
