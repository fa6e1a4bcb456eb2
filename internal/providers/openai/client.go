package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"detectia-backend/internal/providers"
)

const defaultBaseURL = "https://api.openai.com/v1"

const systemPrompt = `Vous êtes un expert en détection de textes générés par IA, spécialisé dans l'analyse de textes français académiques. Soyez très strict dans votre évaluation. Un texte généré par IA doit avoir un score élevé (70-95). Répondez uniquement avec un nombre entre 0 et 100.`

const promptTemplate = `Analysez ce texte français et donnez un score de 0 à 100 indiquant la probabilité qu'il ait été généré par une IA.

Critères d'évaluation stricts:
- Répétitions de structures syntaxiques
- Vocabulaire trop parfait ou artificiel
- Transitions mécaniques entre idées
- Absence d'erreurs naturelles
- Style trop uniforme
- Connecteurs logiques sur-utilisés

Texte à analyser:
%s

Score (0-100):`

// Client implements providers.Provider by asking an OpenAI chat model for a
// numeric AI-likelihood verdict. The model's judgment is itself an opaque
// signal; it is treated exactly like the other detection services.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New constructs an OpenAI detection client. baseURL may be empty to use the
// public endpoint; model defaults to gpt-4.
func New(baseURL, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}, nil
}

// Name returns the provider key.
func (c *Client) Name() string { return providers.SourceOpenAI }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Detect asks the chat model for a 0-100 score and parses the reply.
func (c *Client) Detect(ctx context.Context, text string) (providers.Signal, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, text)},
		},
		MaxTokens:   10,
		Temperature: 0.1,
	})
	if err != nil {
		return providers.Signal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return providers.Signal{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Signal{}, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providers.Signal{}, fmt.Errorf("openai status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return providers.Signal{}, err
	}
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return providers.Signal{}, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return providers.Signal{}, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return providers.Signal{}, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	score, err := strconv.Atoi(content)
	if err != nil {
		return providers.Signal{}, fmt.Errorf("openai verdict not numeric: %q", content)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return providers.Signal{Score: float64(score)}, nil
}

var _ providers.Provider = (*Client)(nil)
