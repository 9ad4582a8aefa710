package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai_manager_backend/internal/models"
)

// Message is one entry of the prompt sent to a chat model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the model output for a prompt. Text is empty when the model
// returned no usable choice.
type Completion struct {
	Text  string
	Usage *models.TokenUsage
}

// TextGenerator produces a completion for a list of chat messages.
type TextGenerator interface {
	Chat(ctx context.Context, messages []Message) (Completion, error)
}

// GeneratorConfig holds the chat completions settings.
type GeneratorConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// OpenAIGenerator calls an OpenAI-compatible /chat/completions endpoint.
type OpenAIGenerator struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewOpenAIGenerator builds an OpenAI TextGenerator.
// BaseURL should include the /v1 prefix, e.g. "https://api.openai.com/v1".
func NewOpenAIGenerator(cfg GeneratorConfig) *OpenAIGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIGenerator{
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       strings.TrimSpace(cfg.Model),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Chat implements TextGenerator using the OpenAI chat completions API.
func (g *OpenAIGenerator) Chat(ctx context.Context, messages []Message) (Completion, error) {
	if g.model == "" {
		return Completion{}, fmt.Errorf("openai chat model required")
	}

	body, err := json.Marshal(oaiChatRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return Completion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp oaiErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return Completion{}, fmt.Errorf("OpenAI API error: %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return Completion{}, fmt.Errorf("OpenAI API error: %d", resp.StatusCode)
	}

	var chatResp oaiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return Completion{}, fmt.Errorf("openai decode: %w", err)
	}

	out := Completion{Usage: chatResp.Usage}
	if len(chatResp.Choices) > 0 {
		out.Text = strings.TrimSpace(chatResp.Choices[0].Message.Content)
	}
	return out, nil
}

// OpenAI request/response types.

type oaiChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type oaiChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage *models.TokenUsage `json:"usage"`
}

type oaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
