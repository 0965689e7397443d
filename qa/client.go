// Package qa builds question/answer datasets from the recovered contract
// structure: deterministic pairs computed from the payment table, and
// LLM-generated pairs grounded strictly in section text, assembled into the
// JSONL formats used for supervised fine-tuning.
package qa

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Completer is the remote text-completion collaborator. Implementations must
// answer with the raw message content of the first choice.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config holds settings for the OpenAI-compatible chat-completions client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.openai.com". The client
	// appends "/v1/chat/completions".
	BaseURL string

	// APIKey is sent as a bearer token when non-empty.
	APIKey string

	// Model is the completion model to request.
	Model string

	// HTTPClient overrides the default HTTP client when non-nil.
	HTTPClient *http.Client
}

// Client talks to an OpenAI-compatible chat-completions endpoint, always
// requesting JSON-object responses.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a completion client. Missing fields fall back to the
// OpenAI API and the model the original dataset was generated with.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{cfg: cfg, client: client}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user message pair and returns the first choice's
// content.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	data, err := sonic.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("qa: encoding request: %w", err)
	}

	url := c.cfg.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("qa: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("qa: completion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("qa: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("qa: completion request failed with status %d: %s", resp.StatusCode, respBody)
	}

	var parsed chatCompletionResponse
	if err := sonic.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("qa: decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("qa: no choices in completion response")
	}
	return parsed.Choices[0].Message.Content, nil
}
