// Package llm talks to an Azure OpenAI chat-completions deployment.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crew-agent-api/backend/config"
)

// Chat API types (OpenAI-compatible)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type choice struct {
	Index        int         `json:"index"`
	FinishReason string      `json:"finish_reason"`
	Message      ChatMessage `json:"message"`
}

type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

// Client calls one chat deployment. It is safe for concurrent use.
type Client struct {
	endpoint    string
	deployment  string
	apiVersion  string
	apiKey      string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// ErrNotConfigured is returned by NewClient when credentials are missing.
var ErrNotConfigured = errors.New("azure openai is not configured")

func NewClient(azure config.AzureConfig, crew config.CrewConfig) (*Client, error) {
	if azure.APIKey == "" || azure.Endpoint == "" || azure.Deployment == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		endpoint:    strings.TrimRight(azure.Endpoint, "/"),
		deployment:  azure.Deployment,
		apiVersion:  azure.APIVersion,
		apiKey:      azure.APIKey,
		temperature: crew.Temperature,
		maxTokens:   crew.MaxTokens,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Complete sends one system+user exchange and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(reqBody); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("azure openai error (status %d): %s", res.StatusCode, string(b))
	}

	var cr chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("azure openai returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
