// Package anthropic is a minimal Messages API client used to generate
// nginx reverse-proxy configuration for a service/domain pair.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
)

// Client is a minimal Anthropic Messages API client.
type Client struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given credentials and model.
func NewClient(apiKey, model string, maxTokens int, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// GenerateProxyConfig asks the model for a plain-HTTP nginx reverse proxy
// config for service at <service>.<domain>. TLS is deliberately excluded;
// certificates are handled by a separate provisioning stage. The returned
// text is the extracted configuration, not the raw model response.
func (c *Client) GenerateProxyConfig(ctx context.Context, service, domain string) (string, error) {
	prompt := fmt.Sprintf(
		"Write an nginx http reverse proxy configuration for the %q service at %s.%s. "+
			"Only plain http, no ssl and no certificates; certificates are managed elsewhere. "+
			"Reply with just the configuration.",
		service, service, domain)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ExtractConfig(raw), nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error != nil {
			return "", fmt.Errorf("generation endpoint: %s (status %d)", parsed.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("generation endpoint: status %d: %s", resp.StatusCode, string(data))
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("generation endpoint: response contains no text")
}
