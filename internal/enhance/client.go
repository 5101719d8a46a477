package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/HartBrook/burnish/internal/config"
	"github.com/HartBrook/burnish/internal/errors"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1"
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 4096
	apiVersion       = "2023-06-01"
)

// Client handles communication with the Claude API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key, overriding the environment lookup.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithModel sets the model to use.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new Claude API client. When no WithAPIKey option
// is given, the key falls back to the ANTHROPIC_API_KEY environment
// variable.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		c.apiKey = os.Getenv(config.APIKeyEnvVar)
	}
	if c.apiKey == "" {
		return nil, errors.MissingCredential()
	}

	return c, nil
}

// Message represents a message in the Claude API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesRequest represents a request to the messages API.
type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
}

// contentBlock represents a content block in the response.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// messagesResponse represents a response from the messages API.
type messagesResponse struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Role         string         `json:"role"`
	Content      []contentBlock `json:"content"`
	StopReason   string         `json:"stop_reason"`
	StopSequence *string        `json:"stop_sequence"`
	Usage        struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// apiError represents an error from the Claude API.
type apiError struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Usage records token consumption reported by the API.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Generate sends an instruction to Claude and returns the trimmed text
// reply along with the reported token usage.
func (c *Client) Generate(ctx context.Context, instruction string, temperature float64) (string, Usage, error) {
	req := messagesRequest{
		Model:       c.model,
		MaxTokens:   defaultMaxTokens,
		Temperature: temperature,
		Messages: []Message{
			{Role: "user", Content: instruction},
		},
	}

	resp, err := c.sendRequest(ctx, req)
	if err != nil {
		return "", Usage{}, err
	}

	// Extract text from response
	var result string
	for _, block := range resp.Content {
		if block.Type == "text" {
			result += block.Text
		}
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", Usage{}, errors.RemoteService("service returned an empty response", nil)
	}

	usage := Usage{
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}
	return result, usage, nil
}

// sendRequest sends a request to the Claude API.
func (c *Client) sendRequest(ctx context.Context, req messagesRequest) (*messagesResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.RemoteService("failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, errors.RemoteService("failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.RemoteService("API request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.RemoteService("failed to read response", err)
	}

	// Handle error responses
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.RemoteService(
				fmt.Sprintf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message),
				nil,
			)
		}
		return nil, errors.RemoteService(
			fmt.Sprintf("API returned status %d", resp.StatusCode),
			nil,
		)
	}

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.RemoteService("failed to decode response", err)
	}

	return &result, nil
}
