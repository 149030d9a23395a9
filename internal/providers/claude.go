package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/RobertKozak/mr-comment/internal/config"
)

const anthropicAPIVersion = "2023-06-01"

// Claude implements the Generator interface for Anthropic's messages API.
type Claude struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func newClaude(cfg config.Resolved) *Claude {
	return &Claude{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		client:   newHTTPClient(),
	}
}

func (c *Claude) Name() string { return config.ProviderClaude }

func (c *Claude) Generate(ctx context.Context, req Request) (Response, error) {
	body := claudeRequest{
		Model:       c.model,
		System:      req.System,
		MaxTokens:   4000,
		Temperature: 0.7,
		Messages: []claudeMessage{
			{Role: "user", Content: req.User},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return Response{}, &RequestError{
			Provider:   c.Name(),
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result claudeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, &ParseError{Provider: c.Name(), Err: err}
	}

	for _, block := range result.Content {
		if block.Type == "text" && block.Text != "" {
			return Response{Content: block.Text}, nil
		}
	}
	return Response{}, ErrEmptyResponse
}

type claudeRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeBlock `json:"content"`
}

type claudeBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
