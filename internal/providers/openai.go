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

// OpenAI implements the Generator interface for OpenAI's chat completions
// API.
type OpenAI struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func newOpenAI(cfg config.Resolved) *OpenAI {
	return &OpenAI{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		client:   newHTTPClient(),
	}
}

func (o *OpenAI) Name() string { return config.ProviderOpenAI }

func (o *OpenAI) Generate(ctx context.Context, req Request) (Response, error) {
	body := openaiRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages: []openaiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	httpResp, err := o.client.Do(httpReq)
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
			Provider:   o.Name(),
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result openaiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, &ParseError{Provider: o.Name(), Err: err}
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return Response{}, ErrEmptyResponse
	}
	return Response{Content: result.Choices[0].Message.Content}, nil
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}
