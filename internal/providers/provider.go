package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RobertKozak/mr-comment/internal/config"
)

// Request contains the prompts sent to a provider.
type Request struct {
	System string
	User   string
}

// Response contains the generated text extracted from a provider response.
type Response struct {
	Content string
}

// Generator is the provider abstraction interface.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// httpTimeout bounds the single blocking round trip to a provider.
const httpTimeout = 120 * time.Second

// New creates a provider from resolved configuration.
func New(cfg config.Resolved) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderClaude:
		return newClaude(cfg), nil
	case config.ProviderOpenAI:
		return newOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
