package providers

import "github.com/RobertKozak/mr-comment/internal/config"

func resolvedFor(provider string) config.Resolved {
	return config.Resolved{
		Provider: provider,
		APIKey:   "test-key",
		Endpoint: "https://example.invalid",
		Model:    "test-model",
	}
}
