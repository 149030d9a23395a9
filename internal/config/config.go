package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported provider names.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// fileName is the fixed config file name under the user's home directory.
const fileName = ".mr-comment"

// File mirrors the on-disk JSON config. All fields are optional.
type File struct {
	OpenAIAPIKey   string `json:"openai_api_key,omitempty"`
	ClaudeAPIKey   string `json:"claude_api_key,omitempty"`
	OpenAIEndpoint string `json:"openai_endpoint,omitempty"`
	ClaudeEndpoint string `json:"claude_endpoint,omitempty"`
	OpenAIModel    string `json:"openai_model,omitempty"`
	ClaudeModel    string `json:"claude_model,omitempty"`
	Provider       string `json:"provider,omitempty"`
}

// Resolved is the effective provider configuration after precedence has
// been applied. It is the only view the rest of the program sees.
type Resolved struct {
	Provider string
	APIKey   string
	Endpoint string
	Model    string
}

// Flags carries the raw flag values relevant to resolution. Zero values
// mean "not set".
type Flags struct {
	Provider string
	APIKey   string
	Endpoint string
	Model    string
}

// providerDefaults holds the built-in endpoint, model, and credential env
// var for one provider.
type providerDefaults struct {
	endpoint string
	model    string
	envKey   string
}

var defaults = map[string]providerDefaults{
	ProviderOpenAI: {
		endpoint: "https://api.openai.com/v1/chat/completions",
		model:    "gpt-4-turbo",
		envKey:   "OPENAI_API_KEY",
	},
	ProviderClaude: {
		endpoint: "https://api.anthropic.com/v1/messages",
		model:    "claude-3-7-sonnet-20250219",
		envKey:   "ANTHROPIC_API_KEY",
	},
}

// Path returns the full path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// Load reads the config file. An absent file is not an error and yields a
// zero File.
func Load() (File, error) {
	path, err := Path()
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return f, nil
}

// Save writes the config file, overwriting any existing one.
func Save(f File) error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Apply writes resolved settings back into the file view so they can be
// persisted with Save. Only the resolved provider's fields are touched.
func (f File) Apply(r Resolved) File {
	f.Provider = r.Provider
	switch r.Provider {
	case ProviderOpenAI:
		f.OpenAIAPIKey, f.OpenAIEndpoint, f.OpenAIModel = r.APIKey, r.Endpoint, r.Model
	case ProviderClaude:
		f.ClaudeAPIKey, f.ClaudeEndpoint, f.ClaudeModel = r.APIKey, r.Endpoint, r.Model
	}
	return f
}

// Resolve applies precedence (flag > env > file > default) over the four
// sources and returns the effective settings for the selected provider.
// getenv is injected so resolution stays a pure function.
//
// The provider itself comes from the flag, then the config file, then
// defaults to claude. A missing API key across all sources is an error.
func Resolve(flags Flags, getenv func(string) string, file File) (Resolved, error) {
	provider := firstNonEmpty(flags.Provider, file.Provider, ProviderClaude)
	def, ok := defaults[provider]
	if !ok {
		return Resolved{}, fmt.Errorf("unknown provider %q (supported: %s, %s)",
			provider, ProviderOpenAI, ProviderClaude)
	}

	fileKey, fileEndpoint, fileModel := file.OpenAIAPIKey, file.OpenAIEndpoint, file.OpenAIModel
	if provider == ProviderClaude {
		fileKey, fileEndpoint, fileModel = file.ClaudeAPIKey, file.ClaudeEndpoint, file.ClaudeModel
	}

	key := firstNonEmpty(flags.APIKey, getenv(def.envKey), fileKey)
	if key == "" {
		return Resolved{}, fmt.Errorf(
			"API key is required: provide it with --api-key or set %s", def.envKey)
	}

	return Resolved{
		Provider: provider,
		APIKey:   key,
		Endpoint: firstNonEmpty(flags.Endpoint, fileEndpoint, def.endpoint),
		Model:    firstNonEmpty(flags.Model, fileModel, def.model),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
