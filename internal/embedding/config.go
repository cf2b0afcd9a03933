package embedding

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	Enabled   bool
	Model     string
	MaxLength *int
	BaseURL   string
}

// LoadConfigFromEnv returns a disabled config when EMBEDDING_ENABLED is not "true".
func LoadConfigFromEnv() (*Config, error) {
	enabled := os.Getenv("EMBEDDING_ENABLED") == "true"
	if !enabled {
		return &Config{}, nil
	}

	model := os.Getenv("EMBEDDING_MODEL")
	maxLen := os.Getenv("EMBEDDING_MAX_LENGTH")
	baseUrl := os.Getenv("EMBEDDING_BASE_URL")

	if baseUrl == "" {
		return nil, errors.New("EMBEDDING_BASE_URL environment variable not set")
	}

	return &Config{
		Enabled: enabled,
		Model:   model,
		MaxLength: func() *int {
			if maxLen == "" {
				return nil
			}
			val, err := strconv.Atoi(maxLen)
			if err != nil {
				return nil
			}
			return &val
		}(),
		BaseURL: baseUrl,
	}, nil
}

// NewEmbedderFromConfig wires an Ollama backed embedder, or returns nil when embeddings are disabled.
func NewEmbedderFromConfig(cfg *Config) (*Embedder, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	client, err := NewOllamaClient(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	var opts []EmbedderOption
	if cfg.Model != "" {
		opts = append(opts, WithModel(cfg.Model))
	}
	if cfg.MaxLength != nil {
		opts = append(opts, WithMaxLength(*cfg.MaxLength))
	}
	return NewEmbedder(client, opts...), nil
}
