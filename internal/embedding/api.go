package embedding

import (
	"context"
)

const defaultModel = "qwen3-embedding:0.6b"

type Request struct {
	Model string `json:"model"`

	// Prompt is the textual prompt to embed.
	Prompt string `json:"prompt"`

	// Options lists model-specific options.
	Options map[string]any `json:"options"`
}

type Response struct {
	Embedding []float32 `json:"embedding"`
}

type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
