package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type Embedder struct {
	maxLength *int
	model     string

	client Client
}

type Vec struct {
	Embedding []float32
	Model     string
}

type EmbedderOption func(e *Embedder)

func NewEmbedder(client Client, opts ...EmbedderOption) *Embedder {
	base := &Embedder{
		model:  defaultModel,
		client: client,
	}

	for _, opt := range opts {
		opt(base)
	}

	return base
}

func WithModel(model string) EmbedderOption {
	return func(e *Embedder) {
		e.model = model
	}
}

func WithMaxLength(length int) EmbedderOption {
	return func(e *Embedder) {
		e.maxLength = &length
	}
}

func (e *Embedder) Model() string {
	return e.model
}

// EmbedQuery embeds search text with the retrieval instruction the title embeddings were built for.
func (e *Embedder) EmbedQuery(ctx context.Context, query string) (*Vec, error) {
	task := "Given a video search query, retrieve videos with relevant titles"
	instruct := wrapWithInstruct(
		task,
		strings.TrimSpace(query),
	)

	slog.Debug("embedding query with instruct", "task", task, "query", query)

	embed, err := e.client.Generate(ctx, Request{
		Model:  e.model,
		Prompt: instruct,
	})
	if err != nil {
		return nil, err
	}

	if e.maxLength != nil && len(embed.Embedding) > *e.maxLength {
		return &Vec{
			Embedding: embed.Embedding[:*e.maxLength],
			Model:     e.model,
		}, nil
	}

	return &Vec{
		Embedding: embed.Embedding,
		Model:     e.model,
	}, nil
}

func wrapWithInstruct(task, query string) string {
	return fmt.Sprintf("Instruct: %s\nQuery:%s", task, query)
}
