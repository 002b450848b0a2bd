package service

import "context"

// TextGenerator penyedia LLM untuk rekomendasi.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Notifier pengirim pesan ke grup chat tim rekrutmen.
type Notifier interface {
	SendGroupMessage(ctx context.Context, message string) error
}
