package search

import (
	"context"

	"github.com/ShamerOC/pubmed-ai-search/internal/domain"
)

// Retriever answers nearest-neighbor queries against the document collection.
type Retriever interface {
	Search(ctx context.Context, vector []float32, limit int) ([]domain.ScoredResult, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
