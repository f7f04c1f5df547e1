// Package search orchestrates the query pipeline:
// validate -> embed -> retrieve -> shape.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/ShamerOC/pubmed-ai-search/internal/domain"
)

// Service runs the search pipeline. The pipeline is strictly linear; any
// stage failure aborts the whole request and nothing partial is returned.
type Service struct {
	retr          Retriever
	embed         Embedder
	searchTimeout time.Duration
}

// New creates a search service.
func New(retr Retriever, embed Embedder) *Service {
	return &Service{retr: retr, embed: embed}
}

// WithSearchTimeout bounds the retrieval call. Zero means no explicit bound
// beyond the caller's context.
func (s *Service) WithSearchTimeout(d time.Duration) *Service {
	s.searchTimeout = d
	return s
}

// Search validates the request, embeds the query, retrieves the nearest
// documents, and shapes the outcome with per-stage timings. Ranking comes
// from the store as-is: no re-sorting and no score threshold.
func (s *Service) Search(ctx context.Context, text string, limit int) (domain.Outcome, error) {
	start := time.Now()

	q, err := domain.NewQuery(text, limit)
	if err != nil {
		return domain.Outcome{}, err
	}

	embStart := time.Now()
	emb, err := s.embed.Embed(ctx, q.Text())
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("embed query: %w", err)
	}
	embeddingTime := time.Since(embStart)

	retrCtx := ctx
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		retrCtx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	searchStart := time.Now()
	results, err := s.retr.Search(retrCtx, emb.Embedding, q.Limit())
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("retrieve: %w", err)
	}
	searchTime := time.Since(searchStart)

	return domain.Outcome{
		Query:         q.Text(),
		Results:       results,
		EmbeddingTime: embeddingTime,
		SearchTime:    searchTime,
		TotalTime:     time.Since(start),
	}, nil
}
