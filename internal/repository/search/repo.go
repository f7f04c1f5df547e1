// Package search issues KNN queries against the PubMed collection index and
// maps raw hits onto validated document records.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ShamerOC/pubmed-ai-search/internal/db"
	"github.com/ShamerOC/pubmed-ai-search/internal/domain"
	"github.com/ShamerOC/pubmed-ai-search/internal/metrics"
)

// documentFields are the payload fields every indexed record must carry.
var documentFields = []string{"date", "title", "abstract", "pmid", "source_file"}

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Retriever against a vector store collection.
type Repo struct {
	store      store
	collection string
}

// New creates a search repository bound to a collection.
func New(s store, collection string) *Repo {
	return &Repo{store: s, collection: collection}
}

// Collection returns the collection this repository queries.
func (r *Repo) Collection() string { return r.collection }

// Search performs a KNN query and shapes each hit into a ScoredResult.
// Hits keep the store's ranking order. A hit whose payload is missing any
// required document field fails the whole call with domain.ErrDataIntegrity
// rather than being dropped silently.
func (r *Repo) Search(ctx context.Context, vector []float32, limit int) ([]domain.ScoredResult, error) {
	indexName := fmt.Sprintf("%s:idx", r.collection)

	q := &db.KNNQuery{
		IndexName:    indexName,
		Vector:       vector,
		K:            limit,
		ReturnFields: append([]string{"__vector_score"}, documentFields...),
	}

	start := time.Now()
	sr, err := r.store.SearchKNN(ctx, q)
	metrics.RetrievalRequestDuration.WithLabelValues(r.collection).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("search knn %s: %w: %w", r.collection, domain.ErrRetrieval, err)
	}

	return r.shapeResults(sr)
}

func (r *Repo) shapeResults(sr *db.SearchResult) ([]domain.ScoredResult, error) {
	if sr == nil || len(sr.Entries) == 0 {
		return nil, nil
	}

	prefix := r.collection + ":"
	results := make([]domain.ScoredResult, 0, len(sr.Entries))

	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)

		doc, err := documentFromFields(entry.Fields)
		if err != nil {
			return nil, fmt.Errorf("hit %s: %w", id, err)
		}

		results = append(results, domain.ScoredResult{
			ID:       id,
			Score:    entry.Score,
			Document: doc,
		})
	}

	return results, nil
}

// documentFromFields validates the payload against the document schema.
func documentFromFields(fields map[string]string) (domain.Document, error) {
	for _, f := range documentFields {
		if _, ok := fields[f]; !ok {
			return domain.Document{}, fmt.Errorf("%w: missing payload field %q", domain.ErrDataIntegrity, f)
		}
	}

	return domain.Document{
		Date:       domain.NormalizeDate(fields["date"]),
		Title:      fields["title"],
		Abstract:   fields["abstract"],
		PMID:       fields["pmid"],
		SourceFile: fields["source_file"],
	}, nil
}
