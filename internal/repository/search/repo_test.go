package search

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/ShamerOC/pubmed-ai-search/internal/db"
	"github.com/ShamerOC/pubmed-ai-search/internal/domain"
	"github.com/ShamerOC/pubmed-ai-search/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterSearchMetrics()
	os.Exit(m.Run())
}

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchKNNFn func(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	if m.searchKNNFn != nil {
		return m.searchKNNFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func fullPayload() map[string]string {
	return map[string]string{
		"date":        "20230615",
		"title":       "Metformin in type 2 diabetes",
		"abstract":    "A randomized controlled trial...",
		"pmid":        "36012345",
		"source_file": "pubmed23n0001.xml",
	}
}

func TestSearch_ShapesResults(t *testing.T) {
	ms := &mockStore{
		searchKNNFn: func(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
			if q.IndexName != "pubmed_medcpt:idx" {
				t.Errorf("unexpected index name %q", q.IndexName)
			}
			if q.K != 3 {
				t.Errorf("expected K=3, got %d", q.K)
			}
			return &db.SearchResult{
				Total: 2,
				Entries: []db.SearchEntry{
					{Key: "pubmed_medcpt:36012345", Score: 0.92, Fields: fullPayload()},
					{Key: "pubmed_medcpt:36054321", Score: 0.81, Fields: fullPayload()},
				},
			}, nil
		},
	}
	repo := New(ms, "pubmed_medcpt")

	results, err := repo.Search(context.Background(), []float32{0.1, 0.2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "36012345" {
		t.Errorf("expected id 36012345, got %s", results[0].ID)
	}
	if results[0].Score != 0.92 {
		t.Errorf("expected score 0.92, got %f", results[0].Score)
	}
	if results[0].Document.Date != "2023-06-15" {
		t.Errorf("expected normalized date, got %q", results[0].Document.Date)
	}
	// store order preserved
	if results[1].ID != "36054321" {
		t.Errorf("expected second id 36054321, got %s", results[1].ID)
	}
}

func TestSearch_MissingFieldIsIntegrityFault(t *testing.T) {
	payload := fullPayload()
	delete(payload, "abstract")

	ms := &mockStore{
		searchKNNFn: func(_ context.Context, _ *db.KNNQuery) (*db.SearchResult, error) {
			return &db.SearchResult{
				Total:   1,
				Entries: []db.SearchEntry{{Key: "pubmed_medcpt:1", Score: 0.5, Fields: payload}},
			}, nil
		},
	}
	repo := New(ms, "pubmed_medcpt")

	_, err := repo.Search(context.Background(), []float32{0.1}, 5)
	if !errors.Is(err, domain.ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
}

func TestSearch_StoreErrorIsRetrievalError(t *testing.T) {
	ms := &mockStore{
		searchKNNFn: func(_ context.Context, _ *db.KNNQuery) (*db.SearchResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	repo := New(ms, "pubmed_medcpt")

	_, err := repo.Search(context.Background(), []float32{0.1}, 5)
	if !errors.Is(err, domain.ErrRetrieval) {
		t.Fatalf("expected ErrRetrieval, got %v", err)
	}
}

func TestSearch_Empty(t *testing.T) {
	repo := New(&mockStore{}, "pubmed_medcpt")

	results, err := repo.Search(context.Background(), []float32{0.1}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearch_PassThroughDate(t *testing.T) {
	payload := fullPayload()
	payload["date"] = "unknown"

	ms := &mockStore{
		searchKNNFn: func(_ context.Context, _ *db.KNNQuery) (*db.SearchResult, error) {
			return &db.SearchResult{
				Total:   1,
				Entries: []db.SearchEntry{{Key: "pubmed_medcpt:1", Score: 0.5, Fields: payload}},
			}, nil
		},
	}
	repo := New(ms, "pubmed_medcpt")

	results, err := repo.Search(context.Background(), []float32{0.1}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Document.Date != "unknown" {
		t.Errorf("expected date passed through, got %q", results[0].Document.Date)
	}
}
