package domain

import "time"

// ScoredResult pairs a retrieved document with its similarity score and the
// store's identifier for the hit.
type ScoredResult struct {
	ID       string
	Score    float64
	Document Document
}

// Outcome is the result of one search operation. Results keep the exact
// order returned by the vector store; no local re-sorting is performed.
type Outcome struct {
	Query         string
	Results       []ScoredResult
	EmbeddingTime time.Duration
	SearchTime    time.Duration
	TotalTime     time.Duration
}

// Count returns the number of retrieved results.
func (o *Outcome) Count() int { return len(o.Results) }
