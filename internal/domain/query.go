package domain

import "fmt"

// Search parameter limits.
const (
	// DefaultLimit is applied when no result limit is provided.
	DefaultLimit = 5
	// MaxLimit is the maximum allowed result limit.
	MaxLimit = 100

	// MaxQueryTokens is the token budget of the MedCPT query encoder.
	// The encoder truncates longer input; queries past this length are
	// cut off on the serving side, which callers should treat as the
	// documented contract rather than a defect.
	MaxQueryTokens = 64
)

// Query is a validated search request. Immutable once constructed.
type Query struct {
	text  string
	limit int
}

// NewQuery validates the query text and result limit.
// limit == 0 means "not provided" and defaults to DefaultLimit.
func NewQuery(text string, limit int) (Query, error) {
	if text == "" {
		return Query{}, fmt.Errorf("%w: query text is required", ErrInvalidInput)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return Query{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}
	return Query{text: text, limit: limit}, nil
}

// Text returns the query text.
func (q *Query) Text() string { return q.text }

// Limit returns the maximum number of results to retrieve.
func (q *Query) Limit() int { return q.limit }
