package domain

import "errors"

var (
	// ErrInvalidInput signals a malformed search request (empty query, bad limit).
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmbeddingProvider signals an encoder failure or unavailability.
	ErrEmbeddingProvider = errors.New("embedding provider error")
	// ErrRetrieval signals a vector store connectivity or query failure.
	ErrRetrieval = errors.New("retrieval error")
	// ErrDataIntegrity signals a retrieved payload missing required document fields.
	ErrDataIntegrity = errors.New("data integrity fault")
)
