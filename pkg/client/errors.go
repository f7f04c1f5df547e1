package pubmedsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API response codes.
// Use errors.Is() to check.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmbeddingProvider = errors.New("embedding provider error")
	ErrRetrieval         = errors.New("retrieval error")
	ErrDataIntegrity     = errors.New("data integrity fault")
)

// APIError carries the HTTP status and the error payload returned by the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pubmedsearch: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap maps the API error code to a sentinel error.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "bad_request", "validation_failed":
		return ErrInvalidInput
	case "embedding_provider_error":
		return ErrEmbeddingProvider
	case "retrieval_failed":
		return ErrRetrieval
	case "data_integrity_error":
		return ErrDataIntegrity
	default:
		return nil
	}
}
