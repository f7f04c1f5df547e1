package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ShamerOC/pubmed-ai-search/internal/domain"
	logpkg "github.com/ShamerOC/pubmed-ai-search/internal/logger"
	healthuc "github.com/ShamerOC/pubmed-ai-search/internal/usecase/health"
	searchuc "github.com/ShamerOC/pubmed-ai-search/internal/usecase/search"
	"github.com/ShamerOC/pubmed-ai-search/internal/version"
)

const serviceName = "PubMed Semantic Search API"

// Error codes returned in the response body alongside the HTTP status.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeEmbeddingProvider = "embedding_provider_error"
	codeRetrievalFailed   = "retrieval_failed"
	codeDataIntegrity     = "data_integrity_error"
	codeInternalError     = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search and health use cases over HTTP. Handlers log
// through the request-scoped logger placed in the context by the middleware.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service) *Server {
	s := &Server{
		search: search,
		health: health,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrEmbeddingProvider, http.StatusBadGateway, codeEmbeddingProvider),
		sentinelHandler(domain.ErrRetrieval, http.StatusInternalServerError, codeRetrievalFailed),
		sentinelHandler(domain.ErrDataIntegrity, http.StatusInternalServerError, codeDataIntegrity),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/search", s.SearchDocuments)
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type searchRequest struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

type searchResultItem struct {
	ID       string          `json:"id"`
	Score    float64         `json:"score"`
	Document domain.Document `json:"document"`
}

type searchResponse struct {
	Query         string             `json:"query"`
	Results       []searchResultItem `json:"results"`
	TotalTime     float64            `json:"total_time"`
	EmbeddingTime float64            `json:"embedding_time"`
	SearchTime    float64            `json:"search_time"`
	ResultsCount  int                `json:"results_count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchDocuments handles POST /search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Validate an explicitly provided limit here: an explicit 0 is a client
	// error, while an omitted field falls through to the default.
	limit := 0
	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > domain.MaxLimit {
			writeError(w, http.StatusBadRequest, codeValidationFailed,
				fmt.Sprintf("limit must be between 1 and %d", domain.MaxLimit))
			return
		}
		limit = *req.Limit
	}

	outcome, err := s.search.Search(r.Context(), req.Query, limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, outcomeToResponse(&outcome))
}

// Root handles GET /. Liveness plus service identity.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"service": serviceName,
		"version": version.Version,
	})
}

type healthEndpoint struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Collection string `json:"collection"`
}

type healthResponse struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	VectorStore healthEndpoint    `json:"vector_store"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
		VectorStore: healthEndpoint{
			Host:       report.Endpoint.Host,
			Port:       report.Endpoint.Port,
			Collection: report.Endpoint.Collection,
		},
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func outcomeToResponse(o *domain.Outcome) searchResponse {
	items := make([]searchResultItem, len(o.Results))
	for i, res := range o.Results {
		items[i] = searchResultItem{
			ID:       res.ID,
			Score:    res.Score,
			Document: res.Document,
		}
	}

	return searchResponse{
		Query:         o.Query,
		Results:       items,
		TotalTime:     o.TotalTime.Seconds(),
		EmbeddingTime: o.EmbeddingTime.Seconds(),
		SearchTime:    o.SearchTime.Seconds(),
		ResultsCount:  o.Count(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrEmbeddingProvider,
		domain.ErrRetrieval,
		domain.ErrDataIntegrity,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	reqLogger := logpkg.FromContext(r.Context())
	reqLogger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	reqLogger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
